package handler

import (
	"math"
	"net/http"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
	"github.com/healthtrackai/health-tracker-backend/internal/service"
)

type AdminHandler struct {
	entries *repository.EntryRepository
	goals   *repository.GoalRepository
}

func NewAdminHandler(entries *repository.EntryRepository, goals *repository.GoalRepository) *AdminHandler {
	return &AdminHandler{entries: entries, goals: goals}
}

// Stats reports how much of the account's history is filled in: total
// entries, covered range, per-metric completeness percentages and goal
// counts.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.ListSince(id, maxWindowDays)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	goalCounts, err := h.goals.StatusCounts(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch goal stats")
		return
	}

	response := struct {
		TotalEntries int                `json:"total_entries"`
		DateRange    *service.DateRange `json:"date_range"`
		Completeness map[string]float64 `json:"completeness"`
		GoalCounts   map[string]int     `json:"goal_counts"`
	}{
		TotalEntries: len(entries),
		Completeness: completeness(entries),
		GoalCounts:   goalCounts,
	}
	if len(entries) > 0 {
		response.DateRange = &service.DateRange{
			Start: entries[0].EntryDate,
			End:   entries[len(entries)-1].EntryDate,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// Export streams the account's data as a CSV backup. ?table= selects entries
// or goals.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var (
		data     []byte
		err      error
		filename string
	)
	switch table := r.URL.Query().Get("table"); table {
	case "", "entries":
		var entries []domain.HealthEntry
		entries, err = h.entries.ListSince(id, maxWindowDays)
		if err == nil {
			data, err = service.EntriesCSV(entries)
		}
		filename = "health_entries.csv"
	case "goals":
		var goals []domain.Goal
		goals, err = h.goals.ListByAccount(id, "")
		if err == nil {
			data, err = service.GoalsCSV(goals)
		}
		filename = "goals.csv"
	default:
		writeError(w, http.StatusBadRequest, "table must be entries or goals")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func completeness(entries []domain.HealthEntry) map[string]float64 {
	out := map[string]float64{}
	if len(entries) == 0 {
		return out
	}

	total := float64(len(entries))
	for _, name := range service.MetricNames {
		logged := float64(len(service.MetricSeries(entries, name)))
		out[name] = math.Round(logged/total*1000) / 10
	}

	moods := 0
	for i := range entries {
		if m := entries[i].Mood; m != nil && *m != "" {
			moods++
		}
	}
	out["mood"] = math.Round(float64(moods)/total*1000) / 10

	return out
}
