package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/healthtrackai/health-tracker-backend/internal/repository"
	"github.com/healthtrackai/health-tracker-backend/internal/service"
)

type DashboardHandler struct {
	entries  *repository.EntryRepository
	accounts *repository.AccountRepository
}

func NewDashboardHandler(entries *repository.EntryRepository, accounts *repository.AccountRepository) *DashboardHandler {
	return &DashboardHandler{entries: entries, accounts: accounts}
}

// latestAssessment is the snapshot block of the dashboard: category labels for
// the most recent entry's readings, plus BMI when the profile has a height.
type latestAssessment struct {
	EntryDate             string  `json:"entry_date"`
	BMI                   float64 `json:"bmi,omitempty"`
	BMICategory           string  `json:"bmi_category,omitempty"`
	BloodPressureCategory string  `json:"blood_pressure_category,omitempty"`
	HeartRateCategory     string  `json:"heart_rate_category,omitempty"`
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	response := struct {
		Summary service.Summary   `json:"summary"`
		Latest  *latestAssessment `json:"latest"`
	}{Summary: service.Summarize(entries)}

	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		assessment := latestAssessment{EntryDate: latest.EntryDate}

		if latest.Weight != nil {
			account, err := h.accounts.GetProfile(id)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to fetch profile")
				return
			}
			if account != nil && account.HeightCm != nil {
				assessment.BMI = service.BMI(*latest.Weight, *account.HeightCm)
				assessment.BMICategory = service.BMICategory(assessment.BMI)
			}
		}
		if latest.Systolic != nil && latest.Diastolic != nil {
			assessment.BloodPressureCategory = service.BloodPressureCategory(*latest.Systolic, *latest.Diastolic)
		}
		if latest.HeartRate != nil {
			assessment.HeartRateCategory = service.HeartRateCategory(*latest.HeartRate)
		}
		response.Latest = &assessment
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) Score(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	score := service.Score(entries)
	resp := struct {
		service.HealthScore
		EntriesAnalyzed int    `json:"entries_analyzed"`
		Message         string `json:"message,omitempty"`
	}{HealthScore: score, EntriesAnalyzed: len(entries)}
	if len(entries) == 0 {
		resp.Message = "No health data available yet. Log an entry to get a score."
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DashboardHandler) Trends(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.entries.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	writeJSON(w, http.StatusOK, service.Trends(entries))
}

// Tip serves measurement guidance per metric topic. Unauthenticated on
// purpose, the content is static.
func (h *DashboardHandler) Tip(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	writeJSON(w, http.StatusOK, map[string]string{
		"topic": topic,
		"tip":   service.Tip(topic),
	})
}
