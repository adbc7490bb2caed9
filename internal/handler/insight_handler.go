package handler

import (
	"errors"
	"net/http"

	"github.com/healthtrackai/health-tracker-backend/internal/ai"
	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
)

type InsightHandler struct {
	entries  *repository.EntryRepository
	goals    *repository.GoalRepository
	insights *repository.InsightRepository
	ai       *ai.Client
}

func NewInsightHandler(
	entries *repository.EntryRepository,
	goals *repository.GoalRepository,
	insights *repository.InsightRepository,
	aiClient *ai.Client,
) *InsightHandler {
	return &InsightHandler{entries: entries, goals: goals, insights: insights, ai: aiClient}
}

// Generate produces a general health analysis from the recent entry window
// and stores it.
func (h *InsightHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, ok := h.loadEntries(w, r, id)
	if !ok {
		return
	}

	summary := ai.BuildDataSummary(entries)
	content, err := h.ai.CompleteJSON(r.Context(), ai.SystemInsights, ai.InsightsPrompt(summary), ai.InsightsMaxTokens)
	if err != nil {
		writeAIError(w, err)
		return
	}

	h.store(w, id, domain.InsightTypeInsight, content, entries)
}

// AnalyzeTrends runs the trend analysis prompt over the recent entry window.
func (h *InsightHandler) AnalyzeTrends(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, ok := h.loadEntries(w, r, id)
	if !ok {
		return
	}

	summary := ai.BuildTrendSummary(entries)
	content, err := h.ai.CompleteJSON(r.Context(), ai.SystemTrendAnalysis, ai.TrendAnalysisPrompt(summary), ai.TrendAnalysisMaxTokens)
	if err != nil {
		writeAIError(w, err)
		return
	}

	h.store(w, id, domain.InsightTypeTrendAnalysis, content, entries)
}

// RecommendGoals asks for SMART goal suggestions grounded on the health data
// and the goals already set.
func (h *InsightHandler) RecommendGoals(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, ok := h.loadEntries(w, r, id)
	if !ok {
		return
	}

	goals, err := h.goals.ListByAccount(id, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch goals")
		return
	}

	healthSummary := ai.BuildDataSummary(entries)
	goalsSummary := ai.BuildGoalsSummary(goals)
	content, err := h.ai.CompleteJSON(
		r.Context(),
		ai.SystemGoalRecommendations,
		ai.GoalRecommendationsPrompt(healthSummary, goalsSummary),
		ai.GoalRecsMaxTokens,
	)
	if err != nil {
		writeAIError(w, err)
		return
	}

	h.store(w, id, domain.InsightTypeGoalRecommendation, content, entries)
}

func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	insights, err := h.insights.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch insights")
		return
	}
	if insights == nil {
		insights = []domain.Insight{}
	}

	writeJSON(w, http.StatusOK, insights)
}

func (h *InsightHandler) loadEntries(w http.ResponseWriter, r *http.Request, id int64) ([]domain.HealthEntry, bool) {
	if !h.ai.Configured() {
		writeError(w, http.StatusServiceUnavailable, "AI insights are not configured")
		return nil, false
	}

	entries, err := h.entries.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return nil, false
	}
	if len(entries) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no health data to analyze")
		return nil, false
	}
	return entries, true
}

func (h *InsightHandler) store(w http.ResponseWriter, id int64, insightType string, content []byte, entries []domain.HealthEntry) {
	periodStart := entries[0].EntryDate
	periodEnd := entries[len(entries)-1].EntryDate

	insight := &domain.Insight{
		AccountID:   id,
		InsightType: insightType,
		Content:     content,
		Model:       h.ai.Model(),
		PeriodStart: &periodStart,
		PeriodEnd:   &periodEnd,
	}

	saved, err := h.insights.Create(insight)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save insight")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func writeAIError(w http.ResponseWriter, err error) {
	var apiErr *ai.APIError
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "AI insights are not configured")
	case errors.As(err, &apiErr):
		writeError(w, http.StatusBadGateway, "AI provider request failed")
	default:
		writeError(w, http.StatusBadGateway, "failed to generate insight")
	}
}
