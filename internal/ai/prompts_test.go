package ai

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestBuildDataSummaryEmpty(t *testing.T) {
	assert.Equal(t, "No health data available", BuildDataSummary(nil))
}

func TestBuildDataSummary(t *testing.T) {
	var entries []domain.HealthEntry
	for day := 1; day <= 10; day++ {
		w := 80.0
		if day > 5 {
			w = 76.0 // losing weight in the recent half
		}
		entries = append(entries, domain.HealthEntry{
			EntryDate: fmt.Sprintf("2026-08-%02d", day),
			Weight:    fptr(w),
			Mood:      sptr("Good"),
		})
	}

	var summary dataSummary
	require.NoError(t, json.Unmarshal([]byte(BuildDataSummary(entries)), &summary))

	assert.Equal(t, 10, summary.TotalEntries)
	assert.Equal(t, "2026-08-01 to 2026-08-10", summary.DateRange)

	weight, ok := summary.RecentAverages["weight"]
	require.True(t, ok)
	assert.Equal(t, 78.0, weight.Overall)
	assert.InDelta(t, 77.14, weight.Recent, 0.01)
	assert.Equal(t, "improving", weight.Trend)

	assert.Equal(t, map[string]int{"Good": 7}, summary.RecentMoodPattern)
}

func TestBuildDataSummaryRisingWeightIsStable(t *testing.T) {
	entries := []domain.HealthEntry{
		{EntryDate: "2026-08-01", Weight: fptr(70)},
		{EntryDate: "2026-08-02", Weight: fptr(75)},
	}

	var summary dataSummary
	require.NoError(t, json.Unmarshal([]byte(BuildDataSummary(entries)), &summary))
	assert.Equal(t, "stable", summary.RecentAverages["weight"].Trend)
}

func TestBuildGoalsSummary(t *testing.T) {
	goals := []domain.Goal{
		{GoalType: "exercise", Status: domain.GoalStatusActive, TargetValue: 150, CurrentValue: 60, Description: "150 weekly minutes"},
		{GoalType: "sleep", Status: domain.GoalStatusCompleted, TargetValue: 8},
		{GoalType: "weight_loss", Status: domain.GoalStatusPaused, TargetValue: 5},
	}

	var summary goalsSummary
	require.NoError(t, json.Unmarshal([]byte(BuildGoalsSummary(goals)), &summary))

	assert.Equal(t, 1, summary.ActiveGoals)
	assert.Equal(t, 1, summary.CompletedGoals)
	assert.Equal(t, []string{"exercise"}, summary.GoalTypes)
	require.Len(t, summary.RecentGoals, 1)
	assert.Equal(t, "150 weekly minutes", summary.RecentGoals[0].Description)
}

func TestBuildGoalsSummaryEmpty(t *testing.T) {
	assert.Equal(t, "No existing goals", BuildGoalsSummary(nil))
}

func TestBuildTrendSummaryEmpty(t *testing.T) {
	assert.Equal(t, "No trend data available", BuildTrendSummary(nil))
}

func TestPromptsEmbedSummaries(t *testing.T) {
	p := InsightsPrompt(`{"total_entries": 4}`)
	assert.Contains(t, p, `{"total_entries": 4}`)
	assert.Contains(t, p, `"overall_health"`)

	g := GoalRecommendationsPrompt("HEALTH", "GOALS")
	assert.Contains(t, g, "HEALTH")
	assert.Contains(t, g, "GOALS")
	assert.Contains(t, g, `"recommended_goals"`)

	tr := TrendAnalysisPrompt("TRENDS")
	assert.Contains(t, tr, "TRENDS")
	assert.Contains(t, tr, `"patterns"`)
}
