package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Empty(t, s.DateRange.Start)
}

func TestSummarizeSkipsUnloggedMetrics(t *testing.T) {
	entries := []domain.HealthEntry{
		{EntryDate: "2026-08-01", Weight: fptr(70), SleepHours: fptr(8)},
		{EntryDate: "2026-08-02", Weight: fptr(72)},
		{EntryDate: "2026-08-03", HeartRate: iptr(60)},
	}

	s := Summarize(entries)
	assert.Equal(t, 3, s.TotalEntries)
	assert.Equal(t, 71.0, s.AvgWeight)
	assert.Equal(t, 8.0, s.AvgSleepHours)
	assert.Equal(t, 60.0, s.AvgHeartRate)
	assert.Equal(t, 0.0, s.AvgExerciseMinutes)
	assert.Equal(t, DateRange{Start: "2026-08-01", End: "2026-08-03"}, s.DateRange)
}

func TestTrendsChangePercent(t *testing.T) {
	var entries []domain.HealthEntry
	// First half averages 80, second half averages 76: a 5% drop.
	for day, w := range []float64{80, 80, 76, 76} {
		entries = append(entries, domain.HealthEntry{
			EntryDate: fmt.Sprintf("2026-08-%02d", day+1),
			Weight:    fptr(w),
		})
	}

	report := Trends(entries)
	trend, ok := report.Metrics[MetricWeight]
	assert.True(t, ok)
	assert.Equal(t, -5.0, trend.ChangePercent)
	assert.Equal(t, 76.0, trend.CurrentValue)
	assert.Equal(t, 76.0, trend.MinValue)
	assert.Equal(t, 80.0, trend.MaxValue)
}

func TestTrendsKeepsLastTenValues(t *testing.T) {
	var entries []domain.HealthEntry
	for day := 1; day <= 14; day++ {
		entries = append(entries, domain.HealthEntry{
			EntryDate: fmt.Sprintf("2026-08-%02d", day),
			HeartRate: iptr(60 + day),
		})
	}

	report := Trends(entries)
	trend := report.Metrics[MetricHeartRate]
	assert.Len(t, trend.Values, 10)
	assert.Equal(t, 65.0, trend.Values[0])
	assert.Equal(t, 74.0, trend.Values[9])
}

func TestTrendsSingleValueMetricOmitted(t *testing.T) {
	entries := []domain.HealthEntry{
		{EntryDate: "2026-08-01", Weight: fptr(70)},
	}

	report := Trends(entries)
	_, ok := report.Metrics[MetricWeight]
	assert.False(t, ok)
}

func TestTrendsZeroFirstHalfGuard(t *testing.T) {
	entries := []domain.HealthEntry{
		{EntryDate: "2026-08-01", ExerciseMinutes: iptr(0)},
		{EntryDate: "2026-08-02", ExerciseMinutes: iptr(45)},
	}

	report := Trends(entries)
	assert.Equal(t, 0.0, report.Metrics[MetricExerciseMinutes].ChangePercent)
}

func TestTrendsMoodCounts(t *testing.T) {
	entries := []domain.HealthEntry{
		{EntryDate: "2026-08-01", Mood: sptr("Good")},
		{EntryDate: "2026-08-02", Mood: sptr("Good")},
		{EntryDate: "2026-08-03", Mood: sptr("Poor")},
		{EntryDate: "2026-08-04"},
	}

	report := Trends(entries)
	assert.Equal(t, map[string]int{"Good": 2, "Poor": 1}, report.MoodCounts)
}
