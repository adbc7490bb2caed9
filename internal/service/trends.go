package service

import "github.com/healthtrackai/health-tracker-backend/internal/domain"

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary is the dashboard overview block: overall averages per metric and
// the covered date range. Averages ignore days where the metric was not
// logged.
type Summary struct {
	TotalEntries       int       `json:"total_entries"`
	AvgWeight          float64   `json:"avg_weight"`
	AvgHeartRate       float64   `json:"avg_heart_rate"`
	AvgSleepHours      float64   `json:"avg_sleep_hours"`
	AvgExerciseMinutes float64   `json:"avg_exercise_minutes"`
	DateRange          DateRange `json:"date_range"`
}

// Summarize expects entries ascending by date, as the repository returns them.
func Summarize(entries []domain.HealthEntry) Summary {
	s := Summary{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return s
	}

	s.AvgWeight = round2(mean(MetricSeries(entries, MetricWeight)))
	s.AvgHeartRate = round2(mean(MetricSeries(entries, MetricHeartRate)))
	s.AvgSleepHours = round2(mean(MetricSeries(entries, MetricSleepHours)))
	s.AvgExerciseMinutes = round2(mean(MetricSeries(entries, MetricExerciseMinutes)))
	s.DateRange = DateRange{
		Start: entries[0].EntryDate,
		End:   entries[len(entries)-1].EntryDate,
	}
	return s
}

// MetricTrend describes how one metric moved across the window: the last ten
// logged values and the percentage change between the first and second half
// of the series.
type MetricTrend struct {
	Values        []float64 `json:"values"`
	ChangePercent float64   `json:"change_percent"`
	CurrentValue  float64   `json:"current_value"`
	MinValue      float64   `json:"min_value"`
	MaxValue      float64   `json:"max_value"`
}

type TrendReport struct {
	Metrics    map[string]MetricTrend `json:"metrics"`
	MoodCounts map[string]int         `json:"mood_counts"`
}

func Trends(entries []domain.HealthEntry) TrendReport {
	report := TrendReport{
		Metrics:    map[string]MetricTrend{},
		MoodCounts: map[string]int{},
	}

	for _, name := range MetricNames {
		values := MetricSeries(entries, name)
		if len(values) < 2 {
			continue
		}

		firstHalf := mean(values[:len(values)/2])
		secondHalf := mean(values[len(values)/2:])
		var change float64
		if firstHalf != 0 {
			change = (secondHalf - firstHalf) / firstHalf * 100
		}

		tail := values
		if len(tail) > 10 {
			tail = tail[len(tail)-10:]
		}

		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		report.Metrics[name] = MetricTrend{
			Values:        tail,
			ChangePercent: round2(change),
			CurrentValue:  values[len(values)-1],
			MinValue:      min,
			MaxValue:      max,
		}
	}

	for i := range entries {
		if m := entries[i].Mood; m != nil && *m != "" {
			report.MoodCounts[*m]++
		}
	}

	return report
}
