package service

import (
	"math"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

// Metric names shared by the trend report and the AI data summaries.
const (
	MetricWeight          = "weight"
	MetricSystolic        = "systolic"
	MetricDiastolic       = "diastolic"
	MetricHeartRate       = "heart_rate"
	MetricSleepHours      = "sleep_hours"
	MetricExerciseMinutes = "exercise_minutes"
)

var MetricNames = []string{
	MetricWeight, MetricSystolic, MetricDiastolic,
	MetricHeartRate, MetricSleepHours, MetricExerciseMinutes,
}

// MetricSeries extracts the non-null values of one metric, preserving entry
// order. Unknown names yield an empty series.
func MetricSeries(entries []domain.HealthEntry, name string) []float64 {
	var out []float64
	for i := range entries {
		e := &entries[i]
		switch name {
		case MetricWeight:
			if e.Weight != nil {
				out = append(out, *e.Weight)
			}
		case MetricSystolic:
			if e.Systolic != nil {
				out = append(out, float64(*e.Systolic))
			}
		case MetricDiastolic:
			if e.Diastolic != nil {
				out = append(out, float64(*e.Diastolic))
			}
		case MetricHeartRate:
			if e.HeartRate != nil {
				out = append(out, float64(*e.HeartRate))
			}
		case MetricSleepHours:
			if e.SleepHours != nil {
				out = append(out, *e.SleepHours)
			}
		case MetricExerciseMinutes:
			if e.ExerciseMinutes != nil {
				out = append(out, float64(*e.ExerciseMinutes))
			}
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// sampleStdDev matches the n-1 denominator the original analysis used.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
