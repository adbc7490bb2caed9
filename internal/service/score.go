package service

import "github.com/healthtrackai/health-tracker-backend/internal/domain"

// HealthScore is the 0-100 composite score over the most recent entries,
// with the factors that earned points.
type HealthScore struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

const scoreWindow = 7

// Score rates the last seven entries. The rubric:
// weight variation under 1 kg earns 20; blood pressure averages under 120/80
// earn 25 (under 140/90 earn 15); a resting heart rate averaging 60-100 earns
// 20; sleep averaging 7-9 hours earns 20 (6-10 earns 10); 150+ summed exercise
// minutes earn 15 (75+ earn 10). Capped at 100.
func Score(entries []domain.HealthEntry) HealthScore {
	result := HealthScore{Factors: []string{}}
	if len(entries) == 0 {
		return result
	}

	recent := entries
	if len(recent) > scoreWindow {
		recent = recent[len(recent)-scoreWindow:]
	}

	score := 0

	weights := MetricSeries(recent, MetricWeight)
	if len(weights) > 1 && sampleStdDev(weights) < 1 {
		score += 20
		result.Factors = append(result.Factors, "Weight stability")
	}

	systolic := MetricSeries(recent, MetricSystolic)
	diastolic := MetricSeries(recent, MetricDiastolic)
	if len(systolic) > 0 && len(diastolic) > 0 {
		avgSys, avgDia := mean(systolic), mean(diastolic)
		switch {
		case avgSys < 120 && avgDia < 80:
			score += 25
			result.Factors = append(result.Factors, "Good blood pressure")
		case avgSys < 140 && avgDia < 90:
			score += 15
			result.Factors = append(result.Factors, "Acceptable blood pressure")
		}
	}

	heartRates := MetricSeries(recent, MetricHeartRate)
	if len(heartRates) > 0 {
		if avg := mean(heartRates); avg >= 60 && avg <= 100 {
			score += 20
			result.Factors = append(result.Factors, "Normal heart rate")
		}
	}

	sleep := MetricSeries(recent, MetricSleepHours)
	if len(sleep) > 0 {
		avg := mean(sleep)
		switch {
		case avg >= 7 && avg <= 9:
			score += 20
			result.Factors = append(result.Factors, "Adequate sleep")
		case avg >= 6 && avg <= 10:
			score += 10
			result.Factors = append(result.Factors, "Reasonable sleep")
		}
	}

	exercise := MetricSeries(recent, MetricExerciseMinutes)
	switch total := sum(exercise); {
	case total >= 150:
		score += 15
		result.Factors = append(result.Factors, "Sufficient exercise")
	case total >= 75:
		score += 10
		result.Factors = append(result.Factors, "Some exercise")
	}

	if score > 100 {
		score = 100
	}
	result.Score = score
	return result
}
