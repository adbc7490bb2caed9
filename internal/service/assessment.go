package service

import "math"

// BMI from weight in kilograms and height in centimeters, rounded to one
// decimal. Returns 0 when either input is unusable.
func BMI(weightKg float64, heightCm int) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := float64(heightCm) / 100
	return math.Round(weightKg/(h*h)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BloodPressureCategory follows the AHA ladder.
func BloodPressureCategory(systolic, diastolic int) string {
	switch {
	case systolic <= 0 || diastolic <= 0:
		return "Unknown"
	case systolic < 120 && diastolic < 80:
		return "Normal"
	case systolic < 130 && diastolic < 80:
		return "Elevated"
	case systolic < 140 || diastolic < 90:
		return "High Blood Pressure Stage 1"
	case systolic < 180 || diastolic < 120:
		return "High Blood Pressure Stage 2"
	default:
		return "Hypertensive Crisis"
	}
}

func HeartRateCategory(heartRate int) string {
	switch {
	case heartRate <= 0:
		return "Unknown"
	case heartRate < 60:
		return "Below Normal (Bradycardia)"
	case heartRate <= 100:
		return "Normal"
	default:
		return "Above Normal (Tachycardia)"
	}
}

var healthTips = map[string]string{
	"weight":         "Track your weight at the same time each day, preferably in the morning after using the bathroom.",
	"blood_pressure": "Take measurements at the same time daily, avoid caffeine 30 minutes before, and rest for 5 minutes beforehand.",
	"heart_rate":     "Resting heart rate is best measured first thing in the morning. Lower resting heart rate often indicates better fitness.",
	"sleep":          "Aim for 7-9 hours of quality sleep. Maintain consistent sleep and wake times, even on weekends.",
	"exercise":       "WHO recommends at least 150 minutes of moderate-intensity exercise per week. Start small and gradually increase.",
	"mood":           "Regular exercise, adequate sleep, and social connections significantly impact mood and mental health.",
}

const defaultTip = "Consistency in tracking helps identify patterns and improve your health journey."

// Tip returns the coaching tip for a metric topic, falling back to a generic
// one for unknown topics.
func Tip(topic string) string {
	if tip, ok := healthTips[topic]; ok {
		return tip
	}
	return defaultTip
}
