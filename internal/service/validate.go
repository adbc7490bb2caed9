package service

import (
	"fmt"
	"time"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

// ValidateEntry checks an incoming health entry against the accepted
// physiological ranges. It returns every violation, not just the first, so
// the client can surface all form errors at once.
func ValidateEntry(e *domain.HealthEntry) []string {
	var errs []string

	if e.EntryDate == "" {
		errs = append(errs, "entry_date is required")
	} else {
		d, err := time.Parse(domain.DateLayout, e.EntryDate)
		if err != nil {
			errs = append(errs, "entry_date must be formatted as YYYY-MM-DD")
		} else if d.After(time.Now()) {
			errs = append(errs, "entry_date cannot be in the future")
		}
	}

	if e.Weight != nil && (*e.Weight <= 0 || *e.Weight > 500) {
		errs = append(errs, "weight must be between 1 and 500 kg")
	}
	if e.Systolic != nil && (*e.Systolic < 70 || *e.Systolic > 300) {
		errs = append(errs, "systolic blood pressure must be between 70 and 300 mmHg")
	}
	if e.Diastolic != nil && (*e.Diastolic < 40 || *e.Diastolic > 200) {
		errs = append(errs, "diastolic blood pressure must be between 40 and 200 mmHg")
	}
	if e.HeartRate != nil && (*e.HeartRate < 30 || *e.HeartRate > 220) {
		errs = append(errs, "heart rate must be between 30 and 220 bpm")
	}
	if e.SleepHours != nil && (*e.SleepHours < 0 || *e.SleepHours > 24) {
		errs = append(errs, "sleep hours must be between 0 and 24")
	}
	if e.ExerciseMinutes != nil && (*e.ExerciseMinutes < 0 || *e.ExerciseMinutes > 1440) {
		errs = append(errs, "exercise minutes must be between 0 and 1440")
	}
	if e.Mood != nil && *e.Mood != "" && !validMood(*e.Mood) {
		errs = append(errs, fmt.Sprintf("mood must be one of %v", domain.Moods))
	}

	return errs
}

func validMood(m string) bool {
	for _, mood := range domain.Moods {
		if mood == m {
			return true
		}
	}
	return false
}
