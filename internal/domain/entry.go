package domain

import "time"

// HealthEntry is one logged day of health metrics. Every metric is optional;
// a day with only sleep hours is still a valid entry.
type HealthEntry struct {
	ID              int64     `json:"id"`
	AccountID       int64     `json:"account_id"`
	EntryDate       string    `json:"entry_date"`
	Weight          *float64  `json:"weight"`
	Systolic        *int      `json:"systolic"`
	Diastolic       *int      `json:"diastolic"`
	HeartRate       *int      `json:"heart_rate"`
	SleepHours      *float64  `json:"sleep_hours"`
	ExerciseMinutes *int      `json:"exercise_minutes"`
	Mood            *string   `json:"mood"`
	Symptoms        *string   `json:"symptoms"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Moods accepted by the entry form.
var Moods = []string{"Excellent", "Good", "Average", "Poor", "Very Poor"}

// DateLayout is the wire format for entry and goal dates.
const DateLayout = "2006-01-02"
