package domain

import "time"

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
)

// GoalTypes is the closed set of goal categories the app tracks.
var GoalTypes = []string{
	"weight_loss", "weight_gain", "exercise", "sleep",
	"heart_rate", "blood_pressure", "general",
}

type Goal struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"account_id"`
	GoalType     string    `json:"goal_type"`
	Description  string    `json:"description"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	TargetDate   string    `json:"target_date"`
	Status       string    `json:"status"`
	Progress     float64   `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProgressPercent is current/target capped to one decimal of sanity: a zero
// target always reads as 0 instead of dividing by zero.
func (g *Goal) ProgressPercent() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue * 100
}

func ValidGoalType(t string) bool {
	for _, gt := range GoalTypes {
		if gt == t {
			return true
		}
	}
	return false
}

func ValidGoalStatus(s string) bool {
	return s == GoalStatusActive || s == GoalStatusCompleted || s == GoalStatusPaused
}
