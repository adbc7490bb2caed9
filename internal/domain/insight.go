package domain

import (
	"encoding/json"
	"time"
)

const (
	InsightTypeInsight            = "insight"
	InsightTypeTrendAnalysis      = "trend_analysis"
	InsightTypeGoalRecommendation = "goal_recommendation"
)

// Insight is one stored AI response. Content is kept as the raw JSON text the
// model returned; callers re-parse at the edge.
type Insight struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	InsightType string          `json:"insight_type"`
	Content     json.RawMessage `json:"content"`
	Model       string          `json:"model"`
	PeriodStart *string         `json:"period_start"`
	PeriodEnd   *string         `json:"period_end"`
	CreatedAt   time.Time       `json:"created_at"`
}
