package ai

import (
	"encoding/json"
	"math"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/service"
)

// Token budgets per prompt kind.
const (
	InsightsMaxTokens       = 1500
	GoalRecsMaxTokens       = 1000
	TrendAnalysisMaxTokens  = 1000
	promptRecentEntryWindow = 7
)

const SystemInsights = "You are a knowledgeable health advisor AI. Provide helpful, accurate health insights while emphasizing the importance of consulting healthcare professionals for medical advice."

const SystemGoalRecommendations = "You are a health goal advisor. Recommend SMART health goals based on user data."

const SystemTrendAnalysis = "You are a health data analyst. Identify meaningful trends and patterns in health data."

type metricAverage struct {
	Recent  float64 `json:"recent"`
	Overall float64 `json:"overall"`
	Trend   string  `json:"trend"`
}

type dataSummary struct {
	TotalEntries      int                      `json:"total_entries"`
	DateRange         string                   `json:"date_range"`
	RecentAverages    map[string]metricAverage `json:"recent_averages"`
	RecentMoodPattern map[string]int           `json:"recent_mood_pattern,omitempty"`
}

// BuildDataSummary condenses the entry history into the JSON block the
// insight prompts embed: overall vs last-week averages per metric and the
// recent mood distribution.
func BuildDataSummary(entries []domain.HealthEntry) string {
	if len(entries) == 0 {
		return "No health data available"
	}

	recent := entries
	if len(recent) > promptRecentEntryWindow {
		recent = recent[len(recent)-promptRecentEntryWindow:]
	}

	summary := dataSummary{
		TotalEntries:   len(entries),
		DateRange:      entries[0].EntryDate + " to " + entries[len(entries)-1].EntryDate,
		RecentAverages: map[string]metricAverage{},
	}

	for _, name := range service.MetricNames {
		recentValues := service.MetricSeries(recent, name)
		overallValues := service.MetricSeries(entries, name)
		if len(recentValues) == 0 || len(overallValues) == 0 {
			continue
		}

		recentAvg := avg(recentValues)
		overallAvg := avg(overallValues)

		// A falling average only reads as improvement for the metrics where
		// lower is better.
		trend := "stable"
		if recentAvg < overallAvg && lowerIsBetter(name) {
			trend = "improving"
		}

		summary.RecentAverages[name] = metricAverage{
			Recent:  recentAvg,
			Overall: overallAvg,
			Trend:   trend,
		}
	}

	moods := map[string]int{}
	for i := range recent {
		if m := recent[i].Mood; m != nil && *m != "" {
			moods[*m]++
		}
	}
	if len(moods) > 0 {
		summary.RecentMoodPattern = moods
	}

	return marshalIndent(summary)
}

type goalRecord struct {
	GoalType     string  `json:"goal_type"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Description  string  `json:"description"`
}

type goalsSummary struct {
	ActiveGoals    int          `json:"active_goals"`
	CompletedGoals int          `json:"completed_goals"`
	GoalTypes      []string     `json:"goal_types"`
	RecentGoals    []goalRecord `json:"recent_goals"`
}

// BuildGoalsSummary condenses the goal list for the recommendation prompt.
func BuildGoalsSummary(goals []domain.Goal) string {
	if len(goals) == 0 {
		return "No existing goals"
	}

	summary := goalsSummary{GoalTypes: []string{}, RecentGoals: []goalRecord{}}
	for i := range goals {
		g := &goals[i]
		switch g.Status {
		case domain.GoalStatusCompleted:
			summary.CompletedGoals++
		case domain.GoalStatusActive:
			summary.ActiveGoals++
			summary.GoalTypes = append(summary.GoalTypes, g.GoalType)
			summary.RecentGoals = append(summary.RecentGoals, goalRecord{
				GoalType:     g.GoalType,
				TargetValue:  g.TargetValue,
				CurrentValue: g.CurrentValue,
				Description:  g.Description,
			})
		}
	}

	return marshalIndent(summary)
}

// BuildTrendSummary serializes the per-metric trend report for the trend
// analysis prompt.
func BuildTrendSummary(entries []domain.HealthEntry) string {
	report := service.Trends(entries)
	if len(report.Metrics) == 0 {
		return "No trend data available"
	}
	return marshalIndent(report.Metrics)
}

func InsightsPrompt(dataSummary string) string {
	return `You are a health analysis AI assistant. Based on the following health data summary, provide comprehensive health insights and recommendations.

Health Data Summary:
` + dataSummary + `

Please provide a detailed analysis in JSON format with the following structure:
{
  "overall_health": "Brief overall health assessment",
  "recommendations": ["List of 3-5 specific actionable recommendations"],
  "trends": ["List of notable trends observed in the data"],
  "risk_factors": ["List of potential risk factors identified"],
  "positive_aspects": ["List of positive health indicators"],
  "areas_for_improvement": ["Specific areas that need attention"]
}

Focus on:
- Practical, actionable advice
- Patterns and trends in the data
- Maintaining a supportive and encouraging tone
- Health education and awareness`
}

func GoalRecommendationsPrompt(healthSummary, goalsSummary string) string {
	return `Based on the user's health data and existing goals, recommend 3-5 SMART health goals.

Current Health Data:
` + healthSummary + `

Existing Goals:
` + goalsSummary + `

Please provide goal recommendations in JSON format:
{
  "recommended_goals": [
    {
      "goal_type": "weight_loss|exercise|sleep|heart_rate|blood_pressure|general",
      "description": "Clear, specific goal description",
      "target_value": "numeric target value",
      "timeframe": "suggested timeframe in days",
      "rationale": "why this goal is recommended"
    }
  ]
}

Ensure goals are:
- Specific and measurable
- Realistic and achievable
- Time-bound
- Based on current health data
- Not duplicating existing active goals`
}

func TrendAnalysisPrompt(trendSummary string) string {
	return `Analyze the following health trend data and identify significant patterns:

` + trendSummary + `

Provide analysis in JSON format:
{
  "trends": [
    {
      "metric": "health metric name",
      "trend": "increasing|decreasing|stable",
      "significance": "high|medium|low",
      "description": "detailed trend description"
    }
  ],
  "patterns": [
    {
      "pattern": "pattern description",
      "correlation": "related metrics or factors",
      "recommendation": "suggested action"
    }
  ]
}`
}

func lowerIsBetter(metric string) bool {
	switch metric {
	case service.MetricWeight, service.MetricSystolic, service.MetricDiastolic:
		return true
	}
	return false
}

func avg(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return math.Round(s/float64(len(values))*100) / 100
}

func marshalIndent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
