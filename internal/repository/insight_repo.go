package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

type InsightRepository struct {
	db *sql.DB
}

func NewInsightRepository(db *sql.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

func (r *InsightRepository) Create(i *domain.Insight) (*domain.Insight, error) {
	err := r.db.QueryRow(
		`INSERT INTO insights
			(account_id, insight_type, content, model, period_start, period_end)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		i.AccountID, i.InsightType, string(i.Content), i.Model, i.PeriodStart, i.PeriodEnd,
	).Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save insight: %w", err)
	}
	return i, nil
}

// ListSince returns insights generated in the last n days, newest first.
func (r *InsightRepository) ListSince(accountID int64, days int) ([]domain.Insight, error) {
	rows, err := r.db.Query(
		`SELECT id, account_id, insight_type, content, model, period_start, period_end, created_at
		 FROM insights
		 WHERE account_id = $1 AND created_at >= CURRENT_DATE - $2::int
		 ORDER BY created_at DESC, id DESC`, accountID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	defer rows.Close()

	var insights []domain.Insight
	for rows.Next() {
		var i domain.Insight
		var content string
		var periodStart, periodEnd *time.Time
		if err := rows.Scan(
			&i.ID, &i.AccountID, &i.InsightType, &content, &i.Model,
			&periodStart, &periodEnd, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		i.Content = []byte(content)
		if periodStart != nil {
			s := periodStart.Format(domain.DateLayout)
			i.PeriodStart = &s
		}
		if periodEnd != nil {
			s := periodEnd.Format(domain.DateLayout)
			i.PeriodEnd = &s
		}
		insights = append(insights, i)
	}
	return insights, rows.Err()
}
