package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

const goalColumns = `id, account_id, goal_type, description, target_value,
	current_value, target_date, status, created_at, updated_at`

func (r *GoalRepository) Create(g *domain.Goal) (*domain.Goal, error) {
	row := r.db.QueryRow(
		`INSERT INTO goals
			(account_id, goal_type, description, target_value, current_value, target_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+goalColumns,
		g.AccountID, g.GoalType, g.Description, g.TargetValue, g.CurrentValue, g.TargetDate,
	)

	saved, err := scanGoal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return saved, nil
}

// ListByAccount returns goals newest first, optionally filtered by status.
func (r *GoalRepository) ListByAccount(accountID int64, status string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE account_id = $1`
	args := []interface{}{accountID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) GetByID(accountID, id int64) (*domain.Goal, error) {
	row := r.db.QueryRow(
		`SELECT `+goalColumns+` FROM goals WHERE account_id = $1 AND id = $2`,
		accountID, id,
	)

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}

// UpdateProgress sets the goal's current value and flips it to completed once
// the target is reached. An already-paused goal keeps its status until the
// target is hit.
func (r *GoalRepository) UpdateProgress(accountID, id int64, currentValue float64) (*domain.Goal, error) {
	row := r.db.QueryRow(
		`UPDATE goals
		 SET current_value = $3,
		     status = CASE WHEN $3 >= target_value THEN 'completed' ELSE status END,
		     updated_at = now()
		 WHERE account_id = $1 AND id = $2
		 RETURNING `+goalColumns,
		accountID, id, currentValue,
	)

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}
	return g, nil
}

func (r *GoalRepository) UpdateStatus(accountID, id int64, status string) (*domain.Goal, error) {
	row := r.db.QueryRow(
		`UPDATE goals
		 SET status = $3, updated_at = now()
		 WHERE account_id = $1 AND id = $2
		 RETURNING `+goalColumns,
		accountID, id, status,
	)

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", err)
	}
	return g, nil
}

func (r *GoalRepository) Delete(accountID, id int64) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM goals WHERE account_id = $1 AND id = $2`,
		accountID, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

// StatusCounts returns the number of goals per status for the admin stats
// page.
func (r *GoalRepository) StatusCounts(accountID int64) (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT status, COUNT(*) FROM goals WHERE account_id = $1 GROUP BY status`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan goal count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var targetDate time.Time
	err := row.Scan(
		&g.ID, &g.AccountID, &g.GoalType, &g.Description, &g.TargetValue,
		&g.CurrentValue, &targetDate, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.TargetDate = targetDate.Format(domain.DateLayout)
	g.Progress = g.ProgressPercent()
	return &g, nil
}
