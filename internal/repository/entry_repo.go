package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `id, account_id, entry_date, weight, systolic, diastolic,
	heart_rate, sleep_hours, exercise_minutes, mood, symptoms, notes,
	created_at, updated_at`

// Upsert writes the entry for its date, replacing any metrics already logged
// for that day. One row per account per day is the table's invariant.
func (r *EntryRepository) Upsert(e *domain.HealthEntry) (*domain.HealthEntry, error) {
	row := r.db.QueryRow(
		`INSERT INTO health_entries
			(account_id, entry_date, weight, systolic, diastolic, heart_rate,
			 sleep_hours, exercise_minutes, mood, symptoms, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (account_id, entry_date) DO UPDATE SET
			weight = EXCLUDED.weight,
			systolic = EXCLUDED.systolic,
			diastolic = EXCLUDED.diastolic,
			heart_rate = EXCLUDED.heart_rate,
			sleep_hours = EXCLUDED.sleep_hours,
			exercise_minutes = EXCLUDED.exercise_minutes,
			mood = EXCLUDED.mood,
			symptoms = EXCLUDED.symptoms,
			notes = EXCLUDED.notes,
			updated_at = now()
		 RETURNING `+entryColumns,
		e.AccountID, e.EntryDate, e.Weight, e.Systolic, e.Diastolic, e.HeartRate,
		e.SleepHours, e.ExerciseMinutes, e.Mood, e.Symptoms, e.Notes,
	)

	saved, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return saved, nil
}

// ListSince returns the account's entries from the last n days, ascending by
// date.
func (r *EntryRepository) ListSince(accountID int64, days int) ([]domain.HealthEntry, error) {
	rows, err := r.db.Query(
		`SELECT `+entryColumns+`
		 FROM health_entries
		 WHERE account_id = $1 AND entry_date >= CURRENT_DATE - $2::int
		 ORDER BY entry_date ASC`, accountID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.HealthEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *EntryRepository) Latest(accountID int64) (*domain.HealthEntry, error) {
	row := r.db.QueryRow(
		`SELECT `+entryColumns+`
		 FROM health_entries
		 WHERE account_id = $1
		 ORDER BY entry_date DESC
		 LIMIT 1`, accountID,
	)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest entry: %w", err)
	}
	return e, nil
}

func (r *EntryRepository) DeleteByDate(accountID int64, date string) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM health_entries WHERE account_id = $1 AND entry_date = $2`,
		accountID, date,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.HealthEntry, error) {
	var e domain.HealthEntry
	var entryDate time.Time
	err := row.Scan(
		&e.ID, &e.AccountID, &entryDate, &e.Weight, &e.Systolic, &e.Diastolic,
		&e.HeartRate, &e.SleepHours, &e.ExerciseMinutes, &e.Mood, &e.Symptoms,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EntryDate = entryDate.Format(domain.DateLayout)
	return &e, nil
}
