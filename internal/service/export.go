package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

// EntriesCSV renders health entries as a CSV backup, one row per logged day.
func EntriesCSV(entries []domain.HealthEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"entry_date", "weight", "systolic", "diastolic", "heart_rate",
		"sleep_hours", "exercise_minutes", "mood", "symptoms", "notes",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		row := []string{
			e.EntryDate,
			floatField(e.Weight),
			intField(e.Systolic),
			intField(e.Diastolic),
			intField(e.HeartRate),
			floatField(e.SleepHours),
			intField(e.ExerciseMinutes),
			stringField(e.Mood),
			stringField(e.Symptoms),
			stringField(e.Notes),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// GoalsCSV renders goals as a CSV backup.
func GoalsCSV(goals []domain.Goal) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"goal_type", "description", "target_value", "current_value",
		"target_date", "status",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range goals {
		g := &goals[i]
		row := []string{
			g.GoalType,
			g.Description,
			strconv.FormatFloat(g.TargetValue, 'f', -1, 64),
			strconv.FormatFloat(g.CurrentValue, 'f', -1, 64),
			g.TargetDate,
			g.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func stringField(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
