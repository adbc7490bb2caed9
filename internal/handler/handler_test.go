package handler

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/healthtrackai/health-tracker-backend/internal/middleware"
)

const testAccountID int64 = 7

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// authedRequest builds a request that already passed the auth middleware.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.AccountIDKey, testAccountID)
	return req.WithContext(ctx)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

var entryCols = []string{
	"id", "account_id", "entry_date", "weight", "systolic", "diastolic",
	"heart_rate", "sleep_hours", "exercise_minutes", "mood", "symptoms",
	"notes", "created_at", "updated_at",
}

func entryRow(rows *sqlmock.Rows, id int64, date string, weight *float64, systolic, diastolic, heartRate *int, sleep *float64, exercise *int, mood *string) *sqlmock.Rows {
	d, _ := time.Parse("2006-01-02", date)
	now := time.Now()
	return rows.AddRow(
		id, testAccountID, d, weight, systolic, diastolic, heartRate,
		sleep, exercise, mood, nil, nil, now, now,
	)
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
