package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrackai/health-tracker-backend/internal/ai"
	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
)

func aiStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGenerateInsight(t *testing.T) {
	db, mock := newMock(t)
	server := aiStub(t, `{"overall_health":"Looking good"}`)
	client := ai.NewClient("key", "gpt-4o", server.URL)
	h := NewInsightHandler(
		repository.NewEntryRepository(db),
		repository.NewGoalRepository(db),
		repository.NewInsightRepository(db),
		client,
	)

	rows := sqlmock.NewRows(entryCols)
	entryRow(rows, 1, "2026-08-20", fptr(80), nil, nil, nil, nil, nil, nil)
	entryRow(rows, 2, "2026-08-26", fptr(79), nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM health_entries").WillReturnRows(rows)

	mock.ExpectQuery("INSERT INTO insights").
		WithArgs(testAccountID, "insight", `{"overall_health":"Looking good"}`, "gpt-4o", "2026-08-20", "2026-08-26").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	req := authedRequest(http.MethodPost, "/api/v1/insights/generate", nil)
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var saved domain.Insight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, domain.InsightTypeInsight, saved.InsightType)
	assert.Equal(t, "gpt-4o", saved.Model)
	assert.JSONEq(t, `{"overall_health":"Looking good"}`, string(saved.Content))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateInsightNotConfigured(t *testing.T) {
	db, _ := newMock(t)
	h := NewInsightHandler(
		repository.NewEntryRepository(db), nil, nil,
		ai.NewClient("", "gpt-4o", "https://api.openai.com/v1"),
	)

	req := authedRequest(http.MethodPost, "/api/v1/insights/generate", nil)
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateInsightNoData(t *testing.T) {
	db, mock := newMock(t)
	server := aiStub(t, `{}`)
	h := NewInsightHandler(
		repository.NewEntryRepository(db), nil, nil,
		ai.NewClient("key", "gpt-4o", server.URL),
	)

	mock.ExpectQuery("FROM health_entries").WillReturnRows(sqlmock.NewRows(entryCols))

	req := authedRequest(http.MethodPost, "/api/v1/insights/generate", nil)
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateInsightUpstreamFailure(t *testing.T) {
	db, mock := newMock(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	h := NewInsightHandler(
		repository.NewEntryRepository(db), nil, nil,
		ai.NewClient("key", "gpt-4o", server.URL),
	)

	rows := sqlmock.NewRows(entryCols)
	entryRow(rows, 1, "2026-08-26", fptr(80), nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM health_entries").WillReturnRows(rows)

	req := authedRequest(http.MethodPost, "/api/v1/insights/generate", nil)
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRecommendGoals(t *testing.T) {
	db, mock := newMock(t)
	server := aiStub(t, `{"recommended_goals":[]}`)
	h := NewInsightHandler(
		repository.NewEntryRepository(db),
		repository.NewGoalRepository(db),
		repository.NewInsightRepository(db),
		ai.NewClient("key", "gpt-4o", server.URL),
	)

	rows := sqlmock.NewRows(entryCols)
	entryRow(rows, 1, "2026-08-26", fptr(80), nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM health_entries").WillReturnRows(rows)

	goalRows := sqlmock.NewRows(goalCols)
	goalRow(goalRows, 1, "exercise", 150, 60, "active")
	mock.ExpectQuery("FROM goals").WillReturnRows(goalRows)

	mock.ExpectQuery("INSERT INTO insights").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))

	req := authedRequest(http.MethodPost, "/api/v1/goals/recommendations", nil)
	rec := httptest.NewRecorder()
	h.RecommendGoals(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var saved domain.Insight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, domain.InsightTypeGoalRecommendation, saved.InsightType)
}

func TestListInsightsEmpty(t *testing.T) {
	db, mock := newMock(t)
	h := NewInsightHandler(nil, nil, repository.NewInsightRepository(db), nil)

	mock.ExpectQuery("FROM insights").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "account_id", "insight_type", "content", "model",
			"period_start", "period_end", "created_at",
		}))

	req := authedRequest(http.MethodGet, "/api/v1/insights", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
