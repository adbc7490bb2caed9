package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient(apiKey, baseURL string) *Client {
	c := NewClient(apiKey, "gpt-4o", baseURL)
	c.backoff = time.Millisecond
	return c
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestCompleteJSONHappyPath(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(completionBody(`{"overall_health":"looking good"}`)))
	}))
	defer srv.Close()

	c := fastClient("test-key", srv.URL)
	raw, err := c.CompleteJSON(context.Background(), "system text", "user text", 500)
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall_health":"looking good"}`, string(raw))

	assert.Equal(t, "gpt-4o", gotReq.Model)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	assert.Equal(t, 500, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user text", gotReq.Messages[1].Content)
}

func TestCompleteJSONRequiresAPIKey(t *testing.T) {
	c := fastClient("", "http://unused")
	_, err := c.CompleteJSON(context.Background(), "s", "u", 100)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompleteJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(completionBody(`{"ok":true}`)))
	}))
	defer srv.Close()

	c := fastClient("k", srv.URL)
	raw, err := c.CompleteJSON(context.Background(), "s", "u", 100)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, int32(3), calls.Load())
}

func TestCompleteJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	c := fastClient("k", srv.URL)
	_, err := c.CompleteJSON(context.Background(), "s", "u", 100)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCompleteJSONGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := fastClient("k", srv.URL)
	_, err := c.CompleteJSON(context.Background(), "s", "u", 100)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	// Initial attempt plus three retries.
	assert.Equal(t, int32(4), calls.Load())
}

func TestCompleteJSONRejectsNonJSONContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("Here are your insights: drink more water.")))
	}))
	defer srv.Close()

	c := fastClient("k", srv.URL)
	_, err := c.CompleteJSON(context.Background(), "s", "u", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestCompleteJSONEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := fastClient("k", srv.URL)
	_, err := c.CompleteJSON(context.Background(), "s", "u", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteJSONHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := fastClient("k", srv.URL)
	c.backoff = time.Minute
	_, err := c.CompleteJSON(ctx, "s", "u", 100)
	assert.True(t, errors.Is(err, context.Canceled))
}
