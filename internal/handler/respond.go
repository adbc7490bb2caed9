package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/healthtrackai/health-tracker-backend/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationErrors(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"errors": errs,
	})
}

// accountID resolves the authenticated account or writes a 401.
func accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.AccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
	}
	return id, ok
}

const (
	defaultWindowDays = 30
	maxWindowDays     = 3650
)

// queryDays parses the ?days= window, clamped to sane bounds.
func queryDays(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return fallback
	}
	if days > maxWindowDays {
		return maxWindowDays
	}
	return days
}
