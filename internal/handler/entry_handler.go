package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
	"github.com/healthtrackai/health-tracker-backend/internal/service"
)

type EntryHandler struct {
	repo *repository.EntryRepository
}

func NewEntryHandler(repo *repository.EntryRepository) *EntryHandler {
	return &EntryHandler{repo: repo}
}

// Create inserts an entry, or overwrites the entry already recorded for the
// same date.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var entry domain.HealthEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := service.ValidateEntry(&entry); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	entry.AccountID = id
	saved, err := h.repo.Upsert(&entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save entry")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.repo.ListSince(id, queryDays(r, defaultWindowDays))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}
	if entries == nil {
		entries = []domain.HealthEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) Latest(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entry, err := h.repo.Latest(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch entry")
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "no entries recorded")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	date := mux.Vars(r)["date"]
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	deleted, err := h.repo.DeleteByDate(id, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "no entry for that date")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
