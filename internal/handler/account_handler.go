package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/healthtrackai/health-tracker-backend/internal/repository"
)

type AccountHandler struct {
	repo *repository.AccountRepository
}

func NewAccountHandler(repo *repository.AccountRepository) *AccountHandler {
	return &AccountHandler{repo: repo}
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.repo.GetProfile(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req struct {
		FullName *string `json:"full_name"`
		HeightCm *int    `json:"height_cm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if len(name) > 100 {
			writeError(w, http.StatusBadRequest, "full name too long")
			return
		}
		fields["full_name"] = name
	}
	if req.HeightCm != nil {
		if *req.HeightCm < 50 || *req.HeightCm > 280 {
			writeError(w, http.StatusBadRequest, "height must be between 50 and 280 cm")
			return
		}
		fields["height_cm"] = *req.HeightCm
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.repo.UpdateProfile(id, fields); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	account, err := h.repo.GetProfile(id)
	if err != nil || account == nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	writeJSON(w, http.StatusOK, account)
}
