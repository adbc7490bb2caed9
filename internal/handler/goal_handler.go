package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
)

type GoalHandler struct {
	repo *repository.GoalRepository
}

func NewGoalHandler(repo *repository.GoalRepository) *GoalHandler {
	return &GoalHandler{repo: repo}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var goal domain.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateGoal(&goal); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	goal.AccountID = id
	saved, err := h.repo.Create(&goal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !domain.ValidGoalStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	goals, err := h.repo.ListByAccount(id, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch goals")
		return
	}
	if goals == nil {
		goals = []domain.Goal{}
	}

	writeJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	goalID, ok := pathID(w, r)
	if !ok {
		return
	}

	goal, err := h.repo.GetByID(id, goalID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch goal")
		return
	}
	if goal == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	goalID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		CurrentValue *float64 `json:"current_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CurrentValue == nil {
		writeError(w, http.StatusBadRequest, "current_value is required")
		return
	}
	if *req.CurrentValue < 0 {
		writeError(w, http.StatusBadRequest, "current_value must not be negative")
		return
	}

	goal, err := h.repo.UpdateProgress(id, goalID, *req.CurrentValue)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}
	if goal == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	goalID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !domain.ValidGoalStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "status must be one of: active, completed, paused")
		return
	}

	goal, err := h.repo.UpdateStatus(id, goalID, req.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}
	if goal == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	goalID, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(id, goalID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func validateGoal(g *domain.Goal) []string {
	var errs []string

	if !domain.ValidGoalType(g.GoalType) {
		errs = append(errs, "goal_type must be one of: "+strings.Join(domain.GoalTypes, ", "))
	}
	if strings.TrimSpace(g.Description) == "" {
		errs = append(errs, "description is required")
	}
	if g.TargetValue <= 0 {
		errs = append(errs, "target_value must be greater than zero")
	}
	if g.CurrentValue < 0 {
		errs = append(errs, "current_value must not be negative")
	}

	if g.TargetDate == "" {
		errs = append(errs, "target_date is required")
	} else if target, err := time.Parse(domain.DateLayout, g.TargetDate); err != nil {
		errs = append(errs, "target_date must be YYYY-MM-DD")
	} else {
		today, _ := time.Parse(domain.DateLayout, time.Now().Format(domain.DateLayout))
		if target.Before(today) {
			errs = append(errs, "target_date must not be in the past")
		}
	}

	return errs
}
