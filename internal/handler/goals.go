package handler

import (
	"net/http"

	"github.com/Dan9191/fitbyte/internal/models"
)

type createGoalRequest struct {
	Title string `json:"title"`
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	goals, err := h.svc.ListGoals(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	goal, err := h.svc.CreateGoal(r.Context(), uid, req.Title)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, goal)
}

type goalResponse struct {
	Message string       `json:"message"`
	Goal    *models.Goal `json:"goal"`
}

// UpdateGoal applies a partial update; omitted fields are unchanged.
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Goal")
	if !ok {
		return
	}
	var upd models.GoalUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	goal, err := h.svc.UpdateGoal(r.Context(), uid, id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, goalResponse{Message: "Goal updated successfully", Goal: goal})
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Goal")
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	respondMessage(w, "Goal deleted successfully")
}
