package handler

import (
	"net/http"

	"github.com/Dan9191/fitbyte/internal/service"
)

func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	workouts, err := h.svc.ListWorkouts(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, workouts)
}

func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var in service.WorkoutInput
	if !decodeJSON(w, r, &in) {
		return
	}
	workout, err := h.svc.CreateWorkout(r.Context(), uid, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Workout created successfully",
		"id":      workout.ID,
	})
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Workout")
	if !ok {
		return
	}
	if err := h.svc.DeleteWorkout(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	respondMessage(w, "Workout deleted successfully")
}

// LogWorkout records a completion of the workout.
func (h *Handler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Workout")
	if !ok {
		return
	}
	if _, err := h.svc.LogWorkout(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	respondMessage(w, "Workout logged successfully")
}

func (h *Handler) ListWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Workout")
	if !ok {
		return
	}
	logs, err := h.svc.ListWorkoutLogs(r.Context(), uid, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}
