package handler

import (
	"net/http"

	"github.com/Dan9191/fitbyte/internal/models"
	"github.com/Dan9191/fitbyte/internal/service"
)

// ListNutrition supports ?date= or ?startDate=&endDate=.
func (h *Handler) ListNutrition(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := models.NutritionFilter{
		Date:      q.Get("date"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	entries, err := h.svc.ListNutrition(r.Context(), uid, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) NutritionSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	summary, err := h.svc.NutritionSummary(r.Context(), uid, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) CreateNutrition(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var in service.NutritionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	entry, err := h.svc.CreateNutrition(r.Context(), uid, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) UpdateNutrition(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Nutrition entry")
	if !ok {
		return
	}
	var in service.NutritionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if _, err := h.svc.UpdateNutrition(r.Context(), uid, id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	respondMessage(w, "Nutrition entry updated successfully")
}

func (h *Handler) DeleteNutrition(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "Nutrition entry")
	if !ok {
		return
	}
	if err := h.svc.DeleteNutrition(r.Context(), uid, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	respondMessage(w, "Nutrition entry deleted successfully")
}
