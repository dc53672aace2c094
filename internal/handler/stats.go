package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"

	"github.com/Dan9191/fitbyte/internal/export"
	"github.com/Dan9191/fitbyte/internal/service"
)

func (h *Handler) WorkoutStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.WorkoutStats(r.Context(), uid, service.ParseDays(r.URL.Query().Get("days")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) NutritionStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.NutritionStats(r.Context(), uid, service.ParseDays(r.URL.Query().Get("days")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) GoalStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.GoalStats(r.Context(), uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Export downloads all of the caller's data as json, yaml or xml.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	data, format, err := h.svc.Export(r.Context(), uid, r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, data); err != nil {
		h.writeError(w, r, err)
		return
	}
	name := unsafeFilename.ReplaceAllString(data.User.Username, "_")
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="fitbyte-%s.%s"`, name, format.Extension()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
