package handler

import (
	"fmt"
	"net/http"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/Dan9191/fitbyte/internal/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route under the configured prefix and wraps the
// router with CORS, request logging and panic recovery.
func NewRouter(h *Handler, cfg *config.Config, tokens *auth.TokenManager, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	setFallbacks(r)

	api := r
	if cfg.APIPrefix != "" {
		api = r.PathPrefix(cfg.APIPrefix).Subrouter()
		setFallbacks(api)
	}

	// Public routes
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	setFallbacks(protected)
	protected.Use(middleware.AuthMiddleware(tokens))

	protected.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	protected.HandleFunc("/workouts", h.ListWorkouts).Methods(http.MethodGet)
	protected.HandleFunc("/workouts", h.CreateWorkout).Methods(http.MethodPost)
	protected.HandleFunc("/workouts/{id}", h.DeleteWorkout).Methods(http.MethodDelete)
	protected.HandleFunc("/workouts/{id}/log", h.LogWorkout).Methods(http.MethodPost)
	protected.HandleFunc("/workouts/{id}/logs", h.ListWorkoutLogs).Methods(http.MethodGet)

	protected.HandleFunc("/goals", h.ListGoals).Methods(http.MethodGet)
	protected.HandleFunc("/goals", h.CreateGoal).Methods(http.MethodPost)
	protected.HandleFunc("/goals/{id}", h.UpdateGoal).Methods(http.MethodPut)
	protected.HandleFunc("/goals/{id}", h.DeleteGoal).Methods(http.MethodDelete)

	protected.HandleFunc("/nutrition", h.ListNutrition).Methods(http.MethodGet)
	protected.HandleFunc("/nutrition", h.CreateNutrition).Methods(http.MethodPost)
	protected.HandleFunc("/nutrition/summary", h.NutritionSummary).Methods(http.MethodGet)
	protected.HandleFunc("/nutrition/{id}", h.UpdateNutrition).Methods(http.MethodPut)
	protected.HandleFunc("/nutrition/{id}", h.DeleteNutrition).Methods(http.MethodDelete)

	protected.HandleFunc("/stats/workouts", h.WorkoutStats).Methods(http.MethodGet)
	protected.HandleFunc("/stats/nutrition", h.NutritionStats).Methods(http.MethodGet)
	protected.HandleFunc("/stats/goals", h.GoalStats).Methods(http.MethodGet)

	protected.HandleFunc("/export", h.Export).Methods(http.MethodGet)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	var handler http.Handler = r
	handler = middleware.RecoverMiddleware(log)(handler)
	handler = middleware.LoggerMiddleware(log)(handler)
	return corsHandler(handler)
}

// setFallbacks installs the JSON 404 and 405 handlers. Subrouters do not
// inherit them from their parent.
func setFallbacks(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, fmt.Sprintf("Route not found: %s %s", r.Method, r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed: %s %s", r.Method, r.URL.Path))
}
