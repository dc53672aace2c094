package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/Dan9191/fitbyte/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t      *testing.T
	router http.Handler
	repo   *repository.Repository
	tokens *auth.TokenManager
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	repo, err := repository.Open(context.Background(), config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	if _, err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		BcryptCost:  bcrypt.MinCost,
		APIPrefix:   "/api",
		CORSOrigins: []string{"*"},
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	svc := service.NewService(repo, log, cfg, tokens, nil)
	return &testServer{
		t:      t,
		router: NewRouter(NewHandler(svc, log), cfg, tokens, log),
		repo:   repo,
		tokens: tokens,
	}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				s.t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(username string) (string, int64) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": username + "@example.com", "password": "secret",
	})
	if rec.Code != http.StatusCreated {
		s.t.Fatalf("register %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	var res struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	decode(s.t, rec, &res)
	return res.Token, res.User.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, rec, &body)
	return body["error"]
}

func TestHealth(t *testing.T) {
	s := setupTestServer(t)
	rec := s.do(http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRegisterTokenResolvesToUser(t *testing.T) {
	s := setupTestServer(t)
	token, id := s.register("alice")

	claims, err := s.tokens.Parse(token)
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims.UserID != id {
		t.Errorf("token user id = %d, want %d", claims.UserID, id)
	}

	rec := s.do(http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: status %d", rec.Code)
	}
	var me map[string]any
	decode(t, rec, &me)
	if me["username"] != "alice" {
		t.Errorf("me = %v", me)
	}
	if _, leaked := me["passwordHash"]; leaked {
		t.Error("password hash exposed")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := setupTestServer(t)
	s.register("alice")

	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice", "email": "different@example.com", "password": "secret",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Username or email already exists" {
		t.Errorf("error = %q", msg)
	}
	users, err := s.repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected exactly one user, got %d", len(users))
	}
}

func TestLogin(t *testing.T) {
	s := setupTestServer(t)
	s.register("alice")

	tests := []struct {
		name string
		body any
		want int
	}{
		{"by username", map[string]string{"username": "alice", "password": "secret"}, http.StatusOK},
		{"by email", map[string]string{"username": "alice@example.com", "password": "secret"}, http.StatusOK},
		{"email field", map[string]string{"email": "alice@example.com", "password": "secret"}, http.StatusOK},
		{"wrong password", map[string]string{"username": "alice", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "bob", "password": "secret"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": "alice"}, http.StatusBadRequest},
		{"invalid json", "{not json", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/auth/login", "", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusOK {
				var res map[string]any
				decode(t, rec, &res)
				if res["token"] == "" || res["message"] != "Login successful" {
					t.Errorf("response = %v", res)
				}
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := setupTestServer(t)
	for _, path := range []string{"/api/workouts", "/api/goals", "/api/nutrition", "/api/stats/goals", "/api/export"} {
		rec := s.do(http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d", path, rec.Code)
		}
		rec = s.do(http.MethodGet, path, "garbage", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s with bad token: status %d", path, rec.Code)
		}
	}
}

func TestTokenForMissingUser(t *testing.T) {
	s := setupTestServer(t)
	token, err := s.tokens.Issue(4242, "ghost")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"me", http.MethodGet, "/api/auth/me", nil},
		{"create workout", http.MethodPost, "/api/workouts", map[string]any{"name": "Ghost", "exercises": []any{}}},
		{"create goal", http.MethodPost, "/api/goals", map[string]string{"title": "Ghost"}},
		{"create nutrition", http.MethodPost, "/api/nutrition", map[string]any{
			"date": "2024-01-01", "mealType": "lunch", "foodName": "Soup", "calories": 100,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.method, tt.path, token, tt.body)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401 (body %s)", rec.Code, rec.Body.String())
			}
			if msg := errorMessage(t, rec); msg != "Invalid or expired token" {
				t.Errorf("error = %q", msg)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
		msg    string
	}{
		{"unknown path", http.MethodGet, "/api/nope", "", http.StatusNotFound, "Route not found: GET /api/nope"},
		{"unknown protected path", http.MethodGet, "/api/workouts/1/nope", token, http.StatusNotFound, "Route not found: GET /api/workouts/1/nope"},
		{"outside prefix", http.MethodGet, "/health", "", http.StatusNotFound, "Route not found: GET /health"},
		{"wrong method on public route", http.MethodGet, "/api/auth/login", "", http.StatusMethodNotAllowed, "Method not allowed: GET /api/auth/login"},
		{"wrong method on protected route", http.MethodPatch, "/api/goals/1", token, http.StatusMethodNotAllowed, "Method not allowed: PATCH /api/goals/1"},
		{"wrong method on collection", http.MethodDelete, "/api/workouts", token, http.StatusMethodNotAllowed, "Method not allowed: DELETE /api/workouts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.method, tt.path, tt.token, nil)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			if msg := errorMessage(t, rec); msg != tt.msg {
				t.Errorf("error = %q, want %q", msg, tt.msg)
			}
		})
	}
}

func TestWorkoutLifecycle(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")

	rec := s.do(http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Full body",
		"exercises": []map[string]any{
			{"name": "Squat", "exerciseType": "strength", "sets": 3, "reps": 5, "weight": 0, "distance": 9},
			{"name": "Run", "exerciseType": "cardio", "distance": 3.1, "duration": 30, "speed": 6.2},
			{"name": "Yoga", "exerciseType": "mindbody", "duration": 20, "intensity": "Moderate"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	decode(t, rec, &created)
	if created.ID == 0 || created.Message != "Workout created successfully" {
		t.Fatalf("create response = %+v", created)
	}

	rec = s.do(http.MethodGet, "/api/workouts", token, nil)
	var workouts []struct {
		ID        int64            `json:"id"`
		Name      string           `json:"name"`
		Exercises []map[string]any `json:"exercises"`
	}
	decode(t, rec, &workouts)
	if len(workouts) != 1 || len(workouts[0].Exercises) != 3 {
		t.Fatalf("workouts = %+v", workouts)
	}
	squat, run, yoga := workouts[0].Exercises[0], workouts[0].Exercises[1], workouts[0].Exercises[2]
	if squat["weight"] != 0.0 || squat["sets"] != 3.0 {
		t.Errorf("squat = %v", squat)
	}
	for _, field := range []string{"distance", "duration", "speed", "intensity"} {
		if _, ok := squat[field]; ok {
			t.Errorf("strength exercise carries %s", field)
		}
	}
	for _, field := range []string{"sets", "reps", "weight", "intensity"} {
		if _, ok := run[field]; ok {
			t.Errorf("cardio exercise carries %s", field)
		}
	}
	if yoga["intensity"] != "Moderate" {
		t.Errorf("yoga = %v", yoga)
	}

	logPath := fmt.Sprintf("/api/workouts/%d/log", created.ID)
	for i := 0; i < 2; i++ {
		if rec := s.do(http.MethodPost, logPath, token, nil); rec.Code != http.StatusOK {
			t.Fatalf("log: status %d", rec.Code)
		}
	}
	logsPath := fmt.Sprintf("/api/workouts/%d/logs", created.ID)
	rec = s.do(http.MethodGet, logsPath, token, nil)
	var logs []map[string]any
	decode(t, rec, &logs)
	if len(logs) != 2 {
		t.Errorf("expected 2 logs, got %d", len(logs))
	}

	rec = s.do(http.MethodGet, "/api/stats/workouts?days=7", token, nil)
	var stats struct {
		Total      int64 `json:"total"`
		RecentLogs []struct {
			Count int64 `json:"count"`
		} `json:"recentLogs"`
		WeeklyStats []map[string]any `json:"weeklyStats"`
	}
	decode(t, rec, &stats)
	if stats.Total != 2 || len(stats.RecentLogs) != 1 || stats.RecentLogs[0].Count != 2 || len(stats.WeeklyStats) != 1 {
		t.Errorf("stats = %+v", stats)
	}

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/workouts/%d", created.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = s.do(http.MethodGet, logsPath, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("logs after delete: status %d, want 404", rec.Code)
	}
	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/workouts/%d", created.ID), token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status %d, want 404", rec.Code)
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")

	tests := []struct {
		name string
		body any
	}{
		{"missing name", map[string]any{"exercises": []any{}}},
		{"missing exercises", map[string]any{"name": "Legs"}},
		{"exercises not array", map[string]any{"name": "Legs", "exercises": "squat"}},
		{"bad type", map[string]any{"name": "Legs", "exercises": []map[string]any{{"name": "Squat", "exerciseType": "lifting"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := s.do(http.MethodPost, "/api/workouts", token, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	s := setupTestServer(t)
	owner, _ := s.register("owner")
	intruder, _ := s.register("intruder")

	var workout struct {
		ID int64 `json:"id"`
	}
	decode(t, s.do(http.MethodPost, "/api/workouts", owner, map[string]any{"name": "Mine", "exercises": []any{}}), &workout)
	var goal struct {
		ID string `json:"id"`
	}
	decode(t, s.do(http.MethodPost, "/api/goals", owner, map[string]string{"title": "Run 5k"}), &goal)
	var entry struct {
		ID int64 `json:"id"`
	}
	decode(t, s.do(http.MethodPost, "/api/nutrition", owner, map[string]any{
		"date": "2024-01-01", "mealType": "lunch", "foodName": "Rice", "calories": 300,
	}), &entry)

	nutritionBody := map[string]any{"date": "2024-01-02", "mealType": "dinner", "foodName": "Stolen", "calories": 1}
	tests := []struct {
		method, path string
		body         any
	}{
		{http.MethodDelete, fmt.Sprintf("/api/workouts/%d", workout.ID), nil},
		{http.MethodPost, fmt.Sprintf("/api/workouts/%d/log", workout.ID), nil},
		{http.MethodGet, fmt.Sprintf("/api/workouts/%d/logs", workout.ID), nil},
		{http.MethodPut, "/api/goals/" + goal.ID, map[string]any{"isCompleted": true}},
		{http.MethodDelete, "/api/goals/" + goal.ID, nil},
		{http.MethodPut, fmt.Sprintf("/api/nutrition/%d", entry.ID), nutritionBody},
		{http.MethodDelete, fmt.Sprintf("/api/nutrition/%d", entry.ID), nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if rec := s.do(tt.method, tt.path, intruder, tt.body); rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}

	var goals []map[string]any
	decode(t, s.do(http.MethodGet, "/api/goals", intruder, nil), &goals)
	if len(goals) != 0 {
		t.Errorf("intruder sees %d goals", len(goals))
	}
	decode(t, s.do(http.MethodGet, "/api/goals", owner, nil), &goals)
	if len(goals) != 1 || goals[0]["isCompleted"] != false {
		t.Errorf("owner goals = %v", goals)
	}
}

func TestMalformedIDIsNotFound(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")
	for _, path := range []string{"/api/goals/abc", "/api/workouts/-1", "/api/nutrition/1.5"} {
		if rec := s.do(http.MethodDelete, path, token, nil); rec.Code != http.StatusNotFound {
			t.Errorf("DELETE %s: status %d, want 404", path, rec.Code)
		}
	}
}

func TestGoalStatsAndPartialUpdate(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")

	var stats struct {
		Total          int64   `json:"total"`
		Completed      int64   `json:"completed"`
		CompletionRate float64 `json:"completionRate"`
	}
	decode(t, s.do(http.MethodGet, "/api/stats/goals", token, nil), &stats)
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	var first struct {
		ID          string `json:"id"`
		IsCompleted bool   `json:"isCompleted"`
	}
	for i, title := range []string{"a", "b", "c", "d"} {
		rec := s.do(http.MethodPost, "/api/goals", token, map[string]string{"title": title})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create goal: status %d", rec.Code)
		}
		if i == 0 {
			decode(t, rec, &first)
		}
	}
	if first.ID == "" || first.IsCompleted {
		t.Fatalf("created goal = %+v", first)
	}

	rec := s.do(http.MethodPut, "/api/goals/"+first.ID, token, map[string]any{"isCompleted": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	rec = s.do(http.MethodPut, "/api/goals/"+first.ID, token, map[string]any{"title": "renamed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	var updated struct {
		Message string `json:"message"`
		Goal    struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			IsCompleted bool   `json:"isCompleted"`
		} `json:"goal"`
	}
	decode(t, rec, &updated)
	if updated.Message != "Goal updated successfully" || updated.Goal.ID != first.ID ||
		updated.Goal.Title != "renamed" || !updated.Goal.IsCompleted {
		t.Errorf("update response = %+v", updated)
	}

	var goals []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		IsCompleted bool   `json:"isCompleted"`
	}
	decode(t, s.do(http.MethodGet, "/api/goals", token, nil), &goals)
	for _, g := range goals {
		if g.ID == first.ID && (!g.IsCompleted || g.Title != "renamed") {
			t.Errorf("partial updates did not combine: %+v", g)
		}
	}

	decode(t, s.do(http.MethodGet, "/api/stats/goals", token, nil), &stats)
	if stats.Total != 4 || stats.Completed != 1 || stats.CompletionRate != 25 {
		t.Errorf("stats = %+v, want 4/1/25", stats)
	}
}

func TestNutritionCreateAndFilter(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")

	rec := s.do(http.MethodPost, "/api/nutrition", token, map[string]any{
		"date": "2024-01-01", "mealType": "lunch", "foodName": "Chicken", "calories": 400,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decode(t, rec, &created)
	for _, macro := range []string{"protein", "carbs", "fats"} {
		if created[macro] != 0.0 {
			t.Errorf("%s = %v, want 0", macro, created[macro])
		}
	}

	s.do(http.MethodPost, "/api/nutrition", token, map[string]any{
		"date": "2024-01-05", "mealType": "dinner", "foodName": "Fish", "calories": 500,
	})

	var entries []map[string]any
	decode(t, s.do(http.MethodGet, "/api/nutrition?date=2024-01-01", token, nil), &entries)
	if len(entries) != 1 || entries[0]["foodName"] != "Chicken" || entries[0]["id"] != created["id"] {
		t.Errorf("entries for 2024-01-01 = %v", entries)
	}

	decode(t, s.do(http.MethodGet, "/api/nutrition?startDate=2024-01-01&endDate=2024-01-05", token, nil), &entries)
	if len(entries) != 2 {
		t.Errorf("range returned %d entries, want 2", len(entries))
	}

	if rec := s.do(http.MethodGet, "/api/nutrition?startDate=2024-01-01", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("half range: status %d, want 400", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/api/nutrition/summary", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("summary without range: status %d, want 400", rec.Code)
	}

	var summary []struct {
		Date          string `json:"date"`
		TotalCalories int64  `json:"totalCalories"`
	}
	decode(t, s.do(http.MethodGet, "/api/nutrition/summary?startDate=2024-01-01&endDate=2024-01-31", token, nil), &summary)
	if len(summary) != 2 || summary[0].Date != "2024-01-05" {
		t.Errorf("summary = %+v", summary)
	}

	rec = s.do(http.MethodPost, "/api/nutrition", token, map[string]any{"date": "2024-01-01", "mealType": "lunch", "foodName": "X"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing calories: status %d, want 400", rec.Code)
	}
}

func TestNutritionStatsAverage(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")
	today := time.Now().UTC().Format("2006-01-02")

	for _, kcal := range []int{300, 200} {
		rec := s.do(http.MethodPost, "/api/nutrition", token, map[string]any{
			"date": today, "mealType": "snack", "foodName": "Bar", "calories": kcal,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create: status %d", rec.Code)
		}
	}

	var stats struct {
		DailyStats []struct {
			TotalCalories int64 `json:"totalCalories"`
		} `json:"dailyStats"`
		Averages struct {
			Calories float64 `json:"calories"`
		} `json:"averages"`
	}
	decode(t, s.do(http.MethodGet, "/api/stats/nutrition?days=30", token, nil), &stats)
	if len(stats.DailyStats) != 1 || stats.DailyStats[0].TotalCalories != 500 {
		t.Errorf("dailyStats = %+v", stats.DailyStats)
	}
	if stats.Averages.Calories != 500 {
		t.Errorf("average calories = %v, want 500", stats.Averages.Calories)
	}
}

func TestExport(t *testing.T) {
	s := setupTestServer(t)
	token, _ := s.register("alice")
	s.do(http.MethodPost, "/api/goals", token, map[string]string{"title": "Run 5k"})

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"json", "application/json", `"title": "Run 5k"`},
		{"yaml", "application/yaml", "title: Run 5k"},
		{"xml", "application/xml", "<fitbyte"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/export?format="+tt.format, token, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q", got)
			}
			if !strings.Contains(rec.Header().Get("Content-Disposition"), "fitbyte-alice."+tt.format) {
				t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}

	if rec := s.do(http.MethodGet, "/api/export?format=csv", token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("csv: status %d, want 400", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := setupTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/goals", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
