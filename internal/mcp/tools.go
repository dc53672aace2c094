package mcp

import (
	"context"
	"time"

	"github.com/Dan9191/fitbyte/internal/models"
	"github.com/Dan9191/fitbyte/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_stats",
		Description: "Workout completions per day over a trailing window, all-time total and per ISO week for the last 12 weeks",
	}, s.handleWorkoutStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_stats",
		Description: "Daily calorie and macro totals over a trailing window with averages across logged days",
	}, s.handleNutritionStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goal_stats",
		Description: "Number of goals, how many are completed and the completion rate in percent",
	}, s.handleGoalStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals newest first",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts newest first with their exercises",
	}, s.handleListWorkouts)
}

type windowInput struct {
	Days int `json:"days,omitempty" jsonschema:"Length of the trailing window in days (default 30, max 3650)"`
}

type emptyInput struct{}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of items to return (default 20)"`
}

type goalItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`
}

type goalsOutput struct {
	Goals []goalItem `json:"goals"`
}

type exerciseItem struct {
	Name      string   `json:"name"`
	Type      string   `json:"exerciseType"`
	Sets      *int     `json:"sets,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Intensity *string  `json:"intensity,omitempty"`
}

type workoutItem struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"createdAt"`
	Exercises []exerciseItem `json:"exercises"`
}

type workoutsOutput struct {
	Workouts []workoutItem `json:"workouts"`
}

func (s *Server) handleWorkoutStats(ctx context.Context, req *mcp.CallToolRequest, input windowInput) (*mcp.CallToolResult, models.WorkoutStats, error) {
	stats, err := s.svc.WorkoutStats(ctx, s.userID, service.ClampDays(input.Days))
	if err != nil {
		return nil, models.WorkoutStats{}, err
	}
	return nil, *stats, nil
}

func (s *Server) handleNutritionStats(ctx context.Context, req *mcp.CallToolRequest, input windowInput) (*mcp.CallToolResult, models.NutritionStats, error) {
	stats, err := s.svc.NutritionStats(ctx, s.userID, service.ClampDays(input.Days))
	if err != nil {
		return nil, models.NutritionStats{}, err
	}
	return nil, *stats, nil
}

func (s *Server) handleGoalStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.GoalStats, error) {
	stats, err := s.svc.GoalStats(ctx, s.userID)
	if err != nil {
		return nil, models.GoalStats{}, err
	}
	return nil, *stats, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, goalsOutput, error) {
	goals, err := s.svc.ListGoals(ctx, s.userID)
	if err != nil {
		return nil, goalsOutput{}, err
	}
	out := goalsOutput{Goals: []goalItem{}}
	for _, g := range limit(goals, input.Limit) {
		out.Goals = append(out.Goals, goalItem{
			ID:          g.ID,
			Title:       g.Title,
			IsCompleted: g.IsCompleted,
			CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		})
	}
	return nil, out, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, workoutsOutput, error) {
	workouts, err := s.svc.ListWorkouts(ctx, s.userID)
	if err != nil {
		return nil, workoutsOutput{}, err
	}
	out := workoutsOutput{Workouts: []workoutItem{}}
	for _, w := range limit(workouts, input.Limit) {
		item := workoutItem{
			ID:        w.ID,
			Name:      w.Name,
			CreatedAt: w.CreatedAt.Format(time.RFC3339),
			Exercises: make([]exerciseItem, 0, len(w.Exercises)),
		}
		for _, e := range w.Exercises {
			item.Exercises = append(item.Exercises, exerciseItem{
				Name:      e.Name,
				Type:      string(e.Type),
				Sets:      e.Sets,
				Reps:      e.Reps,
				Weight:    e.Weight,
				Distance:  e.Distance,
				Speed:     e.Speed,
				Duration:  e.Duration,
				Intensity: e.Intensity,
			})
		}
		out.Workouts = append(out.Workouts, item)
	}
	return nil, out, nil
}

func limit[T any](items []T, n int) []T {
	if n <= 0 {
		n = 20
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
