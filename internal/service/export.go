package service

import (
	"context"

	"github.com/Dan9191/fitbyte/internal/export"
	"github.com/Dan9191/fitbyte/internal/models"
)

// Export collects everything the user owns. The format is validated here so
// callers can fail before writing any output.
func (s *Service) Export(ctx context.Context, userID int64, format string) (*export.Data, export.Format, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, "", invalid("%s", err.Error())
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, "", notFound(err, "User")
	}
	workouts, err := s.repo.ListWorkouts(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	logs, err := s.repo.ListAllWorkoutLogs(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	nutrition, err := s.repo.ListNutrition(ctx, userID, models.NutritionFilter{})
	if err != nil {
		return nil, "", err
	}

	return &export.Data{
		Version:     export.Version,
		ExportedAt:  s.now(),
		Tool:        "fitbyte",
		User:        *user,
		Workouts:    workouts,
		WorkoutLogs: logs,
		Goals:       goals,
		Nutrition:   nutrition,
	}, f, nil
}
