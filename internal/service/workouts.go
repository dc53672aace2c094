package service

import (
	"context"
	"math"
	"strings"

	"github.com/Dan9191/fitbyte/internal/models"
	"github.com/sirupsen/logrus"
)

// ExerciseInput is one exercise in a create-workout request.
type ExerciseInput struct {
	Name         string   `json:"name"`
	ExerciseType string   `json:"exerciseType"`
	Sets         *int     `json:"sets"`
	Reps         *int     `json:"reps"`
	Weight       *float64 `json:"weight"`
	Distance     *float64 `json:"distance"`
	Duration     *float64 `json:"duration"`
	Speed        *float64 `json:"speed"`
	Intensity    *string  `json:"intensity"`
}

// WorkoutInput is a create-workout request. A nil Exercises means the field
// was missing; an empty list is allowed.
type WorkoutInput struct {
	Name      string           `json:"name"`
	Exercises *[]ExerciseInput `json:"exercises"`
}

// ListWorkouts returns the user's workouts with their exercises.
func (s *Service) ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error) {
	return s.repo.ListWorkouts(ctx, userID)
}

// CreateWorkout validates and stores a workout with its exercises atomically.
func (s *Service) CreateWorkout(ctx context.Context, userID int64, in WorkoutInput) (*models.Workout, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Exercises == nil {
		return nil, invalid("Workout name and exercises array are required")
	}

	w := &models.Workout{
		UserID:    userID,
		Name:      name,
		CreatedAt: s.now(),
		Exercises: make([]models.Exercise, 0, len(*in.Exercises)),
	}
	for i, ei := range *in.Exercises {
		ex, err := buildExercise(i, ei)
		if err != nil {
			return nil, err
		}
		w.Exercises = append(w.Exercises, ex)
	}

	if err := s.repo.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "workout_id": w.ID}).
		Infof("Workout created with %d exercises", len(w.Exercises))
	return w, nil
}

func buildExercise(i int, in ExerciseInput) (models.Exercise, error) {
	ex := models.Exercise{
		Name: strings.TrimSpace(in.Name),
		Type: models.ExerciseType(strings.ToLower(strings.TrimSpace(in.ExerciseType))),
	}
	if ex.Name == "" {
		return ex, invalid("Exercise %d: name is required", i+1)
	}
	if ex.Type == "" {
		ex.Type = models.ExerciseStrength
	}
	if !ex.Type.IsValid() {
		return ex, invalid("Exercise %d: exerciseType must be strength, cardio or mindbody", i+1)
	}

	ints := []struct {
		field string
		v     *int
	}{{"sets", in.Sets}, {"reps", in.Reps}}
	for _, f := range ints {
		if f.v != nil && *f.v < 0 {
			return ex, invalid("Exercise %d: %s must not be negative", i+1, f.field)
		}
	}
	floats := []struct {
		field string
		v     *float64
	}{{"weight", in.Weight}, {"distance", in.Distance}, {"duration", in.Duration}, {"speed", in.Speed}}
	for _, f := range floats {
		if f.v != nil && (*f.v < 0 || math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return ex, invalid("Exercise %d: %s must be a non-negative number", i+1, f.field)
		}
	}

	ex.Sets, ex.Reps, ex.Weight = in.Sets, in.Reps, in.Weight
	ex.Distance, ex.Duration, ex.Speed = in.Distance, in.Duration, in.Speed
	if in.Intensity != nil {
		level := strings.TrimSpace(*in.Intensity)
		switch {
		case level == "" || strings.EqualFold(level, "n/a"):
		case models.IsValidIntensity(level):
			ex.Intensity = &level
		default:
			return ex, invalid("Exercise %d: intensity must be one of %s", i+1, strings.Join(models.Intensities, ", "))
		}
	}
	ex.Normalize()
	return ex, nil
}

// DeleteWorkout deletes an owned workout with its exercises and logs.
func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID int64) error {
	if err := s.repo.DeleteWorkout(ctx, userID, workoutID); err != nil {
		return notFound(err, "Workout")
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "workout_id": workoutID}).Info("Workout deleted")
	return nil
}

// LogWorkout records that an owned workout was completed now.
func (s *Service) LogWorkout(ctx context.Context, userID, workoutID int64) (*models.WorkoutLog, error) {
	at := s.now()
	log := &models.WorkoutLog{
		UserID:    userID,
		WorkoutID: workoutID,
		LoggedAt:  at,
		LoggedOn:  at.Format(models.DateLayout),
	}
	if err := s.repo.CreateWorkoutLog(ctx, log); err != nil {
		return nil, notFound(err, "Workout")
	}
	return log, nil
}

// ListWorkoutLogs returns the completion records of an owned workout.
func (s *Service) ListWorkoutLogs(ctx context.Context, userID, workoutID int64) ([]models.WorkoutLog, error) {
	logs, err := s.repo.ListWorkoutLogs(ctx, userID, workoutID)
	if err != nil {
		return nil, notFound(err, "Workout")
	}
	return logs, nil
}
