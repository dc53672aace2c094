package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fitbyte/internal/models"
)

// CreateWorkout inserts the workout and its exercises in one transaction.
// Exercise positions follow slice order.
func (r *Repository) CreateWorkout(ctx context.Context, w *models.Workout) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now()
	}
	return r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			r.rebind("INSERT INTO workouts (user_id, name, created_at) VALUES (?, ?, ?) RETURNING id"),
			w.UserID, w.Name, w.CreatedAt).Scan(&w.ID)
		if err != nil {
			return ownerCheck(err, "failed to create workout")
		}

		query := r.rebind(`
			INSERT INTO exercises (workout_id, sort_order, name, exercise_type,
				sets, reps, weight, distance, duration, speed, intensity)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`)
		for i := range w.Exercises {
			ex := &w.Exercises[i]
			ex.Position = i
			err := tx.QueryRowContext(ctx, query,
				w.ID, ex.Position, ex.Name, string(ex.Type),
				nullInt(ex.Sets), nullInt(ex.Reps), nullFloat(ex.Weight),
				nullFloat(ex.Distance), nullFloat(ex.Duration), nullFloat(ex.Speed),
				nullString(ex.Intensity)).Scan(&ex.ID)
			if err != nil {
				return fmt.Errorf("failed to create exercise %q: %w", ex.Name, err)
			}
		}
		return nil
	})
}

// ListWorkouts returns the user's workouts newest first, each with its
// exercises in position order.
func (r *Repository) ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT id, user_id, name, created_at
		FROM workouts
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	workouts := []models.Workout{}
	index := make(map[int64]int)
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, timeScanner{&w.CreatedAt}); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		w.Exercises = []models.Exercise{}
		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	exRows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT e.workout_id, e.id, e.sort_order, e.name, e.exercise_type,
			e.sets, e.reps, e.weight, e.distance, e.duration, e.speed, e.intensity
		FROM exercises e
		JOIN workouts w ON w.id = e.workout_id
		WHERE w.user_id = ?
		ORDER BY e.workout_id, e.sort_order`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var (
			workoutID        int64
			ex               models.Exercise
			exType           string
			sets, reps       sql.NullInt64
			weight, distance sql.NullFloat64
			duration, speed  sql.NullFloat64
			intensity        sql.NullString
		)
		err := exRows.Scan(&workoutID, &ex.ID, &ex.Position, &ex.Name, &exType,
			&sets, &reps, &weight, &distance, &duration, &speed, &intensity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		ex.Type = models.ExerciseType(exType)
		ex.Sets, ex.Reps = intPtr(sets), intPtr(reps)
		ex.Weight, ex.Distance = floatPtr(weight), floatPtr(distance)
		ex.Duration, ex.Speed = floatPtr(duration), floatPtr(speed)
		ex.Intensity = stringPtr(intensity)

		if i, ok := index[workoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, ex)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return workouts, nil
}

// DeleteWorkout removes an owned workout; exercises and logs cascade.
func (r *Repository) DeleteWorkout(ctx context.Context, userID, id int64) error {
	return r.withOwned(ctx, ResourceWorkout, id, userID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.rebind("DELETE FROM workouts WHERE id = ? AND user_id = ?"), id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		return affectedOne(res)
	})
}

// CreateWorkoutLog records a completion of an owned workout.
func (r *Repository) CreateWorkoutLog(ctx context.Context, log *models.WorkoutLog) error {
	if log.LoggedAt.IsZero() {
		log.LoggedAt = now()
	}
	if log.LoggedOn == "" {
		log.LoggedOn = log.LoggedAt.UTC().Format(models.DateLayout)
	}
	return r.withOwned(ctx, ResourceWorkout, log.WorkoutID, log.UserID, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, r.rebind(`
			INSERT INTO workout_logs (user_id, workout_id, logged_at, logged_on)
			VALUES (?, ?, ?, ?)
			RETURNING id`),
			log.UserID, log.WorkoutID, log.LoggedAt, log.LoggedOn).Scan(&log.ID)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}
		return nil
	})
}

// ListWorkoutLogs returns the completion records of an owned workout, newest first.
func (r *Repository) ListWorkoutLogs(ctx context.Context, userID, workoutID int64) ([]models.WorkoutLog, error) {
	if err := r.authorize(ctx, r.db, ResourceWorkout, workoutID, userID); err != nil {
		return nil, err
	}
	return r.queryLogs(ctx, "user_id = ? AND workout_id = ?", userID, workoutID)
}

// ListAllWorkoutLogs returns every completion record of the user, newest first.
func (r *Repository) ListAllWorkoutLogs(ctx context.Context, userID int64) ([]models.WorkoutLog, error) {
	return r.queryLogs(ctx, "user_id = ?", userID)
}

func (r *Repository) queryLogs(ctx context.Context, where string, args ...any) ([]models.WorkoutLog, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT id, user_id, workout_id, logged_at, logged_on
		FROM workout_logs
		WHERE `+where+`
		ORDER BY logged_at DESC, id DESC`), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout logs: %w", err)
	}
	defer rows.Close()

	logs := []models.WorkoutLog{}
	for rows.Next() {
		var l models.WorkoutLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.WorkoutID, timeScanner{&l.LoggedAt}, &l.LoggedOn); err != nil {
			return nil, fmt.Errorf("failed to scan workout log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
