package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type migration struct {
	version int
	name    string
	stmts   []string
}

// Placeholders {{pk}} and {{ts}} are expanded per dialect.
var migrations = []migration{
	{
		version: 1,
		name:    "initial schema",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id {{pk}},
				username VARCHAR(50) NOT NULL UNIQUE,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at {{ts}} NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS workouts (
				id {{pk}},
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				created_at {{ts}} NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS exercises (
				id {{pk}},
				workout_id BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
				sort_order INTEGER NOT NULL,
				name TEXT NOT NULL,
				exercise_type VARCHAR(16) NOT NULL CHECK (exercise_type IN ('strength', 'cardio', 'mindbody')),
				sets INTEGER,
				reps INTEGER,
				weight DOUBLE PRECISION,
				distance DOUBLE PRECISION,
				duration DOUBLE PRECISION,
				speed DOUBLE PRECISION,
				intensity VARCHAR(16)
			)`,
			`CREATE TABLE IF NOT EXISTS workout_logs (
				id {{pk}},
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				workout_id BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
				logged_at {{ts}} NOT NULL,
				logged_on VARCHAR(10) NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS goals (
				id {{pk}},
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				is_completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at {{ts}} NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS nutrition (
				id {{pk}},
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				entry_date VARCHAR(10) NOT NULL,
				meal_type VARCHAR(16) NOT NULL CHECK (meal_type IN ('breakfast', 'lunch', 'dinner', 'snack')),
				food_name TEXT NOT NULL,
				calories INTEGER NOT NULL CHECK (calories >= 0),
				protein DOUBLE PRECISION NOT NULL DEFAULT 0,
				carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
				fats DOUBLE PRECISION NOT NULL DEFAULT 0,
				created_at {{ts}} NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id, sort_order)`,
			`CREATE INDEX IF NOT EXISTS idx_workout_logs_user_day ON workout_logs(user_id, logged_on)`,
			`CREATE INDEX IF NOT EXISTS idx_workout_logs_workout ON workout_logs(workout_id)`,
			`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_nutrition_user_date ON nutrition(user_id, entry_date)`,
		},
	},
}

// dropOrder lists tables children first.
var dropOrder = []string{"workout_logs", "exercises", "workouts", "goals", "nutrition", "users", "schema_migrations"}

func (r *Repository) ddl(stmt string) string {
	rep := strings.NewReplacer("{{pk}}", "BIGSERIAL PRIMARY KEY", "{{ts}}", "TIMESTAMPTZ")
	if r.dialect == dialectSQLite {
		rep = strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ts}}", "TIMESTAMP")
	}
	return rep.Replace(stmt)
}

// Migrate applies every migration not yet recorded in schema_migrations and
// returns the number applied.
func (r *Repository) Migrate(ctx context.Context) (int, error) {
	_, err := r.db.ExecContext(ctx, r.ddl(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at {{ts}} NOT NULL
	)`))
	if err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := r.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return 0, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read schema_migrations: %w", err)
	}

	count := 0
	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		err := r.inTx(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.stmts {
				if _, err := tx.ExecContext(ctx, r.ddl(stmt)); err != nil {
					return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
				}
			}
			_, err := tx.ExecContext(ctx,
				r.rebind("INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)"),
				m.version, m.name, now())
			return err
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// SchemaVersion returns the highest applied migration, 0 for an empty database.
func (r *Repository) SchemaVersion(ctx context.Context) (int, error) {
	var v sql.NullInt64
	err := r.db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&v)
	if isUndefinedTable(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(v.Int64), nil
}

// Reset drops every table and migrates from scratch.
func (r *Repository) Reset(ctx context.Context) error {
	for _, table := range dropOrder {
		if _, err := r.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	if _, err := r.Migrate(ctx); err != nil {
		return err
	}
	return nil
}
