package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Resource names a user-owned table.
type Resource string

const (
	ResourceWorkout   Resource = "workout"
	ResourceGoal      Resource = "goal"
	ResourceNutrition Resource = "nutrition"
)

var ownedTables = map[Resource]string{
	ResourceWorkout:   "workouts",
	ResourceGoal:      "goals",
	ResourceNutrition: "nutrition",
}

// authorize returns ErrNotFound unless the row exists and belongs to userID.
// A row owned by someone else is indistinguishable from a missing one.
func (r *Repository) authorize(ctx context.Context, q querier, res Resource, id, userID int64) error {
	table, ok := ownedTables[res]
	if !ok {
		return fmt.Errorf("unknown resource %q", res)
	}
	var one int
	err := q.QueryRowContext(ctx,
		r.rebind("SELECT 1 FROM "+table+" WHERE id = ? AND user_id = ?"), id, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check %s ownership: %w", res, err)
	}
	return nil
}

// withOwned runs fn in a transaction after authorize succeeds.
func (r *Repository) withOwned(ctx context.Context, res Resource, id, userID int64, fn func(tx *sql.Tx) error) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.authorize(ctx, tx, res, id, userID); err != nil {
			return err
		}
		return fn(tx)
	})
}
