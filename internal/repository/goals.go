package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/fitbyte/internal/models"
)

const goalColumns = "id, user_id, title, is_completed, created_at"

func scanGoal(row interface{ Scan(...any) error }) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.IsCompleted, timeScanner{&g.CreatedAt})
	return g, err
}

// ListGoals returns the user's goals newest first.
func (r *Repository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(
		"SELECT "+goalColumns+" FROM goals WHERE user_id = ? ORDER BY created_at DESC, id DESC"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal returns an owned goal.
func (r *Repository) GetGoal(ctx context.Context, userID, id int64) (*models.Goal, error) {
	g, err := scanGoal(r.db.QueryRowContext(ctx, r.rebind(
		"SELECT "+goalColumns+" FROM goals WHERE id = ? AND user_id = ?"), id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &g, nil
}

// CreateGoal inserts a goal.
func (r *Repository) CreateGoal(ctx context.Context, g *models.Goal) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now()
	}
	err := r.db.QueryRowContext(ctx, r.rebind(`
		INSERT INTO goals (user_id, title, is_completed, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`), g.UserID, g.Title, g.IsCompleted, g.CreatedAt).Scan(&g.ID)
	if err != nil {
		return ownerCheck(err, "failed to create goal")
	}
	return nil
}

// UpdateGoal applies a partial update in a single statement; nil fields keep
// their stored value.
func (r *Repository) UpdateGoal(ctx context.Context, userID, id int64, upd models.GoalUpdate) error {
	var title, completed any
	if upd.Title != nil {
		title = *upd.Title
	}
	if upd.IsCompleted != nil {
		completed = *upd.IsCompleted
	}
	return r.withOwned(ctx, ResourceGoal, id, userID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.rebind(`
			UPDATE goals
			SET title = COALESCE(?, title), is_completed = COALESCE(?, is_completed)
			WHERE id = ? AND user_id = ?`), title, completed, id, userID)
		if err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		return affectedOne(res)
	})
}

// DeleteGoal removes an owned goal.
func (r *Repository) DeleteGoal(ctx context.Context, userID, id int64) error {
	return r.withOwned(ctx, ResourceGoal, id, userID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.rebind("DELETE FROM goals WHERE id = ? AND user_id = ?"), id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		return affectedOne(res)
	})
}

// CountGoals returns the total and completed goal counts for the user.
func (r *Repository) CountGoals(ctx context.Context, userID int64) (total, completed int64, err error) {
	err = r.db.QueryRowContext(ctx, r.rebind(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_completed THEN 1 ELSE 0 END), 0)
		FROM goals
		WHERE user_id = ?`), userID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count goals: %w", err)
	}
	return total, completed, nil
}
