package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/fitbyte/internal/models"
)

// DailyWorkoutCounts counts completion logs per calendar date on or after
// since, newest date first.
func (r *Repository) DailyWorkoutCounts(ctx context.Context, userID int64, since string) ([]models.DailyCount, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT logged_on, COUNT(*)
		FROM workout_logs
		WHERE user_id = ? AND logged_on >= ?
		GROUP BY logged_on
		ORDER BY logged_on DESC`), userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count workout logs: %w", err)
	}
	defer rows.Close()

	counts := []models.DailyCount{}
	for rows.Next() {
		var c models.DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan workout count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CountWorkoutLogs returns the all-time number of completion logs.
func (r *Repository) CountWorkoutLogs(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		r.rebind("SELECT COUNT(*) FROM workout_logs WHERE user_id = ?"), userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count workout logs: %w", err)
	}
	return total, nil
}
