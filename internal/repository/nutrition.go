package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Dan9191/fitbyte/internal/models"
)

const nutritionColumns = "id, user_id, entry_date, meal_type, food_name, calories, protein, carbs, fats, created_at"

// ListNutrition returns the user's entries matching filter, newest date first.
func (r *Repository) ListNutrition(ctx context.Context, userID int64, filter models.NutritionFilter) ([]models.NutritionEntry, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}
	switch {
	case filter.Date != "":
		where = append(where, "entry_date = ?")
		args = append(args, filter.Date)
	case filter.StartDate != "" && filter.EndDate != "":
		where = append(where, "entry_date BETWEEN ? AND ?")
		args = append(args, filter.StartDate, filter.EndDate)
	}

	rows, err := r.db.QueryContext(ctx, r.rebind(
		"SELECT "+nutritionColumns+" FROM nutrition WHERE "+strings.Join(where, " AND ")+
			" ORDER BY entry_date DESC, created_at DESC, id DESC"), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list nutrition: %w", err)
	}
	defer rows.Close()

	entries := []models.NutritionEntry{}
	for rows.Next() {
		var (
			e        models.NutritionEntry
			mealType string
		)
		err := rows.Scan(&e.ID, &e.UserID, &e.Date, &mealType, &e.FoodName,
			&e.Calories, &e.Protein, &e.Carbs, &e.Fats, timeScanner{&e.CreatedAt})
		if err != nil {
			return nil, fmt.Errorf("failed to scan nutrition entry: %w", err)
		}
		e.MealType = models.MealType(mealType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateNutrition inserts an entry.
func (r *Repository) CreateNutrition(ctx context.Context, e *models.NutritionEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now()
	}
	err := r.db.QueryRowContext(ctx, r.rebind(`
		INSERT INTO nutrition (user_id, entry_date, meal_type, food_name, calories, protein, carbs, fats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		e.UserID, e.Date, string(e.MealType), e.FoodName, e.Calories, e.Protein, e.Carbs, e.Fats, e.CreatedAt).
		Scan(&e.ID)
	if err != nil {
		return ownerCheck(err, "failed to create nutrition entry")
	}
	return nil
}

// UpdateNutrition replaces every editable field of an owned entry.
func (r *Repository) UpdateNutrition(ctx context.Context, e *models.NutritionEntry) error {
	return r.withOwned(ctx, ResourceNutrition, e.ID, e.UserID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.rebind(`
			UPDATE nutrition
			SET entry_date = ?, meal_type = ?, food_name = ?, calories = ?, protein = ?, carbs = ?, fats = ?
			WHERE id = ? AND user_id = ?`),
			e.Date, string(e.MealType), e.FoodName, e.Calories, e.Protein, e.Carbs, e.Fats, e.ID, e.UserID)
		if err != nil {
			return fmt.Errorf("failed to update nutrition entry: %w", err)
		}
		return affectedOne(res)
	})
}

// DeleteNutrition removes an owned entry.
func (r *Repository) DeleteNutrition(ctx context.Context, userID, id int64) error {
	return r.withOwned(ctx, ResourceNutrition, id, userID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.rebind("DELETE FROM nutrition WHERE id = ? AND user_id = ?"), id, userID)
		if err != nil {
			return fmt.Errorf("failed to delete nutrition entry: %w", err)
		}
		return affectedOne(res)
	})
}

// NutritionDailyTotals sums macros per date from `from` onwards, newest date
// first. An empty `to` leaves the range open-ended.
func (r *Repository) NutritionDailyTotals(ctx context.Context, userID int64, from, to string) ([]models.DailyNutrition, error) {
	where := "user_id = ? AND entry_date >= ?"
	args := []any{userID, from}
	if to != "" {
		where += " AND entry_date <= ?"
		args = append(args, to)
	}
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT entry_date, COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0),
			COALESCE(SUM(carbs), 0), COALESCE(SUM(fats), 0)
		FROM nutrition
		WHERE `+where+`
		GROUP BY entry_date
		ORDER BY entry_date DESC`), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum nutrition: %w", err)
	}
	defer rows.Close()

	days := []models.DailyNutrition{}
	for rows.Next() {
		var d models.DailyNutrition
		if err := rows.Scan(&d.Date, &d.TotalCalories, &d.TotalProtein, &d.TotalCarbs, &d.TotalFats); err != nil {
			return nil, fmt.Errorf("failed to scan nutrition totals: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
