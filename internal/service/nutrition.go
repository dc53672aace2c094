package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Dan9191/fitbyte/internal/models"
)

// NutritionInput is the body of a create or replace request.
type NutritionInput struct {
	Date     string   `json:"date"`
	MealType string   `json:"mealType"`
	FoodName string   `json:"foodName"`
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func (in NutritionInput) entry(userID int64) (*models.NutritionEntry, error) {
	date := strings.TrimSpace(in.Date)
	meal := models.MealType(strings.ToLower(strings.TrimSpace(in.MealType)))
	food := strings.TrimSpace(in.FoodName)
	if date == "" || meal == "" || food == "" || in.Calories == nil {
		return nil, invalid("Date, mealType, foodName, and calories are required")
	}
	if !validDate(date) {
		return nil, invalid("Date must be in YYYY-MM-DD format")
	}
	if !meal.IsValid() {
		return nil, invalid("mealType must be breakfast, lunch, dinner or snack")
	}
	if *in.Calories < 0 {
		return nil, invalid("Calories must not be negative")
	}

	e := &models.NutritionEntry{
		UserID:   userID,
		Date:     date,
		MealType: meal,
		FoodName: food,
		Calories: *in.Calories,
	}
	macros := []struct {
		name string
		in   *float64
		out  *float64
	}{
		{"protein", in.Protein, &e.Protein},
		{"carbs", in.Carbs, &e.Carbs},
		{"fats", in.Fats, &e.Fats},
	}
	for _, m := range macros {
		if m.in == nil {
			continue
		}
		if *m.in < 0 || math.IsNaN(*m.in) || math.IsInf(*m.in, 0) {
			return nil, invalid("%s must be a non-negative number", m.name)
		}
		*m.out = *m.in
	}
	return e, nil
}

// ListNutrition lists entries by exact date, by inclusive range, or all.
func (s *Service) ListNutrition(ctx context.Context, userID int64, filter models.NutritionFilter) ([]models.NutritionEntry, error) {
	switch {
	case filter.Date != "":
		if !validDate(filter.Date) {
			return nil, invalid("Date must be in YYYY-MM-DD format")
		}
		filter.StartDate, filter.EndDate = "", ""
	case filter.StartDate != "" || filter.EndDate != "":
		if err := checkRange(filter.StartDate, filter.EndDate); err != nil {
			return nil, err
		}
	}
	return s.repo.ListNutrition(ctx, userID, filter)
}

// NutritionSummary returns per-date totals inside an inclusive range.
func (s *Service) NutritionSummary(ctx context.Context, userID int64, startDate, endDate string) ([]models.DailyNutrition, error) {
	if err := checkRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.repo.NutritionDailyTotals(ctx, userID, startDate, endDate)
}

func checkRange(start, end string) error {
	if start == "" || end == "" {
		return invalid("Start date and end date are required")
	}
	if !validDate(start) || !validDate(end) {
		return invalid("Dates must be in YYYY-MM-DD format")
	}
	if start > end {
		return invalid("Start date must not be after end date")
	}
	return nil
}

// CreateNutrition stores a new entry; missing macros default to zero.
func (s *Service) CreateNutrition(ctx context.Context, userID int64, in NutritionInput) (*models.NutritionEntry, error) {
	e, err := in.entry(userID)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = s.now()
	if err := s.repo.CreateNutrition(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateNutrition replaces an owned entry.
func (s *Service) UpdateNutrition(ctx context.Context, userID, entryID int64, in NutritionInput) (*models.NutritionEntry, error) {
	e, err := in.entry(userID)
	if err != nil {
		return nil, err
	}
	e.ID = entryID
	if err := s.repo.UpdateNutrition(ctx, e); err != nil {
		return nil, notFound(err, "Nutrition entry")
	}
	return e, nil
}

// DeleteNutrition deletes an owned entry.
func (s *Service) DeleteNutrition(ctx context.Context, userID, entryID int64) error {
	return notFound(s.repo.DeleteNutrition(ctx, userID, entryID), "Nutrition entry")
}
