package models

import "time"

// MealType classifies a nutrition entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// IsValid reports whether m is a known meal type.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// NutritionEntry is a single food item eaten on a date.
type NutritionEntry struct {
	ID        int64     `json:"id" yaml:"id"`
	UserID    int64     `json:"-" yaml:"-"`
	Date      string    `json:"date" yaml:"date"`
	MealType  MealType  `json:"mealType" yaml:"meal_type"`
	FoodName  string    `json:"foodName" yaml:"food_name"`
	Calories  int       `json:"calories" yaml:"calories"`
	Protein   float64   `json:"protein" yaml:"protein"`
	Carbs     float64   `json:"carbs" yaml:"carbs"`
	Fats      float64   `json:"fats" yaml:"fats"`
	CreatedAt time.Time `json:"-" yaml:"created_at"`
}

// NutritionFilter selects entries by exact date or inclusive range. Date wins
// when both are set; an empty filter selects everything.
type NutritionFilter struct {
	Date      string
	StartDate string
	EndDate   string
}

// DailyNutrition holds per-date macro totals.
type DailyNutrition struct {
	Date          string  `json:"date"`
	TotalCalories int64   `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
}
