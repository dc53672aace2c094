package models

// DailyCount is the number of workout logs on a calendar date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// WeeklyCount is the number of workout logs in an ISO week.
type WeeklyCount struct {
	Week       string `json:"week"` // Format: YYYY-Www
	Year       int    `json:"year"`
	WeekNumber int    `json:"weekNumber"`
	Count      int64  `json:"count"`
}

// WorkoutStats summarizes workout completions
type WorkoutStats struct {
	Total       int64         `json:"total"`
	Days        int           `json:"days"`
	RecentLogs  []DailyCount  `json:"recentLogs"`
	WeeklyStats []WeeklyCount `json:"weeklyStats"`
}

// MacroAverages are averages over dates that have at least one entry.
type MacroAverages struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// NutritionStats summarizes nutrition over a trailing window
type NutritionStats struct {
	Days       int              `json:"days"`
	DailyStats []DailyNutrition `json:"dailyStats"`
	Averages   MacroAverages    `json:"averages"`
}

// GoalStats represents goal completion analytics
type GoalStats struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	CompletionRate float64 `json:"completionRate"` // Completed / Total * 100
}
