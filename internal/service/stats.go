package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/fitbyte/internal/models"
)

const (
	// DefaultStatsDays is used when the window is missing or not positive.
	DefaultStatsDays = 30
	// MaxStatsDays caps the aggregation window.
	MaxStatsDays = 3650

	weeklyWindowDays = 12 * 7
)

// ParseDays turns a query value into a window length.
func ParseDays(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultStatsDays
	}
	return ClampDays(n)
}

// ClampDays applies the default and the upper bound to n.
func ClampDays(n int) int {
	switch {
	case n <= 0:
		return DefaultStatsDays
	case n > MaxStatsDays:
		return MaxStatsDays
	}
	return n
}

// windowStart is the first calendar date inside a trailing window of days.
func (s *Service) windowStart(days int) string {
	return s.now().UTC().AddDate(0, 0, -days).Format(models.DateLayout)
}

// WorkoutStats counts completions per day in the window, all-time and per
// ISO week over the last twelve weeks.
func (s *Service) WorkoutStats(ctx context.Context, userID int64, days int) (*models.WorkoutStats, error) {
	days = ClampDays(days)
	total, err := s.repo.CountWorkoutLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := s.windowStart(days)
	weeklySince := s.windowStart(weeklyWindowDays)
	from := since
	if weeklySince < from {
		from = weeklySince
	}
	daily, err := s.repo.DailyWorkoutCounts(ctx, userID, from)
	if err != nil {
		return nil, err
	}

	recent := []models.DailyCount{}
	for _, d := range daily {
		if d.Date >= since {
			recent = append(recent, d)
		}
	}
	return &models.WorkoutStats{
		Total:       total,
		Days:        days,
		RecentLogs:  recent,
		WeeklyStats: weeklyCounts(daily, weeklySince),
	}, nil
}

// weeklyCounts folds daily counts on or after since into ISO weeks, newest first.
func weeklyCounts(daily []models.DailyCount, since string) []models.WeeklyCount {
	byWeek := make(map[string]*models.WeeklyCount)
	for _, d := range daily {
		if d.Date < since {
			continue
		}
		day, err := time.Parse(models.DateLayout, d.Date)
		if err != nil {
			continue
		}
		year, week := day.ISOWeek()
		key := fmt.Sprintf("%04d-W%02d", year, week)
		wc, ok := byWeek[key]
		if !ok {
			wc = &models.WeeklyCount{Week: key, Year: year, WeekNumber: week}
			byWeek[key] = wc
		}
		wc.Count += d.Count
	}

	weeks := make([]models.WeeklyCount, 0, len(byWeek))
	for _, wc := range byWeek {
		weeks = append(weeks, *wc)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week > weeks[j].Week })
	return weeks
}

// NutritionStats returns daily totals in the window and the average of each
// macro over the dates that have entries.
func (s *Service) NutritionStats(ctx context.Context, userID int64, days int) (*models.NutritionStats, error) {
	days = ClampDays(days)
	daily, err := s.repo.NutritionDailyTotals(ctx, userID, s.windowStart(days), "")
	if err != nil {
		return nil, err
	}

	stats := &models.NutritionStats{Days: days, DailyStats: daily}
	if n := float64(len(daily)); n > 0 {
		var avg models.MacroAverages
		for _, d := range daily {
			avg.Calories += float64(d.TotalCalories)
			avg.Protein += d.TotalProtein
			avg.Carbs += d.TotalCarbs
			avg.Fats += d.TotalFats
		}
		stats.Averages = models.MacroAverages{
			Calories: avg.Calories / n,
			Protein:  avg.Protein / n,
			Carbs:    avg.Carbs / n,
			Fats:     avg.Fats / n,
		}
	}
	return stats, nil
}

// GoalStats reports how many goals exist and what share is completed.
func (s *Service) GoalStats(ctx context.Context, userID int64) (*models.GoalStats, error) {
	total, completed, err := s.repo.CountGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := &models.GoalStats{Total: total, Completed: completed}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}
	return stats, nil
}
