package service

import (
	"context"
	"strings"

	"github.com/Dan9191/fitbyte/internal/models"
)

const maxTitleLen = 500

// ListGoals returns the user's goals newest first.
func (s *Service) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

// CreateGoal stores a new, incomplete goal.
func (s *Service) CreateGoal(ctx context.Context, userID int64, title string) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("Goal title is required")
	}
	if len(title) > maxTitleLen {
		return nil, invalid("Goal title must be at most %d characters", maxTitleLen)
	}
	g := &models.Goal{UserID: userID, Title: title, CreatedAt: s.now()}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGoal changes the title and/or completion flag of an owned goal and
// returns the stored result.
func (s *Service) UpdateGoal(ctx context.Context, userID, goalID int64, upd models.GoalUpdate) (*models.Goal, error) {
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, invalid("Goal title cannot be empty")
		}
		if len(title) > maxTitleLen {
			return nil, invalid("Goal title must be at most %d characters", maxTitleLen)
		}
		upd.Title = &title
	}
	if err := s.repo.UpdateGoal(ctx, userID, goalID, upd); err != nil {
		return nil, notFound(err, "Goal")
	}
	g, err := s.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, notFound(err, "Goal")
	}
	return g, nil
}

// DeleteGoal deletes an owned goal.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	return notFound(s.repo.DeleteGoal(ctx, userID, goalID), "Goal")
}
