package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/models"
	"github.com/Dan9191/fitbyte/internal/repository"
)

const (
	maxUsernameLen = 50
	maxEmailLen    = 255
)

// Register creates a new user with hashed password and issues a token.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, invalid("Username, email, and password are required")
	}
	if len(username) > maxUsernameLen {
		return nil, invalid("Username must be at most %d characters", maxUsernameLen)
	}
	if len(email) > maxEmailLen {
		return nil, invalid("Email must be at most %d characters", maxEmailLen)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("Invalid email address")
	}

	exists, err := s.repo.UserExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
	}

	hashed, err := auth.HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Infof("User registered: %s", user.Username)

	if err := s.notifier.SendWelcome(user.Email, user.Username); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("Failed to send welcome email")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Token: token, User: user}, nil
}

// Login authenticates by username or email and returns a JWT token
func (s *Service) Login(ctx context.Context, login, password string) (*models.AuthResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, invalid("Username and password are required")
	}

	user, err := s.repo.FindUserByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		auth.BurnComparison(password, s.config.BcryptCost)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Infof("User logged in: %s", user.Username)
	return &models.AuthResult{Token: token, User: user}, nil
}

// CurrentUser returns the user behind an authenticated request. A token whose
// user has been removed yields repository.ErrUnknownUser.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, repository.ErrUnknownUser
	}
	return user, err
}

// FindUser looks a user up by username or email.
func (s *Service) FindUser(ctx context.Context, login string) (*models.User, error) {
	return s.repo.FindUserByLogin(ctx, login)
}

// ListUsers returns every registered user.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Seed creates the user unless the username or email is taken. It reports
// whether a user was created.
func (s *Service) Seed(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.Register(ctx, username, email, password)
	if errors.Is(err, repository.ErrDuplicate) {
		return false, nil
	}
	return err == nil, err
}
