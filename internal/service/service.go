package service

import (
	"context"
	"time"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/sirupsen/logrus"
)

// Notifier sends account notifications.
type Notifier interface {
	SendWelcome(to, username string) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// SendWelcome does nothing.
func (NopNotifier) SendWelcome(string, string) error { return nil }

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	log      *logrus.Logger
	config   *config.Config
	tokens   *auth.TokenManager
	notifier Notifier
	now      func() time.Time
}

// NewService initializes a new service. A nil notifier disables notifications.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, tokens *auth.TokenManager, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if err := auth.PrepareDummyHash(cfg.BcryptCost); err != nil {
		log.WithError(err).Warn("Failed to prepare login timing hash")
	}
	return &Service{
		repo:     repo,
		log:      log,
		config:   cfg,
		tokens:   tokens,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Tokens returns the token manager used to sign credentials.
func (s *Service) Tokens() *auth.TokenManager {
	return s.tokens
}

// Ping checks that the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
