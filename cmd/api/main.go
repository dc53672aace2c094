package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/Dan9191/fitbyte/internal/handler"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/Dan9191/fitbyte/internal/service"
	"github.com/Dan9191/fitbyte/internal/utils/email"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	ctx := context.Background()
	repo, err := repository.Open(ctx, cfg.DBDriver, cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	applied, err := repo.Migrate(ctx)
	if err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	logger.WithFields(logrus.Fields{"driver": cfg.DBDriver, "applied": applied}).Info("Database ready")

	// Initialize layers
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	var notifier service.Notifier
	if cfg.EmailEnabled() {
		notifier = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, logger, cfg, tokens, notifier)
	h := handler.NewHandler(svc, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.NewRouter(h, cfg, tokens, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Infof("Received %s, shutting down", sig)
	case err := <-errCh:
		logger.Errorf("Server failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}
