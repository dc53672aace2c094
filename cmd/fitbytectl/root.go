package main

import (
	"context"
	"fmt"

	"github.com/Dan9191/fitbyte/internal/auth"
	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/Dan9191/fitbyte/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	dbDriver string
	dbConn   string

	cfg  *config.Config
	repo *repository.Repository
	svc  *service.Service
)

var rootCmd = &cobra.Command{
	Use:           "fitbytectl",
	Short:         "FitByte administration tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `fitbytectl manages a FitByte database directly.

It reads the same environment as the API server (DB_DRIVER, DB_CONN, ...)
and a .env file in the working directory. --driver and --dsn override them.

EXAMPLES:

  fitbytectl migrate                           # Create or upgrade the schema
  fitbytectl seed                              # Create the demo user
  fitbytectl users                             # List registered users
  fitbytectl export --user testuser -f yaml    # Dump one user's data
  fitbytectl --driver sqlite --dsn ./fitbyte.db mcp --user testuser`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return openService(cmd.Context(), cmd.Name() == "migrate" || cmd.Name() == "reset")
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// openService loads config, connects and builds the service. The schema is
// brought up to date unless the command manages it itself.
func openService(ctx context.Context, skipMigrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	cfg, err = config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbDriver != "" {
		cfg.DBDriver = dbDriver
	}
	if dbConn != "" {
		cfg.DBConn = dbConn
	}

	// Logs go to stderr so that stdout stays clean for exports and MCP.
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	repo, err = repository.Open(ctx, cfg.DBDriver, cfg.DBConn)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if _, err := repo.Migrate(ctx); err != nil {
			return err
		}
	}

	svc = service.NewService(repo, logger, cfg, auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL), nil)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "fitbytectl", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "database driver: postgres, pgx or sqlite (default $DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbConn, "dsn", "", "database connection string (default $DB_CONN)")
	rootCmd.AddCommand(versionCmd)
}
