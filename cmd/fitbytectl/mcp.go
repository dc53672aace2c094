package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dan9191/fitbyte/internal/mcp"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/spf13/cobra"
)

var mcpUser string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server for one user",
	Long: `Start a Model Context Protocol server on stdin/stdout that answers
read-only questions about one user's training and nutrition.

AVAILABLE TOOLS:

  workout_stats     Workout completions per day and per ISO week
  nutrition_stats   Daily calorie and macro totals with averages
  goal_stats        Goal completion rate
  list_goals        Goals, newest first
  list_workouts     Workouts with exercises, newest first

EXAMPLE CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "fitbyte": {
        "command": "fitbytectl",
        "args": ["mcp", "--user", "testuser"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mcpUser == "" {
			return errors.New("--user is required")
		}
		user, err := svc.FindUser(cmd.Context(), mcpUser)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %q not found", mcpUser)
		}
		if err != nil {
			return err
		}

		server := mcp.NewServer(svc, user.ID, version)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	mcpCmd.Flags().StringVarP(&mcpUser, "user", "u", "", "username or email the server answers for")
	rootCmd.AddCommand(mcpCmd)
}
