package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all data and recreate the schema",
	Long: `Drop every FitByte table and run the migrations again.

This deletes all users, workouts, logs, goals and nutrition entries.
Pass --yes to confirm.

User ids start over after a reset, so tokens issued before it can name a
different user. Rotate JWT_SECRET and restart the API server afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return errors.New("refusing to reset without --yes")
		}
		if err := repo.Reset(cmd.Context()); err != nil {
			return err
		}
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "✓ Database reset")
		fmt.Fprintln(cmd.OutOrStdout(), "Rotate JWT_SECRET to invalidate tokens issued before the reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm dropping all data")
	rootCmd.AddCommand(resetCmd)
}
