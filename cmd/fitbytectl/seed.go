package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	seedUsername string
	seedEmail    string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo user",
	Long: `Create a demo user for local testing. Running it again is a no-op.

EXAMPLES:

  fitbytectl seed
  fitbytectl seed --username jane --email jane@example.com --password s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := svc.Seed(cmd.Context(), seedUsername, seedEmail, seedPassword)
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "User %s already exists\n", seedUsername)
			return nil
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Created user %s (%s)\n", seedUsername, seedEmail)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUsername, "username", "testuser", "username")
	seedCmd.Flags().StringVar(&seedEmail, "email", "test@fitbyte.com", "email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "test123", "password")
	rootCmd.AddCommand(seedCmd)
}
