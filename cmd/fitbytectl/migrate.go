package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := repo.Migrate(cmd.Context())
		if err != nil {
			return err
		}
		v, err := repo.SchemaVersion(cmd.Context())
		if err != nil {
			return err
		}
		if applied == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (version %d)\n", v)
			return nil
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Applied %d migration(s), schema at version %d\n", applied, v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
