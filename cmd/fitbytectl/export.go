package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Dan9191/fitbyte/internal/export"
	"github.com/Dan9191/fitbyte/internal/repository"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportUser   string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one user's data",
	Long: `Export everything stored for a user: profile, workouts with exercises,
completion logs, goals and nutrition entries.

FORMATS:

  json   Indented JSON (default)
  yaml   YAML
  xml    XML with a <fitbyte> root element

EXAMPLES:

  fitbytectl export --user testuser
  fitbytectl export --user testuser -f xml -o backup.xml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportUser == "" {
			return errors.New("--user is required")
		}
		user, err := svc.FindUser(cmd.Context(), exportUser)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("user %q not found", exportUser)
		}
		if err != nil {
			return err
		}

		data, format, err := svc.Export(cmd.Context(), user.ID, exportFormat)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := export.Write(&buf, format, data); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ Exported to %s\n", exportOutput)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "username or email of the user to export")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml or xml")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
