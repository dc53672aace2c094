package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"ls"},
	Short:   "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := svc.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(users) == 0 {
			fmt.Fprintln(out, "No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			fmt.Fprintf(out, "%s %s %s %s\n",
				faint.Sprintf("%6d", u.ID),
				padRight(u.Username, 20),
				padRight(u.Email, 32),
				faint.Sprint(u.CreatedAt.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
