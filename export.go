package main

import (
	"fmt"
	"os"
	"time"

	"steeper/internal/session"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the session log to a CSV file",
		Long: `Export writes every saved session as CSV, one quoted row per steep
with its date, length in minutes and notes.

Without --output the file is named tea-sessions-<date>.csv in the
current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			if a.store.Len() == 0 {
				return session.ErrEmptyLog
			}

			if output == "" {
				output = session.ExportFilename(time.Now())
			}
			if err := os.WriteFile(output, session.ExportCSV(a.store.All()), 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Printf("%s %s (%d sessions)\n", color.GreenString("wrote"), output, a.store.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default tea-sessions-<date>.csv)")

	return cmd
}
