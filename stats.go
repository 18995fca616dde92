package main

import (
	"fmt"
	"strings"

	"steeper/internal/brew"
	"steeper/internal/session"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate steep statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			fmt.Print(renderStats(a.store))
			return nil
		},
	}
	return cmd
}

// renderStats formats the aggregate summary. An empty log prints zeros
// rather than erroring.
func renderStats(store *session.Store) string {
	stats := session.Summarize(store.All())

	var sb strings.Builder
	sb.WriteString(color.CyanString("Steep Statistics\n"))
	sb.WriteString(strings.Repeat("─", 40) + "\n")

	fmt.Fprintf(&sb, "%s %d\n", statLabel("sessions"), stats.Count)
	fmt.Fprintf(&sb, "%s %.2f min\n", statLabel("average"), stats.Average)
	fmt.Fprintf(&sb, "%s %.2f min\n", statLabel("shortest"), stats.Shortest)
	fmt.Fprintf(&sb, "%s %.2f min\n", statLabel("longest"), stats.Longest)
	fmt.Fprintf(&sb, "%s %.2f min\n", statLabel("total"), stats.TotalMinutes)

	if recent := store.Recent(1); len(recent) > 0 {
		last := recent[0]
		fmt.Fprintf(&sb, "%s %s (%s)\n", statLabel("last steep"),
			brew.Format(last.Duration),
			last.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	return sb.String()
}

func statLabel(s string) string {
	return color.HiBlackString(fmt.Sprintf("%-10s", s))
}
