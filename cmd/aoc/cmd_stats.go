// Package main: the stars dashboard.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/cmd/aoc/ui"
)

var statsRefresh bool

// statsCmd shows the per-year star dashboard
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your stars per year and day",
	Long: `Opens a dashboard of your collected stars: one row per event year,
one column per day. Calendars are cached after the first fetch; use
--refresh to pull fresh ones from the site.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	stars, err := env.Stars(cmd.Context(), statsRefresh)
	if err != nil {
		return fmt.Errorf("failed to load stars: %w", err)
	}

	// Drop years with no stars so the dashboard stays compact.
	for year, days := range stars {
		total := 0
		for _, c := range days {
			total += c
		}
		if total == 0 {
			delete(stars, year)
		}
	}

	if _, err := tea.NewProgram(ui.NewStatsModel(stars), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func init() {
	statsCmd.Flags().BoolVar(&statsRefresh, "refresh", false, "refetch calendars from the site")
}
