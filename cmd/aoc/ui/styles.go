// Package ui provides the visual styling and bubbletea models for the aoc
// CLI: the stars dashboard and the interactive cache-clear selector.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Advent of Code terminal palette.
var (
	Gold   = lipgloss.Color("#ffff66") // both stars
	Silver = lipgloss.Color("#9999cc") // one star
	Green  = lipgloss.Color("#00cc00")
	Red    = lipgloss.Color("#ff0000")
	Snow   = lipgloss.Color("#cccccc")
	Night  = lipgloss.Color("#0f0f23") // site background
	Dim    = lipgloss.Color("#666666")
)

// Styles holds the styled components shared by the CLI views.
type Styles struct {
	Title   lipgloss.Style
	Body    lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	StarBoth lipgloss.Style
	StarOne  lipgloss.Style
	StarNone lipgloss.Style

	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			MarginBottom(1),

		Body:  lipgloss.NewStyle().Foreground(Snow),
		Bold:  lipgloss.NewStyle().Foreground(Snow).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(Dim),

		Success: lipgloss.NewStyle().Foreground(Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Red).Bold(true),

		StarBoth: lipgloss.NewStyle().Foreground(Gold),
		StarOne:  lipgloss.NewStyle().Foreground(Silver),
		StarNone: lipgloss.NewStyle().Foreground(Dim),

		Selected: lipgloss.NewStyle().Foreground(Green).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(Gold).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(Dim).MarginTop(1),
	}
}
