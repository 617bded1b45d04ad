package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxDays is the number of puzzle days per event year.
const maxDays = 25

// statsKeyMap defines the dashboard key bindings.
type statsKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func (k statsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

func (k statsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Quit}}
}

func defaultStatsKeyMap() statsKeyMap {
	return statsKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the bubbletea model for the per-year star dashboard. Years
// are rows, days are columns; when the terminal is too narrow for all 25
// day columns the left/right keys scroll the day window.
type StatsModel struct {
	styles Styles
	keys   statsKeyMap
	help   help.Model
	years  []int
	stars  map[int]map[int]int // year -> day -> 0|1|2

	dayOffset int
	width     int
	height    int
}

// NewStatsModel builds the dashboard from per-year star maps.
func NewStatsModel(stars map[int]map[int]int) StatsModel {
	years := make([]int, 0, len(stars))
	for y := range stars {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return StatsModel{
		styles: NewStyles(),
		keys:   defaultStatsKeyMap(),
		help:   help.New(),
		years:  years,
		stars:  stars,
		width:  80,
	}
}

func (m StatsModel) Init() tea.Cmd { return nil }

// visibleDays is how many day columns fit next to the year column. Each
// day cell is 3 characters wide.
func (m StatsModel) visibleDays() int {
	n := (m.width - 12) / 3
	if n < 1 {
		n = 1
	}
	if n > maxDays {
		n = maxDays
	}
	return n
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.dayOffset > maxDays-m.visibleDays() {
			m.dayOffset = maxDays - m.visibleDays()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.dayOffset > 0 {
				m.dayOffset--
			}
		case key.Matches(msg, m.keys.Right):
			if m.dayOffset < maxDays-m.visibleDays() {
				m.dayOffset++
			}
		}
	}
	return m, nil
}

func (m StatsModel) starCell(count int) string {
	switch count {
	case 2:
		return m.styles.StarBoth.Render("**")
	case 1:
		return m.styles.StarOne.Render("*")
	default:
		return m.styles.StarNone.Render(".")
	}
}

func (m StatsModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Advent of Code stars"))
	sb.WriteString("\n")

	if len(m.years) == 0 {
		sb.WriteString(m.styles.Muted.Render("No stars cached yet. Run 'aoc stats --refresh'."))
		sb.WriteString("\n")
		return sb.String()
	}

	visible := m.visibleDays()
	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Right)

	sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("%-6s", "Year")))
	for d := m.dayOffset + 1; d <= m.dayOffset+visible; d++ {
		sb.WriteString(cell.Render(m.styles.Muted.Render(fmt.Sprintf("%d", d))))
	}
	sb.WriteString(m.styles.Bold.Render("  total"))
	sb.WriteString("\n")

	for _, year := range m.years {
		days := m.stars[year]
		total := 0
		for _, c := range days {
			total += c
		}
		sb.WriteString(m.styles.Body.Render(fmt.Sprintf("%-6d", year)))
		for d := m.dayOffset + 1; d <= m.dayOffset+visible; d++ {
			sb.WriteString(cell.Render(m.starCell(days[d])))
		}
		sb.WriteString(m.styles.StarBoth.Render(fmt.Sprintf("  %d*", total)))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	sb.WriteString("\n")
	return sb.String()
}
