package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectItem is one togglable entry in a multi-select list.
type SelectItem struct {
	Label   string
	Detail  string
	Checked bool
}

// SelectModel is a bubbletea multi-select list. Space toggles, 'a' toggles
// all, enter confirms, q/esc aborts.
type SelectModel struct {
	styles  Styles
	title   string
	items   []SelectItem
	cursor  int
	done    bool
	aborted bool
}

// NewSelectModel builds a multi-select list.
func NewSelectModel(title string, items []SelectItem) SelectModel {
	return SelectModel{styles: NewStyles(), title: title, items: items}
}

// Aborted reports whether the user quit without confirming.
func (m SelectModel) Aborted() bool { return m.aborted }

// Selected returns the labels of the checked items after confirmation.
func (m SelectModel) Selected() []string {
	if m.aborted {
		return nil
	}
	var out []string
	for _, it := range m.items {
		if it.Checked {
			out = append(out, it.Label)
		}
	}
	return out
}

func (m SelectModel) Init() tea.Cmd { return nil }

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		if len(m.items) > 0 {
			m.items[m.cursor].Checked = !m.items[m.cursor].Checked
		}
	case "a":
		all := true
		for _, it := range m.items {
			if !it.Checked {
				all = false
				break
			}
		}
		for i := range m.items {
			m.items[i].Checked = !all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.title))
	sb.WriteString("\n")
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		box := "[ ]"
		if it.Checked {
			box = m.styles.Selected.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, it.Label)
		if it.Detail != "" {
			line += " " + m.styles.Muted.Render(fmt.Sprintf("(%s)", it.Detail))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("space toggle · a all · enter confirm · q cancel"))
	sb.WriteString("\n")
	return sb.String()
}
