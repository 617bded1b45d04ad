package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Cached data", []string{"Category", "Entries"})
	table.AddRow("inputs", "3")
	table.AddRow("instructions", "1")

	view := table.View(NewStyles())
	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Cached data") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "inputs") {
		t.Error("View missing cell content")
	}
}

func TestSimpleTableEmpty(t *testing.T) {
	table := NewSimpleTable("Empty", []string{"A"})
	if view := table.View(NewStyles()); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestStatsModelView(t *testing.T) {
	m := NewStatsModel(map[int]map[int]int{
		2023: {1: 2, 2: 1},
		2022: {1: 2},
	})

	view := m.View()
	if !strings.Contains(view, "2023") || !strings.Contains(view, "2022") {
		t.Errorf("view missing year rows:\n%s", view)
	}
	if !strings.Contains(view, "3*") {
		t.Errorf("view missing 2023 star total:\n%s", view)
	}
}

func TestStatsModelEmpty(t *testing.T) {
	m := NewStatsModel(nil)
	if !strings.Contains(m.View(), "No stars cached") {
		t.Error("empty dashboard should hint at --refresh")
	}
}

func TestStatsModelScroll(t *testing.T) {
	m := NewStatsModel(map[int]map[int]int{2023: {25: 2}})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	m = updated.(StatsModel)
	if m.visibleDays() >= maxDays {
		t.Fatalf("narrow window should clip day columns, got %d", m.visibleDays())
	}

	for i := 0; i < maxDays; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = updated.(StatsModel)
	}
	if m.dayOffset != maxDays-m.visibleDays() {
		t.Errorf("offset %d should stop at %d", m.dayOffset, maxDays-m.visibleDays())
	}
	if !strings.Contains(m.View(), "25") {
		t.Error("scrolled view should show day 25")
	}
}

func TestStatsModelQuit(t *testing.T) {
	m := NewStatsModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestSelectModelToggleAndConfirm(t *testing.T) {
	m := NewSelectModel("Clear what?", []SelectItem{
		{Label: "inputs"},
		{Label: "instructions"},
	})

	press := func(msg tea.KeyMsg) {
		updated, _ := m.Update(msg)
		m = updated.(SelectModel)
	}

	press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	press(tea.KeyMsg{Type: tea.KeyEnter})

	got := m.Selected()
	if len(got) != 2 || got[0] != "inputs" || got[1] != "instructions" {
		t.Errorf("selected = %v", got)
	}
	if m.Aborted() {
		t.Error("confirmed selection reported as aborted")
	}
}

func TestSelectModelToggleAll(t *testing.T) {
	m := NewSelectModel("Clear what?", []SelectItem{
		{Label: "a"}, {Label: "b"}, {Label: "c"},
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(SelectModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SelectModel)

	if len(m.Selected()) != 3 {
		t.Errorf("toggle all selected %v", m.Selected())
	}
}

func TestSelectModelAbort(t *testing.T) {
	m := NewSelectModel("Clear what?", []SelectItem{{Label: "a", Checked: true}})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(SelectModel)

	if !m.Aborted() {
		t.Error("esc should abort")
	}
	if m.Selected() != nil {
		t.Error("aborted selection should be empty")
	}
}
