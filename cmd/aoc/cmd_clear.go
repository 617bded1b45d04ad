// Package main: cache and notepad clearing.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/cmd/aoc/ui"
)

// notepadItem is the pseudo-category that resets the notepad.
const notepadItem = "notepad"

var clearAll bool

// clearCmd wipes cached data and/or the notepad
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached data and the notepad",
	Long: `Opens an interactive picker over the cached categories (inputs,
instructions, submissions, stats) plus the notepad, and clears the
selected ones. With --all everything is cleared without asking.

Clearing submissions also forgets which answers were correct, so use it
sparingly.`,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	categories, err := env.Categories()
	if err != nil {
		return err
	}

	var selected []string
	if clearAll {
		for _, cat := range categories {
			selected = append(selected, cat.Table)
		}
		selected = append(selected, notepadItem)
	} else {
		items := make([]ui.SelectItem, 0, len(categories)+1)
		for _, cat := range categories {
			items = append(items, ui.SelectItem{
				Label:  cat.Table,
				Detail: fmt.Sprintf("%s, %d entries", cat.Name, cat.Count),
			})
		}
		items = append(items, ui.SelectItem{Label: notepadItem, Detail: "reset to template"})

		model, err := tea.NewProgram(ui.NewSelectModel("Clear what?", items)).Run()
		if err != nil {
			return fmt.Errorf("failed to run picker: %w", err)
		}
		picker := model.(ui.SelectModel)
		if picker.Aborted() {
			fmt.Println("Nothing cleared.")
			return nil
		}
		selected = picker.Selected()
	}

	if len(selected) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	var tables []string
	for _, name := range selected {
		if name == notepadItem {
			if err := env.Layout.ClearNotepad(); err != nil {
				return err
			}
			fmt.Println("🧹 Notepad reset to template.")
			continue
		}
		tables = append(tables, name)
	}
	if len(tables) > 0 {
		if err := env.ClearCache(tables...); err != nil {
			return err
		}
		for _, table := range tables {
			fmt.Printf("🧹 Cleared %s.\n", table)
		}
	}
	return nil
}

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "clear everything without asking")
}
