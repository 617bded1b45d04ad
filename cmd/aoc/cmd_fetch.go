// Package main: puzzle fetching commands (input and instructions).
package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var instructionsRefresh bool

// fetchCmd downloads (or reads back) the puzzle input
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the puzzle input for the active puzzle",
	Long: `Downloads the input for the active puzzle and caches it. Subsequent
calls are served from the cache without touching the network. The input
is printed to stdout, so it can be piped:

  aoc fetch > input.txt`,
	RunE: runFetch,
}

// instructionsCmd shows the puzzle text
var instructionsCmd = &cobra.Command{
	Use:     "instructions",
	Aliases: []string{"read"},
	Short:   "Show the puzzle instructions",
	Long: `Fetches the puzzle page, converts it to markdown, and renders it in
the terminal. The text is cached; use --refresh after solving part 1 to
pull in the part 2 text.`,
	RunE: runInstructions,
}

func runFetch(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	input, err := env.Input(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch input: %w", err)
	}
	fmt.Print(input)
	return nil
}

func runInstructions(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	text, err := env.Instructions(cmd.Context(), instructionsRefresh)
	if err != nil {
		return fmt.Errorf("failed to fetch instructions: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return fmt.Errorf("failed to render instructions: %w", err)
	}
	fmt.Print(out)
	return nil
}

func init() {
	instructionsCmd.Flags().BoolVar(&instructionsRefresh, "refresh", false, "refetch the page even when cached")
}
