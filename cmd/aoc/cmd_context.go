// Package main: puzzle context commands (which year/day/part is active).
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/internal/puzzle"
)

// setCmd points the workspace at a puzzle.
var setCmd = &cobra.Command{
	Use:   "set <year> <day> [part]",
	Short: "Set the active puzzle",
	Long: `Points the workspace at a puzzle. All other commands (fetch, run,
submit, bind) operate on the active puzzle.

Examples:
  aoc set 2023 5      work on 2023 day 5, part 1
  aoc set 2023 5 2    same puzzle, part 2
  aoc set latest      jump to the most recent puzzle`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runSet,
}

// contextCmd shows the active puzzle
var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the active puzzle",
	RunE:  runContextShow,
}

// contextClearCmd forgets the explicit puzzle selection
var contextClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the explicit puzzle selection",
	Long: `Removes the stored selection. Commands fall back to the most
recently unlocked puzzle.`,
	RunE: runContextClear,
}

func runSet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	var ctx puzzle.Context
	if len(args) == 1 && args[0] == "latest" {
		ctx.Year, ctx.Day = puzzle.Latest(time.Now())
		ctx.Part = 1
	} else {
		if len(args) < 2 {
			return fmt.Errorf("usage: aoc set <year> <day> [part], or 'aoc set latest'")
		}
		ctx.Year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		ctx.Day, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day %q", args[1])
		}
		ctx.Part = 1
		if len(args) == 3 {
			ctx.Part, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid part %q", args[2])
			}
		}
	}
	if err := ctx.Validate(); err != nil {
		return err
	}
	if err := puzzle.Save(env.Root, ctx); err != nil {
		return err
	}
	fmt.Printf("🎯 Working on %s\n", ctx)
	return nil
}

func runContextShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	explicit := puzzle.IsSet(env.Root)
	fmt.Printf("🎯 Active puzzle: %s", env.Context)
	if !explicit {
		fmt.Print(" (latest, not pinned)")
	}
	fmt.Println()
	return nil
}

func runContextClear(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := puzzle.Clear(env.Root); err != nil {
		return err
	}
	fmt.Println("Selection cleared; following the latest puzzle.")
	return nil
}
