// Package main: answer submission and solution binding commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/internal/puzzle"
)

var (
	submitPart int

	bindName  string
	bindForce bool
)

// submitCmd submits an answer from the command line
var submitCmd = &cobra.Command{
	Use:   "submit <answer>",
	Short: "Submit an answer for the active puzzle",
	Long: `Submits an answer for the active puzzle. The part defaults to the
active context's part; override it with --part.

Verdicts for answers you already submitted are answered from the local
cache without hitting the site. A correct answer archives the notepad
when auto_bind is enabled in the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

// bindCmd archives the notepad into the solutions tree
var bindCmd = &cobra.Command{
	Use:   "bind <part>",
	Short: "Archive the notepad as the solution for a part",
	Long: `Copies the notepad into solutions/<year>/<day>/part_<part>/main.go,
stripping Bind calls from the archived copy. With --name the archive
directory gets a suffix, so alternative solutions can coexist:

  aoc bind 2 --name fast    solutions/2023/05/part_2_fast/main.go`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	part := submitPart
	if part == 0 {
		part = env.Context.Part
	}

	msg, err := env.Submit(cmd.Context(), args[0], part)
	if err != nil {
		return err
	}
	fmt.Println(msg)

	// Solving part 1 advances the context so the next run targets part 2.
	if part == 1 && env.Context.Part == 1 && puzzle.IsSet(env.Root) {
		if solved, err := env.Solved(1); err == nil && solved {
			next := env.Context
			next.Part = 2
			if err := puzzle.Save(env.Root, next); err != nil {
				return err
			}
			fmt.Println("➡️  Context advanced to part 2.")
		}
	}
	return nil
}

func runBind(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	part, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid part %q", args[0])
	}

	dest, err := env.Layout.Bind(env.Context, part, bindName, bindForce)
	if err != nil {
		return err
	}
	fmt.Printf("📦 Bound to %s\n", dest)

	if env.Config.CommitOnBind {
		if err := env.Layout.CommitSolution(env.Context, part, dest); err != nil {
			return fmt.Errorf("failed to commit solution: %w", err)
		}
		fmt.Println("📝 Committed.")
	}
	if env.Config.ClearOnBind {
		if err := env.Layout.ClearNotepad(); err != nil {
			return err
		}
		fmt.Println("🧹 Notepad cleared.")
	}
	return nil
}

func init() {
	submitCmd.Flags().IntVarP(&submitPart, "part", "p", 0, "puzzle part (defaults to the active part)")
	bindCmd.Flags().StringVarP(&bindName, "name", "n", "", "suffix for the archive directory")
	bindCmd.Flags().BoolVarP(&bindForce, "force", "f", false, "overwrite an existing archive")
}
