// Package main: notepad runner commands.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/internal/runner"
)

var (
	runTimed bool
	runWatch bool
)

// runCmd executes the notepad solution
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the notepad solution",
	Long: `Runs the current notepad solution with the configured runner command
(by default 'go run ./notepad').

With --timed the solution's Timed() helper prints the execution time.
With --watch the notepad is re-run whenever a source file changes; stop
with Ctrl-C.`,
	RunE: runNotepad,
}

func runNotepad(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	r := &runner.Runner{
		Root:    env.Root,
		Command: env.Config.Runner,
		Logger:  logger,
	}

	if !runWatch {
		return r.Run(cmd.Context(), runTimed)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("👀 Watching for changes (Ctrl-C to stop)")
	return r.Watch(ctx, env.Layout.NotepadDir(), runTimed)
}

func init() {
	runCmd.Flags().BoolVarP(&runTimed, "timed", "t", false, "print the execution time")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run on file changes")
}
