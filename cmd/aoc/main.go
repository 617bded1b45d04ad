// Package main implements the aoc CLI: an Advent of Code workspace with
// cached puzzle fetching, answer submission, solution archiving, and a
// watch-mode runner.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Apsurt/aocenv"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "aoc - Advent of Code workspace environment",
	Long: `aoc manages an Advent of Code solving workspace.

It fetches and caches puzzle inputs and instructions, submits answers,
archives solved notepads into a solutions tree, and runs your current
solution with watch mode and example-based tests.

Start with 'aoc init' in an empty directory, then 'aoc setup' to store
your session cookie.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// openEnv resolves the workspace environment from the current directory.
func openEnv() (*aocenv.Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	env, err := aocenv.Open(cwd)
	if err != nil {
		return nil, err
	}
	env.SetLogger(logger)
	return env, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	contextCmd.AddCommand(contextClearCmd)
	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateLoadCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	testCmd.AddCommand(testAddCmd)
	testCmd.AddCommand(testListCmd)
	testCmd.AddCommand(testDeleteCmd)
	testCmd.AddCommand(testRunCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(instructionsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
