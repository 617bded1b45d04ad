// Package main: workspace initialization and session setup commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/internal/config"
	"github.com/Apsurt/aocenv/internal/workspace"
)

// initCmd scaffolds a fresh workspace in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an Advent of Code workspace here",
	Long: `Creates the workspace skeleton in the current directory:

  .aoc/        config, cache, templates
  notepad/     the scratch solution you edit and run
  solutions/   archive of bound solutions

Existing files are left alone, so init is safe to re-run.`,
	RunE: runInit,
}

// setupCmd interactively stores the session cookie.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store your adventofcode.com session cookie",
	Long: `Walks you through storing the session cookie used to fetch inputs
and submit answers.

Find the cookie in your browser: log in to adventofcode.com, open the
developer tools, and copy the value of the 'session' cookie. The value
is saved to .aoc/config.yaml with owner-only permissions.`,
	RunE: runSetup,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	layout := workspace.Layout{Root: cwd}
	if err := layout.Scaffold(); err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}

	fmt.Println("🎄 Workspace initialized.")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. go get github.com/Apsurt/aocenv")
	fmt.Println("  2. aoc setup            store your session cookie")
	fmt.Println("  3. aoc set <year> <day> pick a puzzle")
	fmt.Println("  4. aoc run              run notepad/main.go")
	return nil
}

func runSetup(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	reader := bufio.NewReader(cmd.InOrStdin())

	if env.Config.Session != "" {
		fmt.Print("A session cookie is already stored. Replace it? [y/N]: ")
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Keeping the existing cookie.")
			return nil
		}
	}

	fmt.Print("Paste your session cookie: ")
	session, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read cookie: %w", err)
	}
	session = strings.TrimSpace(session)
	if session == "" {
		return fmt.Errorf("empty session cookie")
	}

	env.Config.Session = session
	if err := config.Save(env.Root, env.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println("✅ Session cookie saved to .aoc/config.yaml")
	return nil
}
