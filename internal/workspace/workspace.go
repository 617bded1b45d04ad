// Package workspace manages the on-disk layout of an aocenv project: the
// notepad scratch solution, the archived solutions tree, and user
// templates.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Apsurt/aocenv/internal/config"
	"github.com/Apsurt/aocenv/internal/puzzle"
)

// ErrExists is returned when a bind or template save would overwrite an
// existing file without force.
var ErrExists = errors.New("workspace: destination already exists (use --force to overwrite)")

// DefaultTemplate is the notepad content written by 'aoc init' and
// 'aoc clear'.
const DefaultTemplate = `package main

import (
	"fmt"

	aoc "github.com/Apsurt/aocenv"
)

func main() {
	input := aoc.MustInput()
	_ = input

	var answer any

	// Your solution logic here.

	fmt.Println(answer)

	// After solving, submit and archive:
	// fmt.Println(aoc.MustSubmit(answer, 1))
	// aoc.Bind(1)
}
`

// Layout addresses the pieces of a workspace rooted at Root.
type Layout struct {
	Root string
}

// NotepadDir returns the directory holding the scratch solution.
func (l Layout) NotepadDir() string { return filepath.Join(l.Root, "notepad") }

// NotepadPath returns the scratch solution source file.
func (l Layout) NotepadPath() string { return filepath.Join(l.NotepadDir(), "main.go") }

// SolutionsDir returns the root of the archived solutions tree.
func (l Layout) SolutionsDir() string { return filepath.Join(l.Root, "solutions") }

// TemplatesDir returns the directory holding user templates.
func (l Layout) TemplatesDir() string { return filepath.Join(l.Root, config.Dir, "templates") }

// CachePath returns the response cache database file.
func (l Layout) CachePath() string { return filepath.Join(l.Root, config.Dir, "cache.db") }

// Scaffold creates a fresh workspace: the .aoc directory, a default
// config, the notepad with the default template, and a module file. The
// module file pins no dependency version; 'go get github.com/Apsurt/aocenv'
// resolves the facade before the first run.
func (l Layout) Scaffold() error {
	for _, dir := range []string{
		filepath.Join(l.Root, config.Dir),
		l.NotepadDir(),
		l.SolutionsDir(),
		l.TemplatesDir(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("workspace: scaffold: %w", err)
		}
	}
	if err := config.Save(l.Root, config.Default()); err != nil {
		return err
	}
	if err := os.WriteFile(l.NotepadPath(), []byte(DefaultTemplate), 0o644); err != nil {
		return fmt.Errorf("workspace: write notepad: %w", err)
	}
	modPath := filepath.Join(l.Root, "go.mod")
	if _, err := os.Stat(modPath); errors.Is(err, os.ErrNotExist) {
		mod := fmt.Sprintf("module %s\n\ngo 1.24\n", filepath.Base(l.Root))
		if err := os.WriteFile(modPath, []byte(mod), 0o644); err != nil {
			return fmt.Errorf("workspace: write go.mod: %w", err)
		}
	}
	return nil
}

// ReadNotepad returns the scratch solution source.
func (l Layout) ReadNotepad() (string, error) {
	data, err := os.ReadFile(l.NotepadPath())
	if err != nil {
		return "", fmt.Errorf("workspace: read notepad: %w", err)
	}
	return string(data), nil
}

// ClearNotepad resets the scratch solution to the default template.
func (l Layout) ClearNotepad() error {
	if err := os.MkdirAll(l.NotepadDir(), 0o755); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	if err := os.WriteFile(l.NotepadPath(), []byte(DefaultTemplate), 0o644); err != nil {
		return fmt.Errorf("workspace: clear notepad: %w", err)
	}
	return nil
}

var bindCallPattern = regexp.MustCompile(`(?m)^[ \t]*(?:aoc|aocenv)\.(?:Bind|MustBind)\s*\(.*\)\s*$\n?`)

// StripBindCalls removes aoc.Bind calls from solution source before it is
// archived; the archived copy should not re-bind when run.
func StripBindCalls(src string) string {
	return strings.TrimRight(bindCallPattern.ReplaceAllString(src, ""), "\n") + "\n"
}

// BindPath returns the archive destination for a puzzle part. Each part
// gets its own directory so archived solutions stay independently runnable
// package mains. An optional name suffixes the directory.
func (l Layout) BindPath(ctx puzzle.Context, part int, name string) string {
	dir := fmt.Sprintf("part_%d", part)
	if name != "" {
		dir += "_" + name
	}
	return filepath.Join(l.SolutionsDir(), fmt.Sprint(ctx.Year), fmt.Sprintf("%02d", ctx.Day), dir, "main.go")
}

// Bind archives the notepad for a puzzle part, stripping bind calls from
// the copy. It refuses to overwrite an existing archive unless overwrite
// is set, and returns the destination path.
func (l Layout) Bind(ctx puzzle.Context, part int, name string, overwrite bool) (string, error) {
	if part != 1 && part != 2 {
		return "", fmt.Errorf("workspace: bind part %d must be 1 or 2", part)
	}
	src, err := l.ReadNotepad()
	if err != nil {
		return "", err
	}
	dest := l.BindPath(ctx, part, name)
	if _, err := os.Stat(dest); err == nil && !overwrite {
		return "", fmt.Errorf("%w: %s", ErrExists, dest)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("workspace: bind: %w", err)
	}
	if err := os.WriteFile(dest, []byte(StripBindCalls(src)), 0o644); err != nil {
		return "", fmt.Errorf("workspace: bind: %w", err)
	}
	return dest, nil
}

// CommitSolution stages path and commits it with a standard message.
func (l Layout) CommitSolution(ctx puzzle.Context, part int, path string) error {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		rel = path
	}
	add := exec.Command("git", "add", rel)
	add.Dir = l.Root
	if out, err := add.CombinedOutput(); err != nil {
		return fmt.Errorf("workspace: git add: %w: %s", err, strings.TrimSpace(string(out)))
	}
	msg := fmt.Sprintf("Solve %d day %d part %d", ctx.Year, ctx.Day, part)
	commit := exec.Command("git", "commit", "-m", msg)
	commit.Dir = l.Root
	if out, err := commit.CombinedOutput(); err != nil {
		return fmt.Errorf("workspace: git commit: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
