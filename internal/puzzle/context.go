// Package puzzle tracks the "current puzzle" context: the year, day, and
// part every other command operates on. The context is persisted under
// .aoc/context.yaml; when none is set, commands default to the latest
// available puzzle.
package puzzle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Apsurt/aocenv/internal/config"
)

// ErrNotInWorkspace is returned when no .aoc directory is found in the
// current directory or any parent.
var ErrNotInWorkspace = errors.New("puzzle: not inside an aocenv workspace (run 'aoc init')")

// Context identifies a puzzle and the part being solved.
type Context struct {
	Year int `yaml:"year"`
	Day  int `yaml:"day"`
	Part int `yaml:"part"`
}

func (c Context) String() string {
	return fmt.Sprintf("%d day %d part %d", c.Year, c.Day, c.Part)
}

// Validate checks that the context addresses a real puzzle.
func (c Context) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("puzzle: year %d is before the first event (2015)", c.Year)
	}
	if c.Day < 1 || c.Day > 25 {
		return fmt.Errorf("puzzle: day %d out of range 1..25", c.Day)
	}
	if c.Part != 1 && c.Part != 2 {
		return fmt.Errorf("puzzle: part %d must be 1 or 2", c.Part)
	}
	return nil
}

const contextFile = "context.yaml"

func contextPath(root string) string {
	return filepath.Join(root, config.Dir, contextFile)
}

// FindRoot walks upward from start looking for a directory containing
// .aoc, returning the workspace root.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("puzzle: %w", err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, config.Dir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInWorkspace
		}
		dir = parent
	}
}

// Load returns the persisted context for the workspace, or the latest
// available puzzle (part 1) when none is saved.
func Load(root string) (Context, error) {
	data, err := os.ReadFile(contextPath(root))
	if errors.Is(err, os.ErrNotExist) {
		year, day := Latest(time.Now())
		return Context{Year: year, Day: day, Part: 1}, nil
	}
	if err != nil {
		return Context{}, fmt.Errorf("puzzle: read context: %w", err)
	}
	var ctx Context
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return Context{}, fmt.Errorf("puzzle: parse context: %w", err)
	}
	if ctx.Part == 0 {
		ctx.Part = 1
	}
	if err := ctx.Validate(); err != nil {
		return Context{}, err
	}
	return ctx, nil
}

// Save persists the context for the workspace.
func Save(root string, ctx Context) error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(root, config.Dir), 0o755); err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}
	data, err := yaml.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("puzzle: marshal context: %w", err)
	}
	if err := os.WriteFile(contextPath(root), data, 0o644); err != nil {
		return fmt.Errorf("puzzle: write context: %w", err)
	}
	return nil
}

// Clear removes the persisted context. Clearing an unset context is fine.
func Clear(root string) error {
	err := os.Remove(contextPath(root))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("puzzle: clear context: %w", err)
	}
	return nil
}

// IsSet reports whether a context is persisted for the workspace.
func IsSet(root string) bool {
	_, err := os.Stat(contextPath(root))
	return err == nil
}

// Latest returns the most recent unlocked puzzle as of now. Puzzles unlock
// at midnight EST (UTC-5): outside December that is day 25 of the previous
// event, during December the current day capped at 25.
func Latest(now time.Time) (year, day int) {
	est := now.UTC().Add(-5 * time.Hour)
	year = est.Year()
	if est.Month() < time.December {
		return year - 1, 25
	}
	day = est.Day()
	if day > 25 {
		day = 25
	}
	return year, day
}
