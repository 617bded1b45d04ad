// Package config loads and persists the workspace configuration stored at
// .aoc/config.yaml. The session cookie may also be supplied through the
// AOC_SESSION environment variable, which wins over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when an operation needs the adventofcode.com
// session cookie and none is configured.
var ErrNoSession = errors.New("config: session cookie not set (run 'aoc setup' or export AOC_SESSION)")

// Dir is the workspace metadata directory, relative to the workspace root.
const Dir = ".aoc"

// FileName is the config file name inside Dir.
const FileName = "config.yaml"

// Config holds all aocenv settings.
type Config struct {
	// Session is the adventofcode.com session cookie value.
	Session string `yaml:"session_cookie"`

	// AutoBind archives the notepad automatically after a correct submission.
	AutoBind bool `yaml:"auto_bind"`

	// ClearOnBind resets the notepad to the template after a bind.
	ClearOnBind bool `yaml:"clear_on_bind"`

	// CommitOnBind makes a git commit of the archived solution after a bind.
	CommitOnBind bool `yaml:"commit_on_bind"`

	// Runner is the command used to execute the notepad solution.
	Runner []string `yaml:"runner"`
}

// Default returns the configuration written by 'aoc init'.
func Default() Config {
	return Config{
		AutoBind: true,
		Runner:   []string{"go", "run", "./notepad"},
	}
}

// Path returns the config file path for a workspace root.
func Path(root string) string {
	return filepath.Join(root, Dir, FileName)
}

// Load reads the config for the given workspace root, applying defaults for
// missing fields and the AOC_SESSION override.
func Load(root string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(Path(root))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file yet: defaults plus env.
	case err != nil:
		return Config{}, fmt.Errorf("config: read: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", Path(root), err)
		}
	}
	if env := os.Getenv("AOC_SESSION"); env != "" {
		cfg.Session = env
	}
	if len(cfg.Runner) == 0 {
		cfg.Runner = Default().Runner
	}
	return cfg, nil
}

// Save writes the config under the workspace root, creating .aoc if needed.
func Save(root string, cfg Config) error {
	if err := os.MkdirAll(filepath.Join(root, Dir), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(Path(root), data, 0o600); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// RequireSession returns the session cookie or ErrNoSession.
func (c Config) RequireSession() (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	return c.Session, nil
}
