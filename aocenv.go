// Package aocenv is the solver-facing facade of the aocenv workspace: it
// resolves the current puzzle context, fetches (and caches) puzzle input
// and text, submits answers, and archives solved code. Solution programs
// import this package and call a handful of functions; everything else is
// handled by the environment.
//
//	input := aoc.MustInput()
//	answer := solve(input)
//	fmt.Println(aoc.MustSubmit(answer, 1))
package aocenv

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Apsurt/aocenv/internal/cache"
	"github.com/Apsurt/aocenv/internal/client"
	"github.com/Apsurt/aocenv/internal/config"
	"github.com/Apsurt/aocenv/internal/puzzle"
	"github.com/Apsurt/aocenv/internal/runner"
	"github.com/Apsurt/aocenv/internal/workspace"
	"github.com/Apsurt/aocenv/pkg/parse"
)

// Env binds together everything a solution needs: the workspace, its
// config, the puzzle context, the response cache, and the site client.
type Env struct {
	Root    string
	Config  config.Config
	Context puzzle.Context
	Layout  workspace.Layout

	store  *cache.Store
	client *client.Client
	logger *zap.Logger
}

var (
	defaultEnv  *Env
	defaultErr  error
	defaultOnce sync.Once
)

// Default resolves the environment from the current working directory,
// once per process.
func Default() (*Env, error) {
	defaultOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			defaultErr = err
			return
		}
		defaultEnv, defaultErr = Open(cwd)
	})
	return defaultEnv, defaultErr
}

// Open resolves the environment for the workspace containing dir.
func Open(dir string) (*Env, error) {
	root, err := puzzle.FindRoot(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	ctx, err := puzzle.Load(root)
	if err != nil {
		return nil, err
	}
	layout := workspace.Layout{Root: root}
	store, err := cache.Open(layout.CachePath())
	if err != nil {
		return nil, err
	}
	return &Env{
		Root:    root,
		Config:  cfg,
		Context: ctx,
		Layout:  layout,
		store:   store,
		client:  client.New(cfg.Session, zap.NewNop()),
		logger:  zap.NewNop(),
	}, nil
}

// Close releases the environment's cache handle.
func (e *Env) Close() error { return e.store.Close() }

// SetLogger installs a logger; the CLI routes its zap logger here.
func (e *Env) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger = l
}

// SetClient replaces the site client, used by tests and the CLI.
func (e *Env) SetClient(c *client.Client) { e.client = c }

func (e *Env) sessionHash() string { return cache.SessionHash(e.Config.Session) }

func testMode() bool { return os.Getenv(runner.EnvTestMode) == "true" }

// Input returns the puzzle input for the current context, from cache when
// possible. In test mode it returns the injected example instead.
func (e *Env) Input(ctx context.Context) (string, error) {
	if testMode() {
		return os.Getenv(runner.EnvTestInput), nil
	}
	if content, ok, err := e.store.Input(e.sessionHash(), e.Context.Year, e.Context.Day); err != nil {
		return "", err
	} else if ok {
		e.logger.Debug("input served from cache")
		return content, nil
	}
	if _, err := e.Config.RequireSession(); err != nil {
		return "", err
	}
	content, err := e.client.Input(ctx, e.Context.Year, e.Context.Day)
	if err != nil {
		return "", err
	}
	if err := e.store.PutInput(e.sessionHash(), e.Context.Year, e.Context.Day, content); err != nil {
		return "", err
	}
	return content, nil
}

// Instructions returns the puzzle text for the current context rendered as
// markdown, from cache when possible. With refresh set the page is fetched
// again, which is how part 2 shows up after part 1 is solved.
func (e *Env) Instructions(ctx context.Context, refresh bool) (string, error) {
	if !refresh {
		if content, ok, err := e.store.Instructions(e.sessionHash(), e.Context.Year, e.Context.Day); err != nil {
			return "", err
		} else if ok {
			return content, nil
		}
	}
	if _, err := e.Config.RequireSession(); err != nil {
		return "", err
	}
	content, err := e.client.Instructions(ctx, e.Context.Year, e.Context.Day)
	if err != nil {
		return "", err
	}
	if err := e.store.PutInstructions(e.sessionHash(), e.Context.Year, e.Context.Day, content); err != nil {
		return "", err
	}
	return content, nil
}

// Submit submits an answer for a part of the current puzzle. The exact
// answer's verdict is served from cache when this answer was submitted
// before; fresh correct/wrong verdicts are cached. On a correct answer the
// notepad is auto-bound when the config says so. The returned string is a
// display message for the solver.
//
// In test mode Submit compares the answer against the injected expected
// output instead of talking to the site.
func (e *Env) Submit(ctx context.Context, answer any, part int) (string, error) {
	text := fmt.Sprint(answer)
	if testMode() {
		expected := os.Getenv(runner.EnvTestOutput)
		if text == expected {
			return runner.PassMarker, nil
		}
		return fmt.Sprintf("❌ FAILED: got %q, expected %q", text, expected), nil
	}
	if part != 1 && part != 2 {
		return "", fmt.Errorf("aocenv: submit part %d must be 1 or 2", part)
	}

	if sub, ok, err := e.store.Submission(e.sessionHash(), e.Context.Year, e.Context.Day, part, text); err != nil {
		return "", err
	} else if ok {
		verdict, err := client.ParseVerdict(sub.Verdict)
		if err != nil {
			return "", err
		}
		e.logger.Debug("submission served from cache", zap.String("verdict", sub.Verdict))
		return formatVerdict(verdict, sub.Message+" (cached)"), nil
	}

	if _, err := e.Config.RequireSession(); err != nil {
		return "", err
	}
	verdict, msg, err := e.client.Submit(ctx, e.Context.Year, e.Context.Day, part, text)
	if err != nil {
		return "", err
	}
	if verdict.Cacheable() {
		sub := cache.Submission{Answer: text, Verdict: verdict.String(), Message: msg}
		if err := e.store.PutSubmission(e.sessionHash(), e.Context.Year, e.Context.Day, part, sub); err != nil {
			return "", err
		}
	}
	if verdict == client.VerdictCorrect && e.Config.AutoBind {
		if err := e.Bind(part); err != nil {
			e.logger.Warn("auto-bind failed", zap.Error(err))
		}
	}
	return formatVerdict(verdict, msg), nil
}

func formatVerdict(v client.Verdict, msg string) string {
	switch v {
	case client.VerdictCorrect, client.VerdictAnswered:
		return "✅ " + msg
	case client.VerdictTooFast:
		return "⏳ " + msg
	default:
		return "❌ " + msg
	}
}

// Categories lists the cache tables with their entry counts.
func (e *Env) Categories() ([]cache.Category, error) { return e.store.Categories() }

// ClearCache empties the named cache tables.
func (e *Env) ClearCache(tables ...string) error { return e.store.ClearTables(tables...) }

// Stars returns the star count per day for every event year, keyed
// year then day. Cached years are served locally; with refresh set every
// year's calendar is fetched again.
func (e *Env) Stars(ctx context.Context, refresh bool) (map[int]map[int]int, error) {
	latest, _ := puzzle.Latest(time.Now())
	all := make(map[int]map[int]int)
	for year := 2015; year <= latest; year++ {
		if !refresh {
			if stars, ok, err := e.store.Stars(e.sessionHash(), year); err != nil {
				return nil, err
			} else if ok {
				all[year] = stars
				continue
			}
		}
		if _, err := e.Config.RequireSession(); err != nil {
			return nil, err
		}
		stars, err := e.client.Stars(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("stars for %d: %w", year, err)
		}
		if err := e.store.PutStars(e.sessionHash(), year, stars); err != nil {
			return nil, err
		}
		all[year] = stars
	}
	return all, nil
}

// Solved reports whether a correct answer for a part of the current
// puzzle is recorded in the cache.
func (e *Env) Solved(part int) (bool, error) {
	_, ok, err := e.store.CorrectSubmission(e.sessionHash(), e.Context.Year, e.Context.Day, part)
	return ok, err
}

// Bind archives the notepad for a part of the current puzzle, then clears
// the notepad and commits the archive when the config enables those.
func (e *Env) Bind(part int) error {
	dest, err := e.Layout.Bind(e.Context, part, "", false)
	if err != nil {
		return err
	}
	e.logger.Info("solution bound", zap.String("dest", dest))
	if e.Config.CommitOnBind {
		if err := e.Layout.CommitSolution(e.Context, part, dest); err != nil {
			return err
		}
	}
	if e.Config.ClearOnBind {
		if err := e.Layout.ClearNotepad(); err != nil {
			return err
		}
	}
	return nil
}

// --- Package-level convenience API used inside notepad solutions. ---

// GetInput returns the puzzle input for the current context.
func GetInput() (string, error) {
	e, err := Default()
	if err != nil {
		return "", err
	}
	return e.Input(context.Background())
}

// MustInput is GetInput for solution scripts; it panics on error.
func MustInput() string {
	input, err := GetInput()
	if err != nil {
		panic(err)
	}
	return input
}

// GetInputParser returns a fluent parser over the puzzle input.
func GetInputParser() (*parse.Parser, error) {
	input, err := GetInput()
	if err != nil {
		return nil, err
	}
	return parse.New(input), nil
}

// MustInputParser is GetInputParser for solution scripts; it panics on
// error.
func MustInputParser() *parse.Parser {
	p, err := GetInputParser()
	if err != nil {
		panic(err)
	}
	return p
}

// GetInstructions returns the puzzle text rendered as markdown.
func GetInstructions() (string, error) {
	e, err := Default()
	if err != nil {
		return "", err
	}
	return e.Instructions(context.Background(), false)
}

// Submit submits an answer for a puzzle part and returns a display
// message.
func Submit(answer any, part int) (string, error) {
	e, err := Default()
	if err != nil {
		return "", err
	}
	return e.Submit(context.Background(), answer, part)
}

// MustSubmit is Submit for solution scripts; it panics on error.
func MustSubmit(answer any, part int) string {
	msg, err := Submit(answer, part)
	if err != nil {
		panic(err)
	}
	return msg
}

// Bind archives the notepad for a puzzle part.
func Bind(part int) error {
	e, err := Default()
	if err != nil {
		return err
	}
	return e.Bind(part)
}

// Clear resets the notepad to the default template.
func Clear() error {
	e, err := Default()
	if err != nil {
		return err
	}
	return e.Layout.ClearNotepad()
}

// Timed returns a stop function that prints the elapsed time when the
// AOC_TIME_IT environment variable is set (armed by 'aoc run -t').
//
//	defer aoc.Timed()()
func Timed() func() {
	if os.Getenv(runner.EnvTimeIt) != "true" {
		return func() {}
	}
	start := time.Now()
	return func() {
		fmt.Printf("\n⏱  Execution time: %s\n", time.Since(start).Round(time.Microsecond))
	}
}
