package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shCommand(script string) []string {
	return []string{"sh", "-c", script}
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out to sh")
	}
}

func TestRun(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand("echo hello"),
		Stdout:  &out,
		Stderr:  &out,
	}
	require.NoError(t, r.Run(context.Background(), false))
	assert.Contains(t, out.String(), "hello")
}

func TestRunTimedReportsDuration(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand(`test "$AOC_TIME_IT" = "true" && echo armed`),
		Stdout:  &out,
		Stderr:  &out,
	}
	require.NoError(t, r.Run(context.Background(), true))
	assert.Contains(t, out.String(), "armed")
	assert.Contains(t, out.String(), "⏱")
}

func TestRunNoCommand(t *testing.T) {
	r := &Runner{Root: t.TempDir()}
	assert.Error(t, r.Run(context.Background(), false))
}

func TestRunFailurePropagates(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand("exit 3"),
		Stdout:  &out,
		Stderr:  &out,
	}
	assert.Error(t, r.Run(context.Background(), false))
}

func TestRunTestPass(t *testing.T) {
	skipOnWindows(t)
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand(`test "$AOC_TEST_MODE" = "true" && test "$AOC_TEST_INPUT" = "1 2" && echo "` + PassMarker + `"`),
	}
	res, err := r.RunTest(context.Background(), "1 2", "3")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Contains(t, res.Output, PassMarker)
}

func TestRunTestFail(t *testing.T) {
	skipOnWindows(t)
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand(`echo "❌ FAILED: got 4" && echo oops >&2`),
	}
	res, err := r.RunTest(context.Background(), "in", "out")
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, "oops", res.Stderr)
}

func TestRunTestToleratesNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	r := &Runner{
		Root:    t.TempDir(),
		Command: shCommand("echo partial; exit 1"),
	}
	res, err := r.RunTest(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Output, "partial")
}

func TestWatchReturnsCleanlyWithDebouncePending(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	r := &Runner{
		Root:    dir,
		Command: shCommand("echo ran"),
		Stdout:  &out,
		Stderr:  &errOut,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx, dir, false) }()

	// Let the initial run finish and the watcher settle, then arm the
	// debounce timer with a write and cancel inside its window.
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	time.Sleep(debounceWindow / 4)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}

	// The pending debounce must not trigger a re-run after Watch returned.
	runs := strings.Count(out.String(), "ran")
	time.Sleep(2 * debounceWindow)
	assert.Equal(t, runs, strings.Count(out.String(), "ran"))
	assert.NotContains(t, out.String(), "re-running")
}
