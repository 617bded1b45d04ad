// Package runner executes the notepad solution as a subprocess, optionally
// under test mode (example input and expected output injected through the
// environment) or watch mode (re-run on save).
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Environment variables understood by the aocenv facade inside a running
// solution.
const (
	// EnvTestMode switches the facade to local example checking.
	EnvTestMode = "AOC_TEST_MODE"
	// EnvTestInput carries the example input in test mode.
	EnvTestInput = "AOC_TEST_INPUT"
	// EnvTestOutput carries the expected answer in test mode.
	EnvTestOutput = "AOC_TEST_OUTPUT"
	// EnvTimeIt makes the facade's Timed helper print a duration.
	EnvTimeIt = "AOC_TIME_IT"
)

// PassMarker is printed by the facade when a test-mode submission matches
// the expected output; the runner greps for it to count passes.
const PassMarker = "✅ PASSED"

// Runner executes solution processes.
type Runner struct {
	// Root is the working directory for solution processes.
	Root string
	// Command is the argv used to run the notepad.
	Command []string
	// Stdout and Stderr receive process output. Defaults to os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	Logger *zap.Logger
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return zap.NewNop()
}

// Run executes the solution once, streaming its output. With timed set,
// the elapsed wall time is reported after the process exits and the
// facade's Timed helper is armed through the environment.
func (r *Runner) Run(ctx context.Context, timed bool) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("runner: no command configured")
	}
	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Dir = r.Root
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()
	if timed {
		cmd.Env = append(cmd.Env, EnvTimeIt+"=true")
	}

	r.logger().Debug("running solution", zap.Strings("command", r.Command))
	start := time.Now()
	err := cmd.Run()
	if timed {
		fmt.Fprintf(r.stdout(), "\n⏱  %s\n", time.Since(start).Round(time.Microsecond))
	}
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	return nil
}

// TestResult summarizes one test-mode execution.
type TestResult struct {
	Passed bool
	Output string
	Stderr string
}

// RunTest executes the solution against one example, returning whether the
// facade reported a pass.
func (r *Runner) RunTest(ctx context.Context, input, expected string) (TestResult, error) {
	if len(r.Command) == 0 {
		return TestResult{}, fmt.Errorf("runner: no command configured")
	}
	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Dir = r.Root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(),
		EnvTestMode+"=true",
		EnvTestInput+"="+input,
		EnvTestOutput+"="+expected,
	)

	// A failing exit still produced output worth showing; only plumbing
	// errors are fatal.
	runErr := cmd.Run()
	if _, ok := runErr.(*exec.ExitError); runErr != nil && !ok {
		return TestResult{}, fmt.Errorf("runner: %w", runErr)
	}
	out := strings.TrimSpace(stdout.String())
	return TestResult{
		Passed: strings.Contains(out, PassMarker),
		Output: out,
		Stderr: strings.TrimSpace(stderr.String()),
	}, nil
}
