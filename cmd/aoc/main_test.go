package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Apsurt/aocenv/internal/puzzle"
	"github.com/Apsurt/aocenv/internal/testcase"
	"github.com/Apsurt/aocenv/internal/workspace"
)

// newWorkspace scaffolds a workspace and makes it the working directory.
func newWorkspace(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	root := t.TempDir()
	if err := (workspace.Layout{Root: root}).Scaffold(); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	t.Chdir(root)
	return root
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	fn()

	wOut.Close()
	os.Stdout = origOut
	var buf bytes.Buffer
	io.Copy(&buf, rOut)
	return buf.String()
}

func TestCommandRegistration(t *testing.T) {
	for _, name := range []string{
		"init", "setup", "set", "context", "fetch", "instructions",
		"run", "submit", "bind", "clear", "template", "test", "stats",
	} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRunInitIsIdempotent(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	for i := 0; i < 2; i++ {
		output := captureOutput(t, func() {
			if err := runInit(&cobra.Command{}, nil); err != nil {
				t.Fatalf("runInit: %v", err)
			}
		})
		if !strings.Contains(output, "Workspace initialized") {
			t.Fatalf("unexpected init output: %s", output)
		}
		if !strings.Contains(output, "go get github.com/Apsurt/aocenv") {
			t.Fatalf("init should point at go get: %s", output)
		}
	}
}

func TestRunSetAndContextShow(t *testing.T) {
	root := newWorkspace(t)

	output := captureOutput(t, func() {
		if err := runSet(&cobra.Command{}, []string{"2023", "5", "2"}); err != nil {
			t.Fatalf("runSet: %v", err)
		}
	})
	if !strings.Contains(output, "2023 day 5 part 2") {
		t.Fatalf("unexpected set output: %s", output)
	}

	ctx, err := puzzle.Load(root)
	if err != nil {
		t.Fatalf("load context: %v", err)
	}
	if ctx.Year != 2023 || ctx.Day != 5 || ctx.Part != 2 {
		t.Fatalf("context = %+v", ctx)
	}

	output = captureOutput(t, func() {
		if err := runContextShow(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runContextShow: %v", err)
		}
	})
	if !strings.Contains(output, "2023 day 5 part 2") {
		t.Fatalf("unexpected show output: %s", output)
	}
}

func TestRunSetRejectsBadPuzzle(t *testing.T) {
	newWorkspace(t)

	if err := runSet(&cobra.Command{}, []string{"2023", "26"}); err == nil {
		t.Fatal("day 26 should be rejected")
	}
	if err := runSet(&cobra.Command{}, []string{"2014", "1"}); err == nil {
		t.Fatal("year 2014 should be rejected")
	}
}

func TestRunContextClear(t *testing.T) {
	root := newWorkspace(t)

	if err := runSet(&cobra.Command{}, []string{"2023", "5"}); err != nil {
		t.Fatalf("runSet: %v", err)
	}
	captureOutput(t, func() {
		if err := runContextClear(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runContextClear: %v", err)
		}
	})
	if puzzle.IsSet(root) {
		t.Fatal("selection should be cleared")
	}
}

func TestRunTemplateList(t *testing.T) {
	newWorkspace(t)

	output := captureOutput(t, func() {
		if err := runTemplateList(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runTemplateList: %v", err)
		}
	})
	if !strings.Contains(output, "default (built-in)") {
		t.Fatalf("template list missing built-in default: %s", output)
	}
}

func TestRunClearAll(t *testing.T) {
	newWorkspace(t)
	clearAll = true
	defer func() { clearAll = false }()

	output := captureOutput(t, func() {
		if err := runClear(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runClear: %v", err)
		}
	})
	if !strings.Contains(output, "Notepad reset") {
		t.Fatalf("clear --all should reset the notepad: %s", output)
	}
}

func TestRunTestListRendersTable(t *testing.T) {
	root := newWorkspace(t)

	if err := runSet(&cobra.Command{}, []string{"2023", "5"}); err != nil {
		t.Fatalf("runSet: %v", err)
	}
	set := &testcase.Set{}
	if err := set.Add(1, testcase.Case{Input: "1 2 3", Output: "42"}); err != nil {
		t.Fatalf("add case: %v", err)
	}
	if err := testcase.Save(root, 2023, 5, set); err != nil {
		t.Fatalf("save cases: %v", err)
	}

	output := captureOutput(t, func() {
		if err := runTestList(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runTestList: %v", err)
		}
	})
	for _, want := range []string{"Examples for 2023 day 5", "Part", "Expected", "1 2 3", "42"} {
		if !strings.Contains(output, want) {
			t.Fatalf("example table missing %q:\n%s", want, output)
		}
	}
}

func TestRunTestListEmpty(t *testing.T) {
	newWorkspace(t)

	output := captureOutput(t, func() {
		if err := runTestList(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runTestList: %v", err)
		}
	})
	if !strings.Contains(output, "none") {
		t.Fatalf("empty example list output: %s", output)
	}
}
