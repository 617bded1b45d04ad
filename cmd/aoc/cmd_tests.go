// Package main: example test management (the 'aoc test' family).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Apsurt/aocenv/cmd/aoc/ui"
	"github.com/Apsurt/aocenv/internal/runner"
	"github.com/Apsurt/aocenv/internal/testcase"
)

var (
	testPart      int
	testInputFile string
	testOutput    string
)

// testCmd manages example tests for the active puzzle
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Manage and run example tests for the active puzzle",
	Long: `Example tests pair a puzzle's example input with its expected answer.
'aoc test run' executes the notepad once per case with the example
injected in place of the real input; the solution's Submit call then
checks the answer locally instead of hitting the site.

Subcommands:
  add     store an example (input from --input-file or pasted on stdin)
  list    list stored examples for the active puzzle
  delete  delete an example by number
  run     run the notepad against the stored examples`,
	RunE: runTestList,
}

var testAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store an example test",
	RunE:  runTestAdd,
}

var testListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored examples",
	RunE:  runTestList,
}

var testDeleteCmd = &cobra.Command{
	Use:   "delete <number>",
	Short: "Delete an example by number",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestDelete,
}

var testRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the notepad against the stored examples",
	RunE:  runTestRun,
}

func resolvePart(part, contextPart int) int {
	if part != 0 {
		return part
	}
	return contextPart
}

func readExampleInput(cmd *cobra.Command) (string, error) {
	if testInputFile != "" && testInputFile != "-" {
		data, err := os.ReadFile(testInputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	fmt.Println("Paste the example input, then press Ctrl-D:")
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runTestAdd(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	part := resolvePart(testPart, env.Context.Part)

	input, err := readExampleInput(cmd)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("empty example input")
	}

	output := testOutput
	if output == "" {
		fmt.Print("Expected answer: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		output = strings.TrimSpace(line)
	}
	if output == "" {
		return fmt.Errorf("empty expected answer")
	}

	set, err := testcase.Load(env.Root, env.Context.Year, env.Context.Day)
	if err != nil {
		return err
	}
	if err := set.Add(part, testcase.Case{Input: input, Output: output}); err != nil {
		return err
	}
	if err := testcase.Save(env.Root, env.Context.Year, env.Context.Day, set); err != nil {
		return err
	}
	fmt.Printf("✅ Example %d stored for %s part %d.\n", len(set.ForPart(part)), env.Context, part)
	return nil
}

func runTestList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	set, err := testcase.Load(env.Root, env.Context.Year, env.Context.Day)
	if err != nil {
		return err
	}

	table := ui.NewSimpleTable(fmt.Sprintf("Examples for %s", env.Context), []string{"Part", "#", "Input", "Expected"})
	for part := 1; part <= 2; part++ {
		for i, c := range set.ForPart(part) {
			preview := strings.SplitN(c.Input, "\n", 2)[0]
			if len(preview) > 40 {
				preview = preview[:40] + "…"
			}
			table.AddRow(strconv.Itoa(part), strconv.Itoa(i+1), preview, c.Output)
		}
	}
	if len(table.Rows) == 0 {
		fmt.Printf("Examples for %s: none; add one with 'aoc test add'\n", env.Context)
		return nil
	}
	fmt.Print(table.View(ui.NewStyles()))
	return nil
}

func runTestDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid example number %q", args[0])
	}
	part := resolvePart(testPart, env.Context.Part)

	set, err := testcase.Load(env.Root, env.Context.Year, env.Context.Day)
	if err != nil {
		return err
	}
	if err := set.Delete(part, index); err != nil {
		return err
	}
	if err := testcase.Save(env.Root, env.Context.Year, env.Context.Day, set); err != nil {
		return err
	}
	fmt.Printf("🗑  Example %d deleted from part %d.\n", index, part)
	return nil
}

func runTestRun(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	part := resolvePart(testPart, env.Context.Part)

	set, err := testcase.Load(env.Root, env.Context.Year, env.Context.Day)
	if err != nil {
		return err
	}
	cases := set.ForPart(part)
	if len(cases) == 0 {
		return fmt.Errorf("no examples stored for part %d (add one with 'aoc test add')", part)
	}

	r := &runner.Runner{
		Root:    env.Root,
		Command: env.Config.Runner,
		Logger:  logger,
	}

	failed := 0
	for i, c := range cases {
		result, err := r.RunTest(cmd.Context(), c.Input, c.Output)
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}
		if result.Passed {
			fmt.Printf("✅ example %d passed\n", i+1)
			continue
		}
		failed++
		fmt.Printf("❌ example %d failed\n", i+1)
		if out := strings.TrimSpace(result.Output); out != "" {
			fmt.Printf("   output: %s\n", strings.ReplaceAll(out, "\n", "\n   "))
		}
		if errOut := strings.TrimSpace(result.Stderr); errOut != "" {
			fmt.Printf("   stderr: %s\n", strings.ReplaceAll(errOut, "\n", "\n   "))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d examples failed", failed, len(cases))
	}
	fmt.Printf("🎉 All %d examples passed.\n", len(cases))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{testAddCmd, testListCmd, testDeleteCmd, testRunCmd} {
		c.Flags().IntVarP(&testPart, "part", "p", 0, "puzzle part (defaults to the active part)")
	}
	testAddCmd.Flags().StringVarP(&testInputFile, "input-file", "i", "", "read the example input from a file ('-' for stdin)")
	testAddCmd.Flags().StringVarP(&testOutput, "output", "o", "", "expected answer")
}
