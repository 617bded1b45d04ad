// Package main: notepad template management.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	templateSaveForce bool
	templateLoadForce bool
)

// templateCmd manages notepad templates
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage notepad templates",
	Long: `Templates are saved notepad skeletons. The built-in 'default'
template is what 'aoc clear' resets the notepad to; save your own for
recurring puzzle shapes (grids, intcode, ...).

Subcommands:
  save <name>    snapshot the current notepad as a template
  load <name>    replace the notepad with a template
  list           list saved templates
  delete <name>  delete a template`,
	RunE: runTemplateList,
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Snapshot the current notepad as a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSave,
}

var templateLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the notepad with a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateLoad,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE:  runTemplateList,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Layout.SaveTemplate(args[0], templateSaveForce); err != nil {
		return err
	}
	fmt.Printf("💾 Template %q saved.\n", args[0])
	return nil
}

func runTemplateLoad(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Layout.LoadTemplate(args[0], templateLoadForce); err != nil {
		return err
	}
	fmt.Printf("📋 Notepad replaced with template %q.\n", args[0])
	return nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	names, err := env.Layout.ListTemplates()
	if err != nil {
		return err
	}
	fmt.Println("Templates:")
	fmt.Println("  default (built-in)")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Layout.DeleteTemplate(args[0]); err != nil {
		return err
	}
	fmt.Printf("🗑  Template %q deleted.\n", args[0])
	return nil
}

func init() {
	templateSaveCmd.Flags().BoolVarP(&templateSaveForce, "force", "f", false, "overwrite an existing template")
	templateLoadCmd.Flags().BoolVarP(&templateLoadForce, "force", "f", false, "overwrite a non-empty notepad")
}
