package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrTemplateNotFound is returned when a named template does not exist.
var ErrTemplateNotFound = errors.New("workspace: template not found")

// protectedTemplate cannot be deleted; 'aoc clear' depends on it.
const protectedTemplate = "default"

const templateExt = ".go.tmpl"

func (l Layout) templatePath(name string) string {
	return filepath.Join(l.TemplatesDir(), name+templateExt)
}

// SaveTemplate stores the current notepad content as a named template.
func (l Layout) SaveTemplate(name string, force bool) error {
	path := l.templatePath(name)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: template %q", ErrExists, name)
	}
	content, err := l.ReadNotepad()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.TemplatesDir(), 0o755); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("workspace: save template: %w", err)
	}
	return nil
}

// LoadTemplate replaces the notepad with the named template. The built-in
// "default" name loads the stock template even when no file exists for it.
// A non-empty notepad is only overwritten with force.
func (l Layout) LoadTemplate(name string, force bool) error {
	content := DefaultTemplate
	path := l.templatePath(name)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = string(data)
	case errors.Is(err, os.ErrNotExist) && name == protectedTemplate:
		// Fall back to the built-in default.
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	default:
		return fmt.Errorf("workspace: load template: %w", err)
	}

	if current, err := l.ReadNotepad(); err == nil {
		if strings.TrimSpace(current) != "" && strings.TrimSpace(current) != strings.TrimSpace(DefaultTemplate) && !force {
			return fmt.Errorf("%w: notepad is not empty", ErrExists)
		}
	}
	if err := os.MkdirAll(l.NotepadDir(), 0o755); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	if err := os.WriteFile(l.NotepadPath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("workspace: load template: %w", err)
	}
	return nil
}

// ListTemplates returns the saved template names, sorted.
func (l Layout) ListTemplates() ([]string, error) {
	entries, err := os.ReadDir(l.TemplatesDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("workspace: list templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), templateExt))
	}
	sort.Strings(names)
	return names, nil
}

// DeleteTemplate removes a saved template. The "default" template is
// protected.
func (l Layout) DeleteTemplate(name string) error {
	if strings.EqualFold(name, protectedTemplate) {
		return fmt.Errorf("workspace: the %q template is protected", protectedTemplate)
	}
	err := os.Remove(l.templatePath(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("workspace: delete template: %w", err)
	}
	return nil
}
