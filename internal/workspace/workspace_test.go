package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apsurt/aocenv/internal/puzzle"
)

func newLayout(t *testing.T) Layout {
	t.Helper()
	l := Layout{Root: t.TempDir()}
	require.NoError(t, l.Scaffold())
	return l
}

func TestScaffold(t *testing.T) {
	l := newLayout(t)
	content, err := l.ReadNotepad()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, content)

	for _, dir := range []string{l.NotepadDir(), l.SolutionsDir(), l.TemplatesDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	mod, err := os.ReadFile(filepath.Join(l.Root, "go.mod"))
	require.NoError(t, err)
	assert.Contains(t, string(mod), "module "+filepath.Base(l.Root))
	assert.Contains(t, string(mod), "go 1.24")
	// No pinned requirement: nothing named v0.0.0 resolves against the
	// module proxy, so the dependency is left for 'go get' to fill in.
	assert.NotContains(t, string(mod), "require")
	assert.NotContains(t, string(mod), "v0.0.0")
}

func TestScaffoldKeepsExistingModFile(t *testing.T) {
	root := t.TempDir()
	existing := "module mysolutions\n\ngo 1.24\n\nrequire github.com/Apsurt/aocenv v1.2.3\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(existing), 0o644))

	l := Layout{Root: root}
	require.NoError(t, l.Scaffold())

	mod, err := os.ReadFile(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, existing, string(mod))
}

func TestStripBindCalls(t *testing.T) {
	src := `package main

func main() {
	answer := solve()
	aoc.Bind(1)
	print(answer)
	aocenv.Bind(2)
}
`
	got := StripBindCalls(src)
	assert.NotContains(t, got, "Bind(")
	assert.Contains(t, got, "print(answer)")
	// A Bind mentioned mid-expression stays untouched.
	keep := "x := tellThemAbout(aoc.Bind)\n"
	assert.Contains(t, StripBindCalls(keep), "tellThemAbout")
}

func TestBind(t *testing.T) {
	l := newLayout(t)
	src := "package main\n\nfunc main() {\n\taoc.Bind(1)\n}\n"
	require.NoError(t, os.WriteFile(l.NotepadPath(), []byte(src), 0o644))

	ctx := puzzle.Context{Year: 2023, Day: 7, Part: 1}
	dest, err := l.Bind(ctx, 1, "", false)
	require.NoError(t, err)
	assert.Equal(t, l.BindPath(ctx, 1, ""), dest)
	assert.Contains(t, dest, filepath.Join("solutions", "2023", "07", "part_1"))

	archived, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.NotContains(t, string(archived), "Bind(")

	// Second bind without overwrite refuses.
	_, err = l.Bind(ctx, 1, "", false)
	assert.ErrorIs(t, err, ErrExists)

	// With overwrite it succeeds.
	_, err = l.Bind(ctx, 1, "", true)
	assert.NoError(t, err)
}

func TestBindWithName(t *testing.T) {
	l := newLayout(t)
	ctx := puzzle.Context{Year: 2023, Day: 7, Part: 2}
	dest, err := l.Bind(ctx, 2, "fast", false)
	require.NoError(t, err)
	assert.Contains(t, dest, "part_2_fast")
}

func TestBindRejectsBadPart(t *testing.T) {
	l := newLayout(t)
	_, err := l.Bind(puzzle.Context{Year: 2023, Day: 7, Part: 1}, 3, "", false)
	assert.Error(t, err)
}

func TestClearNotepad(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, os.WriteFile(l.NotepadPath(), []byte("scratch"), 0o644))
	require.NoError(t, l.ClearNotepad())
	content, err := l.ReadNotepad()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, content)
}

func TestTemplates(t *testing.T) {
	l := newLayout(t)
	custom := "package main\n\n// my preferred setup\nfunc main() {}\n"
	require.NoError(t, os.WriteFile(l.NotepadPath(), []byte(custom), 0o644))

	require.NoError(t, l.SaveTemplate("grids", false))
	assert.ErrorIs(t, l.SaveTemplate("grids", false), ErrExists)
	require.NoError(t, l.SaveTemplate("grids", true))

	names, err := l.ListTemplates()
	require.NoError(t, err)
	assert.Equal(t, []string{"grids"}, names)

	// Loading over a non-empty notepad needs force.
	assert.ErrorIs(t, l.LoadTemplate("grids", false), ErrExists)
	require.NoError(t, l.LoadTemplate("grids", true))
	content, err := l.ReadNotepad()
	require.NoError(t, err)
	assert.Equal(t, custom, content)

	require.NoError(t, l.DeleteTemplate("grids"))
	assert.ErrorIs(t, l.DeleteTemplate("grids"), ErrTemplateNotFound)
	assert.Error(t, l.DeleteTemplate("default"))
}

func TestLoadDefaultTemplateAlwaysWorks(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, os.WriteFile(l.NotepadPath(), []byte("scratch"), 0o644))
	require.NoError(t, l.LoadTemplate("default", true))
	content, err := l.ReadNotepad()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, content)
}

func TestLoadMissingTemplate(t *testing.T) {
	l := newLayout(t)
	assert.ErrorIs(t, l.LoadTemplate("nope", true), ErrTemplateNotFound)
}
