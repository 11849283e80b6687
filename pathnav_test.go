package pathnav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philip928lin/pathnav/config"
	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestNavigator builds a navigator over root/ with data/config.yaml.
func newTestNavigator(t *testing.T, override *config.Override) (*Navigator, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "config.yaml"), []byte("a: 1\n"), 0o644))

	nav, err := New(dir, override)
	require.NoError(t, err)
	return nav, dir
}

func TestNavigator_Navigation(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)

	e, err := nav.Get("data")
	require.NoError(t, err)
	require.True(t, e.IsDir())
	assert.Equal(t, filepath.Join(dir, "data"), e.Folder.Dir())

	p, err := e.Folder.FilePath("config_yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "config.yaml"), p)
}

func TestNavigator_ShortcutResolution(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)

	data, err := nav.Child("data")
	require.NoError(t, err)
	cfgPath, err := data.FilePath("config.yaml")
	require.NoError(t, err)

	nav.AddShortcut("cfg", cfgPath)

	e, err := nav.Get("cfg")
	require.NoError(t, err)
	assert.False(t, e.IsDir())
	assert.Equal(t, cfgPath, e.Path)
	assert.Equal(t, filepath.Join(dir, "data", "config.yaml"), e.Path)
}

// A shortcut name takes precedence over a same-named child of the root.
func TestNavigator_ShortcutWinsOverChild(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)
	require.NoError(t, nav.Mkdir("cfg"))

	nav.AddShortcut("cfg", "/elsewhere")

	e, err := nav.Get("cfg")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", e.Path)

	// the child is still reachable through the folder surface
	child, err := nav.Child("cfg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg"), child.Dir())
}

func TestNavigator_GetUnknown(t *testing.T) {
	t.Parallel()

	nav, _ := newTestNavigator(t, nil)

	_, err := nav.Get("ghost")
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNavigator_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "ghost"), nil)
	var pathErr *errs.PathNotFoundError
	assert.ErrorAs(t, err, &pathErr)
}

func TestNavigator_BadPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := New(dir, &config.Override{IncludePattern: util.Pointer(`[`)})
	assert.Error(t, err)
}

func TestNavigator_LazyScan(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, &config.Override{LazyScan: util.Pointer(true)})

	// created after construction, before first access
	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.txt"), nil, 0o644))

	p, err := nav.FilePath("late.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "late.txt"), p)
}

func TestNavigator_Reload(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)

	_, err := nav.Get("late.txt")
	require.Error(t, err, "file created after the scan must not resolve yet")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.txt"), nil, 0o644))
	require.NoError(t, nav.Reload())

	p, err := nav.FilePath("late.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "late.txt"), p)
}

func TestNavigator_SetShortcuts(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, nav.Reload())

	nav.SetShortcut("home")
	require.NoError(t, nav.SetFileShortcut("n", "notes.txt"))

	p, err := nav.Shortcuts().Get("home")
	require.NoError(t, err)
	assert.Equal(t, dir, p)

	p, err = nav.Shortcuts().Get("n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.txt"), p)
}

func TestNavigator_String(t *testing.T) {
	t.Parallel()

	nav, dir := newTestNavigator(t, nil)
	assert.Equal(t, dir, nav.String())
}
