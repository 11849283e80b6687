package shortcut

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("cfg", "/path/to/config.yaml")

	p, err := r.Get("cfg")
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.yaml", p)
}

func TestRegistry_NameNormalization(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("my cfg", "/a")

	// "my cfg" and "my_cfg" address the same entry
	p, err := r.Get("my_cfg")
	require.NoError(t, err)
	assert.Equal(t, "/a", p)

	r.Add("my_cfg", "/b")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_AddOverwritesSilently(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("cfg", "/old")
	r.Add("cfg", "/new")

	p, err := r.Get("cfg")
	require.NoError(t, err)
	assert.Equal(t, "/new", p)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, err := r.Get("ghost")
	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.Name)
}

func TestRegistry_RemoveUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("cfg", "/a")

	require.NoError(t, r.Remove("cfg"))
	assert.Equal(t, 0, r.Len())

	err := r.Remove("cfg")
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistry_DictRoundTrip(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/a")
	r.Add("b", "/b")

	before := r.ToDict()
	r.LoadDict(r.ToDict())
	assert.Equal(t, before, r.ToDict(), "LoadDict(ToDict()) must leave the alias set unchanged")
}

func TestRegistry_LoadDictMerges(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("keep", "/keep")
	r.Add("clash", "/old")

	r.LoadDict(map[string]string{"clash": "/new", "added": "/added"})

	assert.Equal(t, map[string]string{
		"keep":  "/keep",
		"clash": "/new",
		"added": "/added",
	}, r.ToDict())
}

func TestRegistry_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "shortcuts.json")

	r := NewRegistry()
	r.Add("cfg", "/path/to/config.yaml")
	r.Add("data", "/path/to/data")
	require.NoError(t, r.ToJSON(file))

	loaded := NewRegistry()
	require.NoError(t, loaded.LoadJSON(file))
	assert.Equal(t, r.ToDict(), loaded.ToDict())
}

func TestRegistry_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "shortcuts.yml")

	r := NewRegistry()
	r.Add("cfg", "/path/to/config.yaml")
	require.NoError(t, r.ToYAML(file))

	loaded := NewRegistry()
	require.NoError(t, loaded.LoadYAML(file))
	assert.Equal(t, r.ToDict(), loaded.ToDict())
}

func TestRegistry_LoadJSONMerges(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "shortcuts.json")
	saved := NewRegistry()
	saved.Add("clash", "/new")
	require.NoError(t, saved.ToJSON(file))

	r := NewRegistry()
	r.Add("keep", "/keep")
	r.Add("clash", "/old")
	require.NoError(t, r.LoadJSON(file))

	assert.Equal(t, map[string]string{"keep": "/keep", "clash": "/new"}, r.ToDict())
}

func TestRegistry_PersistenceErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	var persistErr *errs.PersistenceError

	r := NewRegistry()
	assert.ErrorAs(t, r.LoadJSON(bad), &persistErr)
	assert.ErrorAs(t, r.LoadJSON(filepath.Join(dir, "missing.json")), &persistErr)
	assert.ErrorAs(t, r.Load(filepath.Join(dir, "shortcuts.txt")), &persistErr)
	assert.ErrorAs(t, r.Save(filepath.Join(dir, "shortcuts.txt")), &persistErr)
}

func TestRegistry_SaveLoadByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{"json", "shortcuts.json"},
		{"yaml", "shortcuts.yaml"},
		{"yml", "shortcuts.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), tt.file)

			r := NewRegistry()
			r.Add("cfg", "/a")
			require.NoError(t, r.Save(file))

			loaded := NewRegistry()
			require.NoError(t, loaded.Load(file))
			assert.Equal(t, r.ToDict(), loaded.ToDict())
		})
	}
}

func TestRegistry_AddAllFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	r := NewRegistry()
	require.NoError(t, r.AddAllFiles(tree.OSFilesystem{}, dir, "in_"))

	assert.Equal(t, []string{"in_a_txt", "in_b_txt"}, r.Names())

	p, err := r.Get("in_a_txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.txt"), p)
}

func TestRegistry_ClearAndLs(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	var buf bytes.Buffer
	r.Ls(&buf)
	assert.Contains(t, buf.String(), "No shortcuts available.")

	r.Add("b", "/b")
	r.Add("a", "/a")

	buf.Reset()
	r.Ls(&buf)
	assert.Equal(t, "Shortcuts:\na -> /a\nb -> /b\n", buf.String())

	r.Clear()
	assert.Equal(t, 0, r.Len())
}
