// Package shortcut maintains named aliases pointing to arbitrary paths,
// independent of tree structure, with dict/JSON/YAML round-trip
// persistence.
package shortcut

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/philip928lin/pathnav/tree"
	"github.com/puzpuzpuz/xsync/v4"
	"gopkg.in/yaml.v3"
)

// Registry maps alias names to absolute paths. Alias names are normalized
// to their attribute form on the way in, so "my cfg" and "my_cfg" address
// the same entry. Targets are not validated: an alias may point to a path
// created later.
//
// Not safe for concurrent use, and no file locking is taken on persisted
// shortcut files; coordination is the caller's responsibility.
type Registry struct {
	entries *xsync.Map[string, string] // normalized alias -> absolute path
}

func NewRegistry() *Registry {
	return &Registry{entries: xsync.NewMap[string, string]()}
}

// Add registers an alias. An existing alias with the same name is silently
// overwritten; that is the documented behavior, not an error.
func (r *Registry) Add(name, path string) {
	logger := util.GetLogger("Registry.Add")
	attr := tree.EncodeName(name)
	if prev, ok := r.entries.Load(attr); ok && prev != path {
		logger.Debug().Str("name", attr).Str("old", prev).Str("new", path).Msg("Overwriting shortcut")
	}
	r.entries.Store(attr, path)
}

// Get returns the path an alias points to. Returns *errs.NotFoundError if
// the alias is unknown.
func (r *Registry) Get(name string) (string, error) {
	if p, ok := r.entries.Load(tree.EncodeName(name)); ok {
		return p, nil
	}
	return "", &errs.NotFoundError{Name: name}
}

// Remove deletes an alias. Returns *errs.NotFoundError if absent.
func (r *Registry) Remove(name string) error {
	attr := tree.EncodeName(name)
	if _, ok := r.entries.LoadAndDelete(attr); !ok {
		return &errs.NotFoundError{Name: name}
	}
	return nil
}

// Clear removes all aliases.
func (r *Registry) Clear() {
	r.entries.Clear()
}

// Len returns the number of registered aliases.
func (r *Registry) Len() int { return r.entries.Size() }

// Names returns all alias names, sorted.
func (r *Registry) Names() []string {
	var names []string
	r.entries.Range(func(name string, _ string) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Ls writes all aliases and their targets to w, sorted by name.
func (r *Registry) Ls(w io.Writer) {
	names := r.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No shortcuts available.")
		return
	}
	fmt.Fprintln(w, "Shortcuts:")
	for _, name := range names {
		p, _ := r.entries.Load(name)
		fmt.Fprintf(w, "%s -> %s\n", name, p)
	}
}

// ToDict returns the full alias set as a plain map.
// LoadDict(ToDict()) leaves the registry unchanged.
func (r *Registry) ToDict() map[string]string {
	out := make(map[string]string, r.entries.Size())
	r.entries.Range(func(name, p string) bool {
		out[name] = p
		return true
	})
	return out
}

// LoadDict merges aliases from a plain map. Incoming entries overwrite
// same-named existing ones; other existing aliases are kept.
func (r *Registry) LoadDict(data map[string]string) {
	for name, p := range data {
		r.Add(name, p)
	}
}

// AddAllFiles aliases every file directly inside dir, with an optional name
// prefix.
func (r *Registry) AddAllFiles(fs tree.Filesystem, dir, prefix string) error {
	entries, err := fs.ListDir(dir)
	if err != nil {
		return &errs.PathNotFoundError{Path: dir}
	}
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		r.Add(prefix+e.Name, filepath.Join(dir, e.Name))
	}
	return nil
}

// ToJSON writes the alias set to path as indented JSON.
func (r *Registry) ToJSON(path string) error {
	data, err := json.MarshalIndent(r.ToDict(), "", "    ")
	if err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	return nil
}

// LoadJSON merges aliases from a JSON file; same merge semantics as
// LoadDict. Returns *errs.PersistenceError on unreadable or malformed
// files.
func (r *Registry) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	r.LoadDict(m)
	return nil
}

// ToYAML writes the alias set to path as YAML.
func (r *Registry) ToYAML(path string) error {
	data, err := yaml.Marshal(r.ToDict())
	if err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	return nil
}

// LoadYAML merges aliases from a YAML file; same merge semantics as
// LoadDict.
func (r *Registry) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	r.LoadDict(m)
	return nil
}

// Save persists to path, picking the format from the file extension
// (.json, .yaml, .yml).
func (r *Registry) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.ToYAML(path)
	case ".json":
		return r.ToJSON(path)
	default:
		return &errs.PersistenceError{Path: path, Err: fmt.Errorf("unknown shortcut file extension")}
	}
}

// Load merges from path, picking the format from the file extension.
func (r *Registry) Load(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.LoadYAML(path)
	case ".json":
		return r.LoadJSON(path)
	default:
		return &errs.PersistenceError{Path: path, Err: fmt.Errorf("unknown shortcut file extension")}
	}
}
