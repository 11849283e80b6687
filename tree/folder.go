package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
)

// EntryKind filters [Folder.List] output.
type EntryKind int

const (
	KindAny EntryKind = iota
	KindDir
	KindFile
)

// Entry is the result of a name lookup on a Folder: either a child Folder
// or the absolute path of a file.
type Entry struct {
	Folder *Folder // nil for file entries
	Path   string  // absolute path, set for both kinds
}

// IsDir reports whether the entry resolves to a subfolder.
func (e Entry) IsDir() bool { return e.Folder != nil }

// ShortcutAdder is the slice of the shortcut registry a Folder needs to
// alias itself or one of its files.
type ShortcutAdder interface {
	Add(name, path string)
}

// Folder mirrors one directory on disk. It owns its child Folders and file
// entries, keyed by attribute name, and keeps a non-owning backref to its
// parent for navigation only.
//
// Folders are not safe for concurrent use; coordination across goroutines
// or processes is the caller's responsibility.
type Folder struct {
	path     string
	parent   *Folder                     // navigation backref, never owns
	children *xsync.Map[string, *Folder] // attribute name -> child node
	files    *xsync.Map[string, string]  // attribute name -> absolute file path
	codec    *NameCodec
	scanner  *Scanner
	fs       Filesystem
	proc     Process
	scanned  bool // lazy-scan flag, checked before resolution
	inPath   bool // AddToSysPath already applied
}

// NewRoot creates the root Folder of a tree. The directory must already
// exist; scanning is up to the caller (see [Scanner.Scan]).
func NewRoot(path string, scanner *Scanner, fs Filesystem, proc Process) *Folder {
	return &Folder{
		path:     path,
		children: xsync.NewMap[string, *Folder](),
		files:    xsync.NewMap[string, string](),
		codec:    NewNameCodec(path),
		scanner:  scanner,
		fs:       fs,
		proc:     proc,
	}
}

// newChild creates a child node for a raw directory entry name. The caller
// registers it in the parent's children map.
func (f *Folder) newChild(raw string) *Folder {
	child := NewRoot(filepath.Join(f.path, raw), f.scanner, f.fs, f.proc)
	child.parent = f
	return child
}

// Dir returns this node's absolute path. Never fails.
func (f *Folder) Dir() string { return f.path }

// Name returns the raw name of the directory itself.
func (f *Folder) Name() string { return filepath.Base(f.path) }

// Parent returns the parent node, nil for the root.
func (f *Folder) Parent() *Folder { return f.parent }

// Join joins this node's path with additional path components.
func (f *Folder) Join(parts ...string) string {
	return filepath.Join(append([]string{f.path}, parts...)...)
}

// ensureScanned runs the lazy first-access scan. Resolution never triggers
// hidden rescans after that; call [Folder.Invalidate] to force one.
func (f *Folder) ensureScanned() error {
	if f.scanned {
		return nil
	}
	return f.scanner.Scan(f)
}

// lookup resolves name against the entry maps, accepting either the
// attribute form or the raw form.
func (f *Folder) lookup(name string) (Entry, bool) {
	keys := []string{name}
	if enc := EncodeName(name); enc != name {
		keys = append(keys, enc)
	}
	for _, k := range keys {
		if child, ok := f.children.Load(k); ok {
			return Entry{Folder: child, Path: child.path}, true
		}
		if p, ok := f.files.Load(k); ok {
			return Entry{Path: p}, true
		}
	}
	return Entry{}, false
}

// Get resolves a child or file by name, scanning the directory first if
// this node has not been scanned yet. Accepts the raw name ("config.yaml")
// or its attribute form ("config_yaml"). Returns *errs.NotFoundError naming
// both the missing name and this node's path.
func (f *Folder) Get(name string) (Entry, error) {
	if err := f.ensureScanned(); err != nil {
		return Entry{}, err
	}
	if e, ok := f.lookup(name); ok {
		return e, nil
	}
	return Entry{}, &errs.NotFoundError{Name: name, Path: f.path}
}

// Child resolves name to a subfolder node.
func (f *Folder) Child(name string) (*Folder, error) {
	e, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	if !e.IsDir() {
		return nil, &errs.NotFoundError{Name: name, Path: f.path}
	}
	return e.Folder, nil
}

// FilePath resolves name to the absolute path of a file entry.
func (f *Folder) FilePath(name string) (string, error) {
	e, err := f.Get(name)
	if err != nil {
		return "", err
	}
	if e.IsDir() {
		return "", &errs.NotFoundError{Name: name, Path: f.path}
	}
	return e.Path, nil
}

// Exists reports whether name currently exists on disk under this node.
func (f *Folder) Exists(name string) bool {
	return f.fs.PathExists(f.Join(name))
}

// List returns the raw names of this node's entries, sorted, filtered by
// kind. Scans lazily on first use.
func (f *Folder) List(kind EntryKind) ([]string, error) {
	if err := f.ensureScanned(); err != nil {
		return nil, err
	}
	var names []string
	if kind == KindAny || kind == KindDir {
		f.children.Range(func(attr string, _ *Folder) bool {
			names = append(names, f.rawName(attr))
			return true
		})
	}
	if kind == KindAny || kind == KindFile {
		f.files.Range(func(attr string, _ string) bool {
			names = append(names, f.rawName(attr))
			return true
		})
	}
	sort.Strings(names)
	return names, nil
}

// rawName decodes an attribute name back to the raw entry name. Entry maps
// only hold keys the codec produced, so a decode miss means the key was the
// raw name already.
func (f *Folder) rawName(attr string) string {
	if raw, err := f.codec.Decode(attr); err == nil {
		return raw
	}
	return attr
}

// Ls writes the node's subfolders and files to w, sorted, with the
// attribute form shown whenever it differs from the raw name.
func (f *Folder) Ls(w io.Writer) error {
	if err := f.ensureScanned(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Contents of %q:\n", f.path)

	dirs, err := f.List(KindDir)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		fmt.Fprintln(w, "No subfolders.")
	} else {
		fmt.Fprintln(w, "Subfolders:")
		for _, raw := range dirs {
			f.lsEntry(w, "[Dir]", raw)
		}
	}

	files, err := f.List(KindFile)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "No files.")
	} else {
		fmt.Fprintln(w, "Files:")
		for _, raw := range files {
			f.lsEntry(w, "[File]", raw)
		}
	}
	return nil
}

func (f *Folder) lsEntry(w io.Writer, tag, raw string) {
	if attr := EncodeName(raw); attr != raw {
		fmt.Fprintf(w, "  %s %s -> %s\n", tag, raw, attr)
		return
	}
	fmt.Fprintf(w, "  %s %s\n", tag, raw)
}

// Mkdir creates one subdirectory per name, registering the corresponding
// child node. Names may contain path separators; intermediate directories
// are created as well, like mkdir -p. A name whose directory already exists
// is a no-op on disk. Fails with *errs.InvalidNameError when a name
// collides with an existing file entry.
//
// The on-disk create happens first: if it fails, the in-memory tree is
// untouched.
func (f *Folder) Mkdir(names ...string) error {
	logger := util.GetLogger("Folder.Mkdir")

	for _, name := range names {
		cur := f
		for _, part := range splitPathParts(name) {
			if err := cur.ensureScanned(); err != nil {
				return err
			}
			attr := EncodeName(part)
			if _, ok := cur.files.Load(attr); ok {
				return &errs.InvalidNameError{Name: part, Path: cur.path}
			}

			full := cur.Join(part)
			created := false
			if !cur.fs.PathExists(full) {
				if err := cur.fs.MakeDir(full); err != nil {
					logger.Error().Err(err).Str("path", full).Msg("Failed to create directory")
					return fmt.Errorf("mkdir %s: %w", full, err)
				}
				created = true
				logger.Debug().Str("path", full).Msg("Created directory")
			}

			if _, err := cur.codec.Encode(part); err != nil {
				return err
			}
			child, ok := cur.children.Load(attr)
			if !ok {
				child = cur.newChild(part)
				// a brand-new directory has nothing to scan; a pre-existing
				// one scans lazily on first access
				child.scanned = created
				cur.children.Store(attr, child)
			}
			cur = child
		}
	}
	return nil
}

// Remove deletes the named file or recursively deletes the named
// subdirectory on disk, then detaches the entry from this node. Fails with
// *errs.NotFoundError if the name is unknown. If the disk operation fails,
// the in-memory entry stays attached.
func (f *Folder) Remove(name string) error {
	logger := util.GetLogger("Folder.Remove")

	if err := f.ensureScanned(); err != nil {
		return err
	}
	attr := EncodeName(name)
	raw := f.rawName(attr)

	if child, ok := f.children.Load(attr); ok {
		if err := f.fs.RemoveDirAll(child.path); err != nil {
			logger.Error().Err(err).Str("path", child.path).Msg("Failed to remove directory")
			return fmt.Errorf("remove %s: %w", child.path, err)
		}
		f.children.Delete(attr)
		child.parent = nil
		f.codec.Forget(raw)
		logger.Debug().Str("path", child.path).Msg("Removed subfolder")
		return nil
	}
	if p, ok := f.files.Load(attr); ok {
		if err := f.fs.RemoveFile(p); err != nil {
			logger.Error().Err(err).Str("path", p).Msg("Failed to remove file")
			return fmt.Errorf("remove %s: %w", p, err)
		}
		f.files.Delete(attr)
		f.codec.Forget(raw)
		logger.Debug().Str("path", p).Msg("Removed file")
		return nil
	}
	return &errs.NotFoundError{Name: name, Path: f.path}
}

// Chdir changes the process working directory to this node's path. Fails
// with *errs.PathNotFoundError if the directory no longer exists on disk.
func (f *Folder) Chdir() error {
	if !f.fs.PathExists(f.path) {
		return &errs.PathNotFoundError{Path: f.path}
	}
	return f.proc.SetWorkingDir(f.path)
}

// AddToSysPath registers this node's directory with the process search
// path. Idempotent: adding twice has no additional effect.
func (f *Folder) AddToSysPath() error {
	if f.inPath {
		return nil
	}
	if err := f.proc.AddSearchPath(f.path); err != nil {
		return err
	}
	f.inPath = true
	return nil
}

// SetShortcut aliases this node's directory in reg under name.
func (f *Folder) SetShortcut(reg ShortcutAdder, name string) {
	reg.Add(name, f.path)
}

// SetFileShortcut aliases one of this node's files in reg under name.
func (f *Folder) SetFileShortcut(reg ShortcutAdder, name, file string) error {
	p, err := f.FilePath(file)
	if err != nil {
		return err
	}
	reg.Add(name, p)
	return nil
}

// Invalidate clears the scanned flag on this node and its whole subtree so
// the next resolution rescans from disk.
func (f *Folder) Invalidate() {
	f.scanned = false
	f.children.Range(func(_ string, child *Folder) bool {
		child.Invalidate()
		return true
	})
}

// splitPathParts splits a mkdir argument into its path components, dropping
// empties from doubled or trailing separators.
func splitPathParts(name string) []string {
	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(name), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
