package tree

import (
	"os"
	"path/filepath"
	"strings"
)

// DirEntry is one entry returned by [Filesystem.ListDir].
type DirEntry struct {
	Name  string
	IsDir bool
}

// Filesystem is the narrow disk interface the tree consumes. The default
// implementation is [OSFilesystem]; tests substitute a fake.
type Filesystem interface {
	ListDir(path string) ([]DirEntry, error)
	MakeDir(path string) error
	RemoveFile(path string) error
	RemoveDirAll(path string) error
	PathExists(path string) bool
}

// Process mutates process-wide state on behalf of a node. Kept behind an
// interface so tests never touch the real working directory or environment.
type Process interface {
	// AddSearchPath registers a directory with the process search path.
	// Must be idempotent.
	AddSearchPath(path string) error
	// SetWorkingDir changes the process working directory.
	SetWorkingDir(path string) error
}

// OSFilesystem backs [Filesystem] with real os calls.
type OSFilesystem struct{}

func (OSFilesystem) ListDir(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

func (OSFilesystem) MakeDir(path string) error { return os.MkdirAll(path, 0o755) }

func (OSFilesystem) RemoveFile(path string) error { return os.Remove(path) }

func (OSFilesystem) RemoveDirAll(path string) error { return os.RemoveAll(path) }

func (OSFilesystem) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// OSProcess backs [Process] with the real process: the working directory and
// the PATH environment variable.
type OSProcess struct{}

func (OSProcess) AddSearchPath(path string) error {
	cur := os.Getenv("PATH")
	for _, p := range filepath.SplitList(cur) {
		if p == path {
			return nil // already present
		}
	}
	if cur == "" {
		return os.Setenv("PATH", path)
	}
	return os.Setenv("PATH", strings.Join([]string{cur, path}, string(os.PathListSeparator)))
}

func (OSProcess) SetWorkingDir(path string) error { return os.Chdir(path) }
