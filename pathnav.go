// Package pathnav exposes a directory tree as a navigable in-memory mirror.
// A Navigator wraps the root folder of a tree and a shortcut registry;
// lookups resolve shortcut aliases first, then children of the root.
package pathnav

import (
	"os"
	"path/filepath"

	"github.com/philip928lin/pathnav/config"
	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/philip928lin/pathnav/shortcut"
	"github.com/philip928lin/pathnav/tree"
)

// Navigator is the entry point: the root Folder of a mirrored directory
// tree plus its shortcut registry. All Folder operations are available on
// the Navigator itself.
//
// Navigators are single-threaded; see the tree package docs.
type Navigator struct {
	*tree.Folder
	cfg     *config.Config
	scanner *tree.Scanner
	sc      *shortcut.Registry
}

// New builds a Navigator rooted at rootDir with real OS collaborators.
// A nil override uses the defaults: recursive eager scan, hidden entries
// ignored, no display.
func New(rootDir string, override *config.Override) (*Navigator, error) {
	return NewWithCollaborators(rootDir, config.NewConfig(override), tree.OSFilesystem{}, tree.OSProcess{})
}

// NewWithCollaborators builds a Navigator against injected filesystem and
// process collaborators; tests substitute fakes.
func NewWithCollaborators(rootDir string, cfg *config.Config, fs tree.Filesystem, proc tree.Process) (*Navigator, error) {
	logger := util.GetLogger("Navigator")

	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	if !fs.PathExists(abs) {
		return nil, &errs.PathNotFoundError{Path: abs}
	}
	scanner, err := tree.NewScanner(fs, cfg)
	if err != nil {
		return nil, err
	}

	n := &Navigator{
		Folder:  tree.NewRoot(abs, scanner, fs, proc),
		cfg:     cfg,
		scanner: scanner,
		sc:      shortcut.NewRegistry(),
	}
	if !cfg.LazyScan {
		if err := scanner.Scan(n.Folder); err != nil {
			return nil, err
		}
	}
	logger.Debug().Str("root", abs).Bool("lazy", cfg.LazyScan).Msg("Navigator initialized")

	if cfg.Display {
		if err := n.Tree(os.Stdout, tree.TreeOpts{DirsOnly: true, MaxPerLevel: 10}); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Navigator) String() string { return n.Dir() }

// Shortcuts returns the navigator's shortcut registry.
func (n *Navigator) Shortcuts() *shortcut.Registry { return n.sc }

// Get resolves name shortcut-first: a registered alias wins over a child or
// file of the root. Returns *errs.NotFoundError when neither resolves.
func (n *Navigator) Get(name string) (tree.Entry, error) {
	if p, err := n.sc.Get(name); err == nil {
		return tree.Entry{Path: p}, nil
	}
	return n.Folder.Get(name)
}

// AddShortcut registers an alias for an arbitrary path.
func (n *Navigator) AddShortcut(name, path string) {
	n.sc.Add(name, path)
}

// SetShortcut aliases the root directory itself.
func (n *Navigator) SetShortcut(name string) {
	n.Folder.SetShortcut(n.sc, name)
}

// SetFileShortcut aliases a file entry of the root.
func (n *Navigator) SetFileShortcut(name, file string) error {
	return n.Folder.SetFileShortcut(n.sc, name, file)
}

// Reload rescans the entire tree from disk, dropping cached state.
func (n *Navigator) Reload() error {
	n.Invalidate()
	return n.scanner.Scan(n.Folder)
}
