package tree

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/philip928lin/pathnav/config"
	"github.com/philip928lin/pathnav/errs"
	"github.com/philip928lin/pathnav/internal/util"
	"github.com/rs/zerolog"
)

// Scanner walks directories on disk and populates Folder subtrees. One
// Scanner is shared by every node of a tree; per-node lazy scans go through
// it as well.
type Scanner struct {
	fs           Filesystem
	recursive    bool
	include      *regexp.Regexp // keep only matching entry names, nil keeps all
	exclude      *regexp.Regexp // skip matching entry names, nil skips none
	ignoreHidden bool
}

// NewScanner compiles the filter patterns from cfg. An empty pattern means
// no filtering for that direction.
func NewScanner(fs Filesystem, cfg *config.Config) (*Scanner, error) {
	s := &Scanner{
		fs:           fs,
		recursive:    cfg.Recursive,
		ignoreHidden: cfg.IgnoreHidden,
	}
	var err error
	if cfg.IncludePattern != "" {
		if s.include, err = regexp.Compile(cfg.IncludePattern); err != nil {
			return nil, fmt.Errorf("include pattern: %w", err)
		}
	}
	if cfg.ExcludePattern != "" {
		if s.exclude, err = regexp.Compile(cfg.ExcludePattern); err != nil {
			return nil, fmt.Errorf("exclude pattern: %w", err)
		}
	}
	return s, nil
}

// Scan lists the directory at f's path and rebuilds its entry maps,
// re-adopting existing child nodes for directories still on disk so their
// cached subtrees survive. Descends into subdirectories when the scanner is
// recursive.
//
// A subdirectory that disappears or turns unreadable mid-walk is logged and
// skipped; only a failure to list f itself is returned.
func (s *Scanner) Scan(f *Folder) error {
	logger := util.GetLogger("Scanner").With().Str("scan_id", uuid.NewString()).Logger()
	return s.scan(f, logger)
}

func (s *Scanner) scan(f *Folder, logger zerolog.Logger) error {
	entries, err := s.fs.ListDir(f.path)
	if err != nil {
		if !s.fs.PathExists(f.path) {
			return &errs.PathNotFoundError{Path: f.path}
		}
		return fmt.Errorf("list %s: %w", f.path, err)
	}
	logger.Trace().Str("path", f.path).Int("entries", len(entries)).Msg("Scanning directory")

	seenDirs := make(map[string]struct{})
	seenFiles := make(map[string]struct{})

	for _, e := range entries {
		if s.skips(e.Name) {
			continue
		}
		attr, err := f.codec.Encode(e.Name)
		if err != nil {
			// colliding entry: keep walking, first registration wins
			logger.Warn().Err(err).Str("path", f.path).Msg("Skipping colliding entry")
			continue
		}

		if e.IsDir {
			seenDirs[attr] = struct{}{}
			child, ok := f.children.Load(attr)
			if !ok {
				child = f.newChild(e.Name)
				f.children.Store(attr, child)
			}
			if s.recursive {
				if err := s.scan(child, logger); err != nil {
					// branch vanished mid-walk; not fatal
					logger.Warn().Err(err).Str("path", child.path).Msg("Skipping unreadable subdirectory")
				}
			}
		} else {
			seenFiles[attr] = struct{}{}
			f.files.Store(attr, filepath.Join(f.path, e.Name))
		}
	}

	s.dropStale(f, seenDirs, seenFiles)
	f.scanned = true
	return nil
}

// dropStale removes entries the walk did not see, so listings reflect disk
// state at scan time.
func (s *Scanner) dropStale(f *Folder, seenDirs, seenFiles map[string]struct{}) {
	f.children.Range(func(attr string, child *Folder) bool {
		if _, ok := seenDirs[attr]; !ok {
			f.children.Delete(attr)
			child.parent = nil
			f.codec.Forget(f.rawName(attr))
		}
		return true
	})
	f.files.Range(func(attr string, _ string) bool {
		if _, ok := seenFiles[attr]; !ok {
			f.files.Delete(attr)
			f.codec.Forget(f.rawName(attr))
		}
		return true
	})
}

// skips applies the hidden-entry filter, then exclude, then include.
func (s *Scanner) skips(name string) bool {
	if s.ignoreHidden && strings.HasPrefix(name, ".") {
		return true
	}
	if s.exclude != nil && s.exclude.MatchString(name) {
		return true
	}
	if s.include != nil && !s.include.MatchString(name) {
		return true
	}
	return false
}
