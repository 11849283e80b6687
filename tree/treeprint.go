package tree

import (
	"fmt"
	"io"
)

// Tree rendering limits; see [TreeOpts].
const (
	DefaultTreeMaxLines    = 1000
	DefaultTreeMaxPerLevel = 100
)

// TreeOpts controls [Folder.Tree] rendering.
type TreeOpts struct {
	MaxDepth    int  // depth limit; <= 0 renders all levels
	DirsOnly    bool // skip file entries
	MaxLines    int  // total line cap; <= 0 uses DefaultTreeMaxLines
	MaxPerLevel int  // entries shown per directory; <= 0 uses DefaultTreeMaxPerLevel
}

type treePrinter struct {
	w           io.Writer
	opts        TreeOpts
	lines       int
	dirs, files int
	truncated   bool
}

// Tree writes a box-drawing rendering of the subtree rooted at f to w,
// scanning lazily as it descends. Entries are sorted by raw name.
func (f *Folder) Tree(w io.Writer, opts TreeOpts) error {
	if opts.MaxLines <= 0 {
		opts.MaxLines = DefaultTreeMaxLines
	}
	if opts.MaxPerLevel <= 0 {
		opts.MaxPerLevel = DefaultTreeMaxPerLevel
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = -1 // unlimited; the walk stops only at 0
	}
	p := &treePrinter{w: w, opts: opts}

	fmt.Fprintln(w, f.Name())
	if err := p.walk(f, "", opts.MaxDepth); err != nil {
		return err
	}
	if p.truncated {
		fmt.Fprintf(w, "... line limit %d reached\n", opts.MaxLines)
	}
	if p.files > 0 {
		fmt.Fprintf(w, "\n%d directories, %d files\n", p.dirs, p.files)
	} else {
		fmt.Fprintf(w, "\n%d directories\n", p.dirs)
	}
	return nil
}

func (p *treePrinter) walk(f *Folder, prefix string, depth int) error {
	if depth == 0 || p.truncated {
		return nil
	}
	dirs, err := f.List(KindDir)
	if err != nil {
		return err
	}
	var files []string
	if !p.opts.DirsOnly {
		if files, err = f.List(KindFile); err != nil {
			return err
		}
	}

	for i, raw := range dirs {
		last := i == len(dirs)-1 && len(files) == 0
		if i >= p.opts.MaxPerLevel {
			p.line(prefix+pointer(last), fmt.Sprintf("...limit reached (total: %d subfolders)", len(dirs)))
			break
		}
		p.line(prefix+pointer(last), raw)
		p.dirs++
		child, err := f.Child(raw)
		if err != nil {
			// entry vanished between listing and descent
			continue
		}
		ext := "│   "
		if last {
			ext = "    "
		}
		if err := p.walk(child, prefix+ext, depth-1); err != nil {
			return err
		}
	}
	for i, raw := range files {
		last := i == len(files)-1
		if i >= p.opts.MaxPerLevel {
			p.line(prefix+pointer(last), fmt.Sprintf("...limit reached (total: %d files)", len(files)))
			break
		}
		p.line(prefix+pointer(last), raw)
		p.files++
	}
	return nil
}

func (p *treePrinter) line(head, text string) {
	if p.lines >= p.opts.MaxLines {
		p.truncated = true
		return
	}
	fmt.Fprintln(p.w, head+text)
	p.lines++
}

func pointer(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}
