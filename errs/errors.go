// Package errs defines the error kinds shared by the tree, shortcut, and
// navigator packages. All are matched with errors.As.
package errs

import "fmt"

// NotFoundError reports a name that could not be resolved on a node or in
// the shortcut registry.
type NotFoundError struct {
	Name string
	Path string // directory of the owning node; empty for registry lookups
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%q not found", e.Name)
	}
	return fmt.Sprintf("%q not found in %q", e.Name, e.Path)
}

// NameCollisionError reports two distinct raw names in the same directory
// encoding to the same attribute name.
type NameCollisionError struct {
	Raw      string // name being registered
	Existing string // raw name already holding the attribute name
	Attr     string
	Path     string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("cannot register %q in %q: attribute name %q already maps to %q",
		e.Raw, e.Path, e.Attr, e.Existing)
}

// InvalidNameError reports a mkdir target that collides with an existing
// file entry.
type InvalidNameError struct {
	Name string
	Path string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("cannot create directory %q in %q: a file entry with that name exists", e.Name, e.Path)
}

// PathNotFoundError reports an on-disk target that vanished between scan
// and use.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %q no longer exists on disk", e.Path)
}

// PersistenceError reports an unreadable or malformed shortcut file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("shortcut file %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
