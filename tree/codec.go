package tree

import (
	"go/token"
	"regexp"

	"github.com/philip928lin/pathnav/errs"
)

// nonIdentRunes matches anything that cannot appear in an identifier.
var nonIdentRunes = regexp.MustCompile(`\W`)

// EncodeName converts a raw filesystem name into an identifier-safe
// attribute name. Total and deterministic: it never fails and the same raw
// name always yields the same attribute name.
//
// Every rune outside [0-9A-Za-z_] becomes "_", a leading digit gets an
// underscore prefix, and Go keywords get an underscore suffix.
func EncodeName(raw string) string {
	attr := nonIdentRunes.ReplaceAllString(raw, "_")
	if attr == "" || (attr[0] >= '0' && attr[0] <= '9') {
		attr = "_" + attr
	}
	if token.IsKeyword(attr) {
		attr += "_"
	}
	return attr
}

// NameCodec records the raw-name <-> attribute-name mapping for a single
// directory. Collisions are only disallowed within one directory, so every
// Folder owns its own codec.
type NameCodec struct {
	rawToAttr map[string]string
	attrToRaw map[string]string
	path      string // owning directory, for error context
}

func NewNameCodec(path string) *NameCodec {
	return &NameCodec{
		rawToAttr: make(map[string]string),
		attrToRaw: make(map[string]string),
		path:      path,
	}
}

// Encode registers raw and returns its attribute name. Registering the same
// raw name again is a no-op. If a different raw name already holds the
// attribute name, returns *errs.NameCollisionError and records nothing.
func (c *NameCodec) Encode(raw string) (string, error) {
	attr := EncodeName(raw)
	if prev, ok := c.attrToRaw[attr]; ok && prev != raw {
		return "", &errs.NameCollisionError{Raw: raw, Existing: prev, Attr: attr, Path: c.path}
	}
	c.rawToAttr[raw] = attr
	c.attrToRaw[attr] = raw
	return attr, nil
}

// Decode recovers the exact raw name previously registered for attr.
// Returns *errs.NotFoundError if attr was never registered on this codec.
func (c *NameCodec) Decode(attr string) (string, error) {
	if raw, ok := c.attrToRaw[attr]; ok {
		return raw, nil
	}
	return "", &errs.NotFoundError{Name: attr, Path: c.path}
}

// Forget drops the mapping for a raw name, both directions.
func (c *NameCodec) Forget(raw string) {
	if attr, ok := c.rawToAttr[raw]; ok {
		delete(c.rawToAttr, raw)
		delete(c.attrToRaw, attr)
	}
}
