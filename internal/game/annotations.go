// Package game provides the chess-game document model: a tree of moves
// with alternative variations, headers, and annotations, addressable by
// derived string IDs and editable while preserving consistent numbering.
package game

import (
	"sort"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Annotations is the annotation capability shared by nodes and variations:
// a set of NAGs, a tag map, and an optional comment with a "long" flag.
// It is embedded by Node and Variation.
type Annotations struct {
	nags        map[int]bool
	tags        map[string]string
	comment     string
	longComment bool
}

// validTagKey reports whether key is a non-empty alphanumeric/underscore
// string.
func validTagKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// NAGs returns the numeric annotation glyphs in ascending order.
func (a *Annotations) NAGs() []int {
	if len(a.nags) == 0 {
		return nil
	}
	nags := make([]int, 0, len(a.nags))
	for nag := range a.nags {
		nags = append(nags, nag)
	}
	sort.Ints(nags)
	return nags
}

// AddNAG adds a numeric annotation glyph. Negative values are rejected.
func (a *Annotations) AddNAG(nag int) error {
	if nag < 0 {
		return errors.Wrapf(errors.ErrIllegalArgument, "negative NAG %d", nag)
	}
	if a.nags == nil {
		a.nags = make(map[int]bool)
	}
	a.nags[nag] = true
	return nil
}

// RemoveNAG removes a numeric annotation glyph if present.
func (a *Annotations) RemoveNAG(nag int) {
	delete(a.nags, nag)
}

// HasNAG returns true if the glyph is present.
func (a *Annotations) HasNAG(nag int) bool {
	return a.nags[nag]
}

// ClearNAGs removes all glyphs.
func (a *Annotations) ClearNAGs() {
	a.nags = nil
}

// Tag returns the value for key, or the empty string.
func (a *Annotations) Tag(key string) string {
	return a.tags[key]
}

// HasTag returns true if key is set.
func (a *Annotations) HasTag(key string) bool {
	_, ok := a.tags[key]
	return ok
}

// SetTag sets a tag key/value pair. Keys must be non-empty and consist of
// letters, digits, and underscores.
func (a *Annotations) SetTag(key, value string) error {
	if !validTagKey(key) {
		return errors.Wrapf(errors.ErrIllegalArgument, "malformed tag key %q", key)
	}
	if a.tags == nil {
		a.tags = make(map[string]string)
	}
	a.tags[key] = value
	return nil
}

// RemoveTag removes a tag if present.
func (a *Annotations) RemoveTag(key string) {
	delete(a.tags, key)
}

// TagKeys returns the tag keys in ascending order.
func (a *Annotations) TagKeys() []string {
	if len(a.tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(a.tags))
	for key := range a.tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Comment returns the comment text, which may be empty.
func (a *Annotations) Comment() string {
	return a.comment
}

// SetComment sets the comment text and whether it should be rendered as a
// long comment (set apart by blank lines).
func (a *Annotations) SetComment(text string, long bool) {
	a.comment = text
	a.longComment = long
}

// IsLongComment returns the entity's own long-comment flag. Whether the
// comment actually renders long also depends on the enclosing variations
// being long themselves.
func (a *Annotations) IsLongComment() bool {
	return a.longComment
}

// hasAnnotations reports whether anything would be emitted for this entity.
func (a *Annotations) hasAnnotations() bool {
	return len(a.nags) > 0 || len(a.tags) > 0 || a.comment != ""
}

// copyFrom replaces a's contents with a deep copy of other's.
func (a *Annotations) copyFrom(other *Annotations) {
	a.nags = nil
	a.tags = nil
	for nag := range other.nags {
		if a.nags == nil {
			a.nags = make(map[int]bool)
		}
		a.nags[nag] = true
	}
	for key, value := range other.tags {
		if a.tags == nil {
			a.tags = make(map[string]string)
		}
		a.tags[key] = value
	}
	a.comment = other.comment
	a.longComment = other.longComment
}
