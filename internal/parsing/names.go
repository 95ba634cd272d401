// Package parsing formats dates and turns configured names into safe path segments.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PathSegment turns a creator or playlist name into a single path segment.
//
// Separators and control characters become underscores and leading dots are
// trimmed, so the result can never climb out of its parent directory.
// Returns "" if nothing usable is left.
func PathSegment(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			b.WriteRune('_')
		case unicode.IsControl(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(strings.TrimLeft(b.String(), "."))
}
