// Package match implements literal occurrence counting and the approximate
// match scan used to diagnose failed searches.
package match

import (
	"errors"
	"strings"
)

// ErrEmptyPattern is returned when the search pattern is empty.
// An empty pattern matches everywhere and nowhere; callers must reject it
// before any I/O happens.
var ErrEmptyPattern = errors.New("search pattern is empty")

// Count returns the number of non-overlapping occurrences of pattern in
// buffer, scanning left to right. Each match consumes its span.
//
// The pattern is always treated as literal text. Characters that carry
// meaning in a regular-expression engine (".", "*", "+", "?", "^", "$",
// braces, brackets, backslash) match only themselves, so code pasted
// verbatim as the pattern counts exactly as written.
func Count(buffer, pattern string) (int, error) {
	if pattern == "" {
		return 0, ErrEmptyPattern
	}
	return strings.Count(buffer, pattern), nil
}

// Replace substitutes every occurrence of pattern in buffer with
// replacement, using the same literal, non-overlapping semantics as Count.
// The occurrences replaced are exactly the occurrences Count reports.
func Replace(buffer, pattern, replacement string) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}
	return strings.ReplaceAll(buffer, pattern, replacement), nil
}
