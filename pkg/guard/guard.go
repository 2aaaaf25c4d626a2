// Package guard implements the path-validation gate that approves every
// path before it is read, written, or backed up.
//
// The allow-list is an explicit value handed to the gate at construction
// time, never ambient state, so a synthetic allow-list makes the gate
// trivially testable.
package guard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrAccessDenied is returned for paths outside the allowed directories.
var ErrAccessDenied = errors.New("access denied")

// Guard approves file paths against a fixed set of allowed directories.
// A path is allowed when its cleaned absolute form is inside (or equal to)
// one of the allowed roots. An empty allow-list permits everything.
type Guard struct {
	roots []string
}

// New builds a Guard from allowed directory roots. Relative roots are
// resolved against the current working directory once, at construction.
func New(allowedDirs []string) (*Guard, error) {
	roots := make([]string, 0, len(allowedDirs))
	for _, dir := range allowedDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve allowed dir %q: %w", dir, err)
		}
		roots = append(roots, filepath.Clean(abs))
	}
	return &Guard{roots: roots}, nil
}

// Check returns nil if path is allowed, or an ErrAccessDenied-wrapping
// error naming the rejected path. The check is lexical: the path is
// resolved to its cleaned absolute form, so ".." segments cannot escape
// a root, but symlinks inside an allowed root are not chased.
func (g *Guard) Check(path string) error {
	if len(g.roots) == 0 {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", path, err)
	}
	abs = filepath.Clean(abs)

	for _, root := range g.roots {
		if abs == root {
			return nil
		}
		// The filesystem root already ends in a separator.
		prefix := root
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(abs, prefix) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s is outside the allowed directories", ErrAccessDenied, path)
}

// Roots returns a copy of the allowed directory roots.
func (g *Guard) Roots() []string {
	out := make([]string, len(g.roots))
	copy(out, g.roots)
	return out
}
