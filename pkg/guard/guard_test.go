package guard_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/yaklabco/surgedit/pkg/guard"
)

func TestGuardCheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	other := t.TempDir()

	g, err := guard.New([]string{root})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		allowed bool
	}{
		{name: "file inside root", path: filepath.Join(root, "file.txt"), allowed: true},
		{name: "nested file inside root", path: filepath.Join(root, "a", "b", "file.txt"), allowed: true},
		{name: "root itself", path: root, allowed: true},
		{name: "outside root", path: filepath.Join(other, "file.txt"), allowed: false},
		{name: "dotdot escape is collapsed", path: filepath.Join(root, "..", "escape.txt"), allowed: false},
		{name: "sibling with root as name prefix", path: root + "-evil/file.txt", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := g.Check(tt.path)
			if tt.allowed && err != nil {
				t.Errorf("Check(%q) = %v, want nil", tt.path, err)
			}
			if !tt.allowed && !errors.Is(err, guard.ErrAccessDenied) {
				t.Errorf("Check(%q) = %v, want ErrAccessDenied", tt.path, err)
			}
		})
	}
}

func TestGuardFilesystemRootAllowsEverythingBeneath(t *testing.T) {
	t.Parallel()

	root := string(filepath.Separator)
	g, err := guard.New([]string{root})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.Check(root); err != nil {
		t.Errorf("Check(%q) = %v, want nil", root, err)
	}
	path := filepath.Join(root, "tmp", "file.txt")
	if err := g.Check(path); err != nil {
		t.Errorf("Check(%q) = %v, want nil", path, err)
	}
}

func TestGuardEmptyAllowListPermitsEverything(t *testing.T) {
	t.Parallel()

	g, err := guard.New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.Check("/anywhere/at/all"); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestGuardRoots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g, err := guard.New([]string{dir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	roots := g.Roots()
	if len(roots) != 1 || roots[0] != dir {
		t.Errorf("Roots() = %v, want [%s]", roots, dir)
	}

	// Mutating the copy must not affect the guard.
	roots[0] = "/elsewhere"
	if err := g.Check(filepath.Join(dir, "f")); err != nil {
		t.Errorf("Check() after mutating Roots() copy = %v, want nil", err)
	}
}
