// Package runner provides multi-file edit orchestration.
package runner

import "github.com/yaklabco/surgedit/pkg/config"

// Options controls multi-file edit behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts discovery to files with these extensions
	// (lowercase, with leading dot). Empty means all regular files.
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI flags.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// OldPattern is the exact text to find in each file.
	OldPattern string

	// NewPattern is the replacement text.
	NewPattern string

	// CreateBackup snapshots each file before writing.
	CreateBackup bool

	// FormatAfterEdit runs the extension-matched formatter after each edit.
	FormatAfterEdit bool

	// DryRun previews changes without writing any file.
	DryRun bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
