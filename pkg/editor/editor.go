// Package editor orchestrates surgical text replacement on a single file:
// read, validate match counts, back up, replace, optionally format, write
// atomically, and report a character diff of the change.
package editor

import (
	"context"
	"fmt"

	"github.com/yaklabco/surgedit/pkg/diff"
	"github.com/yaklabco/surgedit/pkg/format"
	"github.com/yaklabco/surgedit/pkg/fsutil"
	"github.com/yaklabco/surgedit/pkg/guard"
	"github.com/yaklabco/surgedit/pkg/match"
)

// Request describes a single edit: replace every occurrence of OldPattern
// in the file at Path with NewPattern. OldPattern is matched literally;
// it is never interpreted as a regular expression.
type Request struct {
	// Path is the file to edit.
	Path string

	// OldPattern is the exact text to find. Must be non-empty.
	OldPattern string

	// NewPattern is the replacement text. May be empty (deletion).
	NewPattern string

	// ExpectedReplacements is the number of occurrences the caller expects.
	// The edit is rejected if the actual count differs. Zero means one.
	ExpectedReplacements int

	// ReplaceAll accepts any occurrence count instead of enforcing
	// ExpectedReplacements. Zero occurrences is still a rejection.
	ReplaceAll bool

	// CreateBackup snapshots the file to a timestamped sibling before writing.
	CreateBackup bool

	// FormatAfterEdit runs the extension-matched formatter on the result.
	FormatAfterEdit bool

	// DryRun previews the change without touching the file.
	DryRun bool
}

// NewRequest returns a Request with the defaults a bare edit uses:
// one expected replacement, backup enabled, no formatting.
func NewRequest(path, oldPattern, newPattern string) Request {
	return Request{
		Path:                 path,
		OldPattern:           oldPattern,
		NewPattern:           newPattern,
		ExpectedReplacements: 1,
		CreateBackup:         true,
	}
}

// Outcome reports the result of a completed edit. Failures that reject the
// edit are returned as errors from Apply; Outcome only describes edits that
// ran to completion (or a dry-run preview).
type Outcome struct {
	// Path is the file that was edited.
	Path string `json:"path"`

	// ReplacementCount is the number of occurrences replaced.
	ReplacementCount int `json:"replacement_count"`

	// BackupPath is where the pre-edit content was saved, or empty if no
	// backup was requested or backup creation failed.
	BackupPath string `json:"backup_path,omitempty"`

	// BackupErr records a failed backup attempt. Non-fatal; the edit
	// proceeded without a backup.
	BackupErr error `json:"-"`

	// Formatted is true if the post-edit formatter ran and succeeded.
	Formatted bool `json:"formatted"`

	// FormatErr records a failed format attempt. Non-fatal; the unformatted
	// content was written instead.
	FormatErr error `json:"-"`

	// Diff is the character-level diff between the old and new pattern.
	Diff diff.CharDiff `json:"diff"`

	// Written is true if the file was written to disk. False in dry-run mode
	// and when the edit was skipped.
	Written bool `json:"written"`

	// Preview is the unified diff of the whole file.
	Preview *diff.Unified `json:"preview,omitempty"`

	// Skipped is true if the file changed on disk between read and write.
	Skipped bool `json:"skipped,omitempty"`

	// SkipReason explains why the edit was skipped.
	SkipReason string `json:"skip_reason,omitempty"`
}

// Editor applies edit requests. A nil guard permits all paths; a nil
// format registry falls back to the built-in formatters.
type Editor struct {
	guard   *guard.Guard
	formats *format.Registry

	// backup is swappable so tests can exercise the degraded
	// proceed-without-backup path.
	backup func(ctx context.Context, path string) (*fsutil.BackupRecord, error)
}

// New creates an Editor with the given path guard and formatter registry.
func New(g *guard.Guard, reg *format.Registry) *Editor {
	if reg == nil {
		reg = format.DefaultRegistry()
	}
	return &Editor{guard: g, formats: reg, backup: fsutil.CreateBackup}
}

// Apply runs the full edit sequence for a single request:
//
//  1. Validate the request and check the path against the guard.
//  2. Read and hash the file.
//  3. Count occurrences of OldPattern; reject on zero (with a similarity
//     suggestion) or on a count that differs from ExpectedReplacements.
//  4. Create a backup if requested (failure is non-fatal).
//  5. Replace occurrences in memory.
//  6. Format the result if requested (failure is non-fatal).
//  7. Check for concurrent modification, then write atomically.
//  8. Compute the character diff between the two patterns and a unified
//     diff preview of the whole file.
//
// In dry-run mode steps 4 and 7 are skipped.
func (e *Editor) Apply(ctx context.Context, req Request) (*Outcome, error) {
	if req.OldPattern == "" {
		return nil, fmt.Errorf("%w: search pattern is empty", ErrInvalidPattern)
	}
	expected := req.ExpectedReplacements
	if expected <= 0 {
		expected = 1
	}

	if e.guard != nil {
		if err := e.guard.Check(req.Path); err != nil {
			return nil, err
		}
	}

	content, snap, err := fsutil.ReadFile(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	buffer := string(content)

	count, err := match.Count(buffer, req.OldPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	if count == 0 {
		return nil, &NoMatchError{
			Path:       req.Path,
			Pattern:    req.OldPattern,
			Suggestion: match.FindSimilar(buffer, req.OldPattern),
		}
	}
	if !req.ReplaceAll && count != expected {
		return nil, &CountMismatchError{
			Path:     req.Path,
			Expected: expected,
			Actual:   count,
		}
	}

	outcome := &Outcome{
		Path:             req.Path,
		ReplacementCount: count,
		Diff:             diff.DiffChars(req.OldPattern, req.NewPattern),
	}

	if req.DryRun {
		replaced, _ := match.Replace(buffer, req.OldPattern, req.NewPattern)
		outcome.Preview = diff.GenerateUnified(req.Path, buffer, replaced)
		return outcome, nil
	}

	if req.CreateBackup {
		rec, backupErr := e.backup(ctx, req.Path)
		if backupErr != nil {
			outcome.BackupErr = backupErr
		} else {
			outcome.BackupPath = rec.BackupPath
		}
	}

	replaced, err := match.Replace(buffer, req.OldPattern, req.NewPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	final := []byte(replaced)

	if req.FormatAfterEdit {
		formatted, ok, formatErr := e.formats.Format(ctx, req.Path, final)
		if formatErr != nil {
			outcome.FormatErr = formatErr
		} else if ok {
			final = formatted
			outcome.Formatted = true
		}
	}

	outcome.Preview = diff.GenerateUnified(req.Path, buffer, string(final))

	// Refuse to clobber changes made by someone else between read and write.
	changed, err := fsutil.Modified(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	if changed {
		outcome.Skipped = true
		outcome.SkipReason = "file modified during processing"
		return outcome, nil
	}

	if err := fsutil.WriteAtomic(ctx, req.Path, final, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	outcome.Written = true

	return outcome, nil
}
