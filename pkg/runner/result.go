package runner

import (
	"errors"

	"github.com/yaklabco/surgedit/pkg/editor"
)

// FileOutcome wraps an editor outcome with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Outcome describes the completed edit (or dry-run preview).
	// Nil if the file was rejected or errored.
	Outcome *editor.Outcome

	// Error is set if the file could not be edited. A NoMatchError here
	// means the pattern simply does not occur in this file.
	Error error
}

// NoMatch reports whether the file was passed over because the pattern
// does not occur in it.
func (fo FileOutcome) NoMatch() bool {
	var noMatch *editor.NoMatchError
	return errors.As(fo.Error, &noMatch)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files where the pattern was found
	// and the edit ran.
	FilesProcessed int

	// FilesWithoutMatch is the number of files the pattern did not occur in.
	FilesWithoutMatch int

	// FilesSkipped is the number of files skipped due to concurrent
	// modification between read and write.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesModified is the number of files written to disk.
	FilesModified int

	// TotalReplacements is the number of occurrences replaced across all files.
	TotalReplacements int

	// BackupsCreated is the number of backup files created.
	BackupsCreated int

	// FilesFormatted is the number of files reformatted after editing.
	FilesFormatted int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file was modified (or would be, in dry-run).
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.TotalReplacements > 0
}

// ResultForFile wraps a single file outcome in a Result, for callers
// that edit one file directly instead of going through Run.
func ResultForFile(fo FileOutcome) *Result {
	r := &Result{Files: make([]FileOutcome, 0, 1)}
	r.Stats.FilesDiscovered = 1
	r.accumulate(fo)
	return r
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(fo FileOutcome) {
	r.Files = append(r.Files, fo)

	if fo.Error != nil {
		if fo.NoMatch() {
			r.Stats.FilesWithoutMatch++
		} else {
			r.Stats.FilesErrored++
		}
		return
	}

	if fo.Outcome == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.TotalReplacements += fo.Outcome.ReplacementCount

	if fo.Outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if fo.Outcome.Written {
		r.Stats.FilesModified++
	}
	if fo.Outcome.BackupPath != "" {
		r.Stats.BackupsCreated++
	}
	if fo.Outcome.Formatted {
		r.Stats.FilesFormatted++
	}
}
