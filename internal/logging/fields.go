// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Request fields.
	FieldPatternLen     = "pattern_len"
	FieldReplacementLen = "replacement_len"
	FieldExpected       = "expected"
	FieldDryRun         = "dry_run"
	FieldJobs           = "jobs"
	FieldFormat         = "format"

	// Outcome fields.
	FieldReplacements = "replacements"
	FieldBackupPath   = "backup_path"
	FieldFormatted    = "formatted"
	FieldSkipReason   = "skip_reason"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
