package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yaklabco/surgedit/pkg/editor"
	"github.com/yaklabco/surgedit/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's result.
type JSONFileResult struct {
	Path             string          `json:"path"`
	ReplacementCount int             `json:"replacementCount"`
	BackupPath       string          `json:"backupPath,omitempty"`
	Formatted        bool            `json:"formatted,omitempty"`
	Written          bool            `json:"written"`
	Skipped          bool            `json:"skipped,omitempty"`
	SkipReason       string          `json:"skipReason,omitempty"`
	Diff             *JSONCharDiff   `json:"diff,omitempty"`
	Suggestion       *JSONSuggestion `json:"suggestion,omitempty"`
	NoMatch          bool            `json:"noMatch,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// JSONCharDiff is the character diff between the old and new pattern.
type JSONCharDiff struct {
	CommonPrefix string `json:"commonPrefix"`
	Removed      string `json:"removed"`
	Added        string `json:"added"`
	CommonSuffix string `json:"commonSuffix"`
}

// JSONSuggestion is the closest near-match found for a missing pattern.
type JSONSuggestion struct {
	WindowStart int     `json:"windowStart"`
	Score       float64 `json:"score"`
	WindowDiff  string  `json:"windowDiff"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesModified     int `json:"filesModified"`
	FilesWithoutMatch int `json:"filesWithoutMatch"`
	FilesSkipped      int `json:"filesSkipped"`
	FilesErrored      int `json:"filesErrored"`
	TotalReplacements int `json:"totalReplacements"`
	BackupsCreated    int `json:"backupsCreated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesModified, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{Path: file.Path}

		if file.Error != nil {
			if file.NoMatch() {
				fileResult.NoMatch = true
			} else {
				fileResult.Error = file.Error.Error()
			}
			fileResult.Suggestion = suggestionFromError(file.Error)
		}

		if o := file.Outcome; o != nil {
			fileResult.ReplacementCount = o.ReplacementCount
			fileResult.BackupPath = o.BackupPath
			fileResult.Formatted = o.Formatted
			fileResult.Written = o.Written
			fileResult.Skipped = o.Skipped
			fileResult.SkipReason = o.SkipReason
			fileResult.Diff = &JSONCharDiff{
				CommonPrefix: o.Diff.CommonPrefix,
				Removed:      o.Diff.Removed,
				Added:        o.Diff.Added,
				CommonSuffix: o.Diff.CommonSuffix,
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesChecked:      result.Stats.FilesDiscovered,
		FilesModified:     result.Stats.FilesModified,
		FilesWithoutMatch: result.Stats.FilesWithoutMatch,
		FilesSkipped:      result.Stats.FilesSkipped,
		FilesErrored:      result.Stats.FilesErrored,
		TotalReplacements: result.Stats.TotalReplacements,
		BackupsCreated:    result.Stats.BackupsCreated,
	}

	return output
}

// suggestionFromError extracts the near-match suggestion from a NoMatch
// failure, if present.
func suggestionFromError(err error) *JSONSuggestion {
	var noMatch *editor.NoMatchError
	if !errors.As(err, &noMatch) || noMatch.Suggestion == nil {
		return nil
	}
	s := noMatch.Suggestion
	return &JSONSuggestion{
		WindowStart: s.WindowStart,
		Score:       s.Score,
		WindowDiff:  s.Diff.String(),
	}
}
