package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/surgedit/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 replacements in 2 files (2 backups, 1 skipped)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.TotalReplacements == 0 {
		return s.Dim.Render(fmt.Sprintf("No matches (%d files checked)", stats.FilesDiscovered)) + "\n"
	}

	replacementWord := "replacements"
	if stats.TotalReplacements == 1 {
		replacementWord = "replacement"
	}
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := s.Success.Render(fmt.Sprintf("%d %s in %d %s",
		stats.TotalReplacements, replacementWord, stats.FilesProcessed, fileWord))

	var notes []string
	if stats.BackupsCreated > 0 {
		backupWord := "backups"
		if stats.BackupsCreated == 1 {
			backupWord = "backup"
		}
		notes = append(notes, fmt.Sprintf("%d %s", stats.BackupsCreated, backupWord))
	}
	if stats.FilesFormatted > 0 {
		notes = append(notes, fmt.Sprintf("%d formatted", stats.FilesFormatted))
	}
	if stats.FilesSkipped > 0 {
		notes = append(notes, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		notes = append(notes, s.Error.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	if len(notes) > 0 {
		msg += s.Dim.Render(" (") + strings.Join(notes, s.Dim.Render(", ")) + s.Dim.Render(")")
	}

	return msg + "\n"
}
