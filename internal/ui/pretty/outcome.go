package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/surgedit/pkg/diff"
	"github.com/yaklabco/surgedit/pkg/editor"
	"github.com/yaklabco/surgedit/pkg/match"
)

// charDiffContext limits how much unchanged prefix/suffix is shown around
// a character diff.
const charDiffContext = 30

// FormatCharDiff renders a character diff as
// prefix{-removed-}{+added+}suffix with long context elided.
func (s *Styles) FormatCharDiff(d diff.CharDiff) string {
	var builder strings.Builder

	prefix := d.CommonPrefix
	if len(prefix) > charDiffContext {
		builder.WriteString(s.Dim.Render("..."))
		prefix = prefix[len(prefix)-charDiffContext:]
	}
	builder.WriteString(s.SourceLine.Render(prefix))

	if d.Removed != "" {
		builder.WriteString(s.DiffRemove.Render("{-" + d.Removed + "-}"))
	}
	if d.Added != "" {
		builder.WriteString(s.DiffAdd.Render("{+" + d.Added + "+}"))
	}

	suffix := d.CommonSuffix
	elide := len(suffix) > charDiffContext
	if elide {
		suffix = suffix[:charDiffContext]
	}
	builder.WriteString(s.SourceLine.Render(suffix))
	if elide {
		builder.WriteString(s.Dim.Render("..."))
	}

	return builder.String()
}

// FormatSuggestion renders a near-match diagnostic: where the closest
// window starts, how similar it is, and what differs from the pattern.
func (s *Styles) FormatSuggestion(sim *match.Similarity) string {
	if sim == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("    " + s.Dim.Render("Closest match:") + " " +
		s.Suggestion.Render(fmt.Sprintf("offset %d, %.0f%% similar", sim.WindowStart, sim.Score*100)) + "\n")
	builder.WriteString("    " + s.FormatCharDiff(sim.Diff) + "\n")
	return builder.String()
}

// FormatOutcome formats a completed edit for terminal output.
func (s *Styles) FormatOutcome(o *editor.Outcome) string {
	var builder strings.Builder

	occurrence := "occurrences"
	if o.ReplacementCount == 1 {
		occurrence = "occurrence"
	}

	status := s.Success.Render("edited")
	switch {
	case o.Skipped:
		status = s.Warning.Render("skipped")
	case !o.Written:
		status = s.Info.Render("preview")
	}

	builder.WriteString(fmt.Sprintf("%s  %s  %s\n",
		s.FilePath.Render(o.Path),
		status,
		s.Message.Render(fmt.Sprintf("%d %s replaced", o.ReplacementCount, occurrence)),
	))

	builder.WriteString("    " + s.FormatCharDiff(o.Diff) + "\n")

	if o.Skipped {
		builder.WriteString("    " + s.Warning.Render(o.SkipReason) + "\n")
	}
	if o.BackupPath != "" {
		builder.WriteString("    " + s.Dim.Render("backup: "+o.BackupPath) + "\n")
	}
	if o.BackupErr != nil {
		builder.WriteString("    " + s.Warning.Render(fmt.Sprintf("backup failed: %v", o.BackupErr)) + "\n")
	}
	if o.Formatted {
		builder.WriteString("    " + s.Dim.Render("formatted") + "\n")
	}
	if o.FormatErr != nil {
		builder.WriteString("    " + s.Warning.Render(fmt.Sprintf("format failed: %v", o.FormatErr)) + "\n")
	}

	return builder.String()
}

// FormatFileError formats a per-file failure, with a near-match suggestion
// when the failure is a missing pattern.
func (s *Styles) FormatFileError(path string, err error) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s  %s\n",
		s.FilePath.Render(path),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	))
	var noMatch *editor.NoMatchError
	if errors.As(err, &noMatch) && noMatch.Suggestion != nil {
		builder.WriteString(s.FormatSuggestion(noMatch.Suggestion))
	}
	return builder.String()
}
