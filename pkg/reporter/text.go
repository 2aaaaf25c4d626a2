package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/surgedit/internal/ui/pretty"
	"github.com/yaklabco/surgedit/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files matched."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		switch {
		case file.NoMatch():
			// Pattern absent from this file; only worth a line in verbose
			// single-file mode, which the CLI reports through the error path.
			continue
		case file.Error != nil:
			fmt.Fprint(r.bw, r.styles.FormatFileError(file.Path, file.Error))
		case file.Outcome != nil:
			fmt.Fprint(r.bw, r.styles.FormatOutcome(file.Outcome))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.FilesModified, nil
}
