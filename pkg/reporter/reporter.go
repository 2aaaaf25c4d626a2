// Package reporter formats edit results for terminal, JSON, and diff output.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/surgedit/pkg/runner"
)

// Reporter formats and writes edit results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files changed and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}
