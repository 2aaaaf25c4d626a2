package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/surgedit/pkg/editor"
)

// Runner applies one pattern replacement across many files using a
// worker pool.
type Runner struct {
	// Editor handles per-file editing with safety guarantees.
	Editor *editor.Editor
}

// New creates a new Runner with the given editor.
func New(ed *editor.Editor) *Runner {
	return &Runner{Editor: ed}
}

// Run discovers files under opts.Paths and edits them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// Files where the pattern does not occur are recorded but not treated as
// failures. Occurrence counts are not enforced per file; every occurrence
// is replaced.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results. Workers may complete out of order, so index by path
	// and rebuild in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))

	for fo := range outCh {
		outcomes[fo.Path] = fo
	}

	for _, path := range files {
		if fo, ok := outcomes[path]; ok {
			result.accumulate(fo)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker edits files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		req := editor.Request{
			Path:            path,
			OldPattern:      opts.OldPattern,
			NewPattern:      opts.NewPattern,
			ReplaceAll:      true,
			CreateBackup:    opts.CreateBackup,
			FormatAfterEdit: opts.FormatAfterEdit,
			DryRun:          opts.DryRun,
		}

		fo := FileOutcome{Path: path}

		outcome, err := r.Editor.Apply(ctx, req)
		if err != nil {
			fo.Error = err
		} else {
			fo.Outcome = outcome
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- fo:
		}
	}
}
