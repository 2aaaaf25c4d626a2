package editor

import (
	"errors"
	"fmt"

	"github.com/yaklabco/surgedit/pkg/match"
)

// Editor error types for categorization.
var (
	// ErrInvalidPattern indicates an empty search pattern. Rejected before
	// any I/O occurs.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrReadFailure indicates the file could not be read.
	ErrReadFailure = errors.New("read failure")

	// ErrWriteFailure indicates the final content could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// NoMatchError reports that the search pattern was not found in the file.
// Suggestion carries the closest near-match found, if any, so the caller
// can show what the file actually contains.
type NoMatchError struct {
	Path       string
	Pattern    string
	Suggestion *match.Similarity
}

func (e *NoMatchError) Error() string {
	if e.Suggestion != nil {
		return fmt.Sprintf("no match for pattern in %s (similar text at offset %d, %.0f%% similar)",
			e.Path, e.Suggestion.WindowStart, e.Suggestion.Score*100)
	}
	return fmt.Sprintf("no match for pattern in %s", e.Path)
}

// CountMismatchError reports that the pattern occurred a different number
// of times than the request expected. Actual is the true occurrence count.
type CountMismatchError struct {
	Path     string
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("pattern occurs %d times in %s, expected %d",
		e.Actual, e.Path, e.Expected)
}

// IsValidationError reports whether the error is a request-level rejection
// the caller can correct and retry, as opposed to an I/O failure.
func IsValidationError(err error) bool {
	var noMatch *NoMatchError
	var mismatch *CountMismatchError
	return errors.Is(err, ErrInvalidPattern) ||
		errors.As(err, &noMatch) ||
		errors.As(err, &mismatch)
}
