package cli

import (
	"errors"

	"github.com/yaklabco/surgedit/internal/configloader"
	"github.com/yaklabco/surgedit/pkg/editor"
	"github.com/yaklabco/surgedit/pkg/guard"
)

// ErrEditsFailed signals a nonzero exit after results have already been
// reported; main must not log it again.
var ErrEditsFailed = errors.New("edits failed")

// ErrInvalidUsage marks flag and argument parse errors so they exit with
// the usage code instead of the internal-error code.
var ErrInvalidUsage = errors.New("invalid usage")

// Exit codes for surgedit.
const (
	// ExitSuccess indicates every requested edit was applied.
	ExitSuccess = 0

	// ExitRejected indicates one or more edits were rejected before
	// writing (no match, count mismatch, empty pattern, denied path).
	ExitRejected = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error from command execution to a process exit
// code. A nil error is success.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case editor.IsValidationError(err), errors.Is(err, guard.ErrAccessDenied):
		return ExitRejected
	case errors.Is(err, editor.ErrReadFailure), errors.Is(err, editor.ErrWriteFailure):
		return ExitIOError
	case errors.Is(err, ErrEditsFailed):
		return ExitRejected
	default:
		return ExitInternalError
	}
}
