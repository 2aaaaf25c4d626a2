package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/surgedit/internal/cli"
	"github.com/yaklabco/surgedit/internal/configloader"
	"github.com/yaklabco/surgedit/pkg/editor"
	"github.com/yaklabco/surgedit/pkg/guard"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "surgedit" {
		t.Errorf("expected Use to be 'surgedit', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"edit", "preview", "restore", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: cli.ExitSuccess,
		},
		{
			name: "no match",
			err:  &editor.NoMatchError{Path: "a.txt", Pattern: "foo"},
			want: cli.ExitRejected,
		},
		{
			name: "count mismatch",
			err:  &editor.CountMismatchError{Path: "a.txt", Expected: 1, Actual: 3},
			want: cli.ExitRejected,
		},
		{
			name: "empty pattern",
			err:  fmt.Errorf("validate: %w", editor.ErrInvalidPattern),
			want: cli.ExitRejected,
		},
		{
			name: "access denied",
			err:  fmt.Errorf("%w: /etc/passwd", guard.ErrAccessDenied),
			want: cli.ExitRejected,
		},
		{
			name: "read failure",
			err:  fmt.Errorf("%w: no such file", editor.ErrReadFailure),
			want: cli.ExitIOError,
		},
		{
			name: "write failure",
			err:  fmt.Errorf("%w: disk full", editor.ErrWriteFailure),
			want: cli.ExitIOError,
		},
		{
			name: "config validation",
			err:  &configloader.ValidationError{Field: "jobs", Message: "must be >= 0"},
			want: cli.ExitConfigError,
		},
		{
			name: "invalid usage",
			err:  fmt.Errorf("%w: unknown flag: --frobnicate", cli.ErrInvalidUsage),
			want: cli.ExitInvalidUsage,
		},
		{
			name: "edits failed sentinel",
			err:  cli.ErrEditsFailed,
			want: cli.ExitRejected,
		},
		{
			name: "wrapped rejection keeps its category",
			err:  fmt.Errorf("%w: %w", cli.ErrEditsFailed, &editor.NoMatchError{Path: "a", Pattern: "b"}),
			want: cli.ExitRejected,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: cli.ExitInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cli.ExitCodeForError(tt.err)
			if got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
