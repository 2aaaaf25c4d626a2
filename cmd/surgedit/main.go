// Package main is the entry point for the surgedit CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/surgedit/internal/cli"
	"github.com/yaklabco/surgedit/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrEditsFailed means the rejection was already rendered; don't
		// log it a second time.
		if !errors.Is(err, cli.ErrEditsFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
