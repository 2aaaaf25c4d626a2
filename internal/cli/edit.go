package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/surgedit/internal/configloader"
	"github.com/yaklabco/surgedit/internal/logging"
	"github.com/yaklabco/surgedit/internal/ui/pretty"
	"github.com/yaklabco/surgedit/pkg/config"
	"github.com/yaklabco/surgedit/pkg/editor"
	"github.com/yaklabco/surgedit/pkg/guard"
	"github.com/yaklabco/surgedit/pkg/reporter"
	"github.com/yaklabco/surgedit/pkg/runner"
)

type editFlags struct {
	expected   int
	all        bool
	format     string
	extensions []string
	exclude    []string
	allowDirs  []string
}

func newEditCommand() *cobra.Command {
	var cfg config.Config
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <old-text> <new-text> <path> [paths...]",
		Short: "Replace exact text in files",
		Long:  editLongDescription,
		Args:  usageArgs(cobra.MinimumNArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], args[1], args[2:], &cfg, flags)
		},
	}

	addEditFlags(cmd, &cfg, flags)

	return cmd
}

const editLongDescription = `Replace every expected occurrence of an exact text pattern.

The pattern is matched literally, byte for byte. Editing a single file
enforces the expected occurrence count (default 1) and rejects the edit
when the actual count differs. When the pattern does not occur at all,
the closest near match in the file is reported instead.

Editing multiple paths (or a directory) replaces all occurrences in each
file; files without a match are passed over silently.

Examples:
  surgedit edit 'oldFunc' 'newFunc' main.go         # Exactly one occurrence
  surgedit edit 'v1.2.3' 'v1.2.4' README.md --expected 3
  surgedit edit 'foo' 'bar' src/ --ext .go          # Whole tree
  surgedit edit 'foo' 'bar' main.go --dry-run       # Preview only
  surgedit edit 'foo' 'bar' main.go --format json   # Machine-readable`

func runEdit(
	cmd *cobra.Command,
	oldPattern, newPattern string,
	paths []string,
	cfg *config.Config,
	flags *editFlags,
) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.AllowedDirs = flags.allowDirs
	cfg.Exclude = flags.exclude

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldPatternLen, len(oldPattern),
		logging.FieldReplacementLen, len(newPattern),
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	pathGuard, err := guard.New(finalCfg.AllowedDirs)
	if err != nil {
		return fmt.Errorf("build path guard: %w", err)
	}

	ed := editor.New(pathGuard, nil)

	result, singleFile, err := applyEdits(ctx, ed, oldPattern, newPattern, paths, workDir, finalCfg, flags)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	// The text reporter passes over files the pattern is absent from. In
	// single-file mode that absence is the whole story, so render the
	// rejection (and its near-match suggestion) on stderr.
	if singleFile && format == reporter.FormatText && result.Files[0].NoMatch() {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFileError(paths[0], result.Files[0].Error))
	}

	if singleFile && result.Files[0].Error != nil {
		// Wrap the precise rejection for exit-code mapping; the sentinel
		// tells main the failure has already been rendered.
		return fmt.Errorf("%w: %w", ErrEditsFailed, result.Files[0].Error)
	}
	if result.HasFailures() {
		return ErrEditsFailed
	}

	return nil
}

// applyEdits runs either the single-file orchestrator, which enforces the
// expected occurrence count, or the batch runner, which replaces every
// occurrence per file. The returned bool reports which mode ran.
func applyEdits(
	ctx context.Context,
	ed *editor.Editor,
	oldPattern, newPattern string,
	paths []string,
	workDir string,
	cfg *config.Config,
	flags *editFlags,
) (*runner.Result, bool, error) {
	if len(paths) == 1 {
		// A missing path also runs through the orchestrator so the
		// rejection carries the read-failure category.
		info, err := os.Stat(paths[0])
		if err != nil || info.Mode().IsRegular() {
			req := editor.NewRequest(paths[0], oldPattern, newPattern)
			req.ExpectedReplacements = flags.expected
			req.ReplaceAll = flags.all
			req.CreateBackup = cfg.BackupsEnabled()
			req.FormatAfterEdit = cfg.FormatAfterEdit
			req.DryRun = cfg.DryRun

			outcome, applyErr := ed.Apply(ctx, req)
			return runner.ResultForFile(runner.FileOutcome{
				Path:    paths[0],
				Outcome: outcome,
				Error:   applyErr,
			}), true, nil
		}
	}

	batch := runner.New(ed)
	runOpts := runner.Options{
		Paths:           paths,
		WorkingDir:      workDir,
		Extensions:      flags.extensions,
		ExcludeGlobs:    cfg.Exclude,
		Jobs:            cfg.Jobs,
		OldPattern:      oldPattern,
		NewPattern:      newPattern,
		CreateBackup:    cfg.BackupsEnabled(),
		FormatAfterEdit: cfg.FormatAfterEdit,
		DryRun:          cfg.DryRun,
		Config:          cfg,
	}

	result, err := batch.Run(ctx, runOpts)
	if err != nil {
		return nil, false, errors.Join(errors.New("edit run failed"), err)
	}
	return result, false, nil
}

func addEditFlags(cmd *cobra.Command, cfg *config.Config, flags *editFlags) {
	cmd.Flags().IntVar(&flags.expected, "expected", 1,
		"occurrences the pattern must have in a single file")
	cmd.Flags().BoolVar(&flags.all, "all", false,
		"replace every occurrence instead of enforcing --expected")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show changes without applying them")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation")
	cmd.Flags().BoolVar(&cfg.FormatAfterEdit, "format-after-edit", false,
		"run the extension-matched formatter after editing")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers in batch mode (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"restrict batch discovery to these file extensions")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip in batch mode")
	cmd.Flags().StringSliceVar(&flags.allowDirs, "allow-dir", nil,
		"restrict edits to paths under these directories")
}
