package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/surgedit/pkg/config"
)

func newPreviewCommand() *cobra.Command {
	var cfg config.Config
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "preview <old-text> <new-text> <path> [paths...]",
		Short: "Show what an edit would change without writing",
		Long: `Preview an edit as a unified diff of the whole file.

Nothing is written and no backups are created. The same validation as
edit applies: an unexpected occurrence count still rejects the preview.

Examples:
  surgedit preview 'oldFunc' 'newFunc' main.go
  surgedit preview 'foo' 'bar' src/ --ext .go
  surgedit preview 'foo' 'bar' main.go --format json`,
		Args: usageArgs(cobra.MinimumNArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.DryRun = true
			return runEdit(cmd, args[0], args[1], args[2:], &cfg, flags)
		},
	}

	addEditFlags(cmd, &cfg, flags)

	// Previews render as unified diffs unless asked otherwise.
	cmd.Flags().Lookup("format").DefValue = "diff"
	flags.format = "diff"
	cmd.Flags().Lookup("dry-run").Hidden = true

	return cmd
}
