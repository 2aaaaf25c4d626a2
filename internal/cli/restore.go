package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/surgedit/internal/logging"
	"github.com/yaklabco/surgedit/pkg/fsutil"
)

func newRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <path>",
		Short: "Restore a file from its most recent backup",
		Long: `Restore a file from the newest of its timestamped backup siblings.

Backups are the .backup-<millis> files surgedit creates before every
destructive write. The backup file itself is left in place.

Examples:
  surgedit restore main.go`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args[0])
		},
	}

	return cmd
}

func runRestore(cmd *cobra.Command, path string) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backupPath, err := fsutil.RestoreBackup(ctx, path)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	if backupPath == "" {
		return fmt.Errorf("no backup found for %s", path)
	}

	logger.Info("restored file",
		logging.FieldPath, path,
		logging.FieldBackupPath, backupPath,
	)

	return nil
}
