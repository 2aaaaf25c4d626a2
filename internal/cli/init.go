package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/surgedit/internal/configloader"
	"github.com/yaklabco/surgedit/internal/logging"
)

// defaultConfigFileName is what init creates in the current directory.
const defaultConfigFileName = ".surgedit.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new surgedit configuration file",
		Long: `Create a new .surgedit.yml configuration file in the current directory
with sensible defaults. The file can be customized to restrict edits to
allowed directories, change backup behavior, and set exclude patterns.

Examples:
  surgedit init                      Create .surgedit.yml
  surgedit init --output custom.yml  Write to a custom file path
  surgedit init --force              Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .surgedit.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFileName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			if !confirmOverwrite(cmd, outputPath) {
				return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
			}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := configloader.WriteConfigTemplate(absPath); err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}

// confirmOverwrite asks the user whether an existing file may be replaced.
// Non-interactive sessions never prompt and always decline.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	if !configloader.IsInteractive() {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File %q already exists. Overwrite? [y/N] ", path)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
