// Package config defines core configuration types for surgedit.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies how edit outcomes are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// BackupsConfig controls snapshot behavior before destructive writes.
type BackupsConfig struct {
	// Enabled indicates whether timestamped backups are created by default.
	// Individual requests may still override this.
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for surgedit.
type Config struct {
	// AllowedDirs restricts edits to paths under these directories.
	// Empty means no restriction.
	AllowedDirs []string `yaml:"allowed_dirs"`

	// Backups configures backup-before-write behavior.
	Backups BackupsConfig `yaml:"backups"`

	// FormatAfterEdit runs the extension-matched formatter after edits
	// unless the request says otherwise.
	FormatAfterEdit bool `yaml:"format_after_edit"`

	// Exclude contains glob patterns for files batch mode skips.
	Exclude []string `yaml:"exclude"`

	// LogLevel sets logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// DryRun previews changes without writing.
	DryRun bool `yaml:"-"`

	// Jobs specifies the number of parallel workers in batch mode.
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with the defaults a bare invocation uses:
// backups on, no directory restriction, plain text output.
func NewConfig() *Config {
	return &Config{
		Backups:  BackupsConfig{Enabled: true},
		LogLevel: "info",
		Format:   FormatText,
	}
}

// BackupsEnabled resolves the effective backup switch.
func (c *Config) BackupsEnabled() bool {
	if c == nil {
		return true
	}
	return c.Backups.Enabled && !c.NoBackups
}
