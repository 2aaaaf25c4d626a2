package config

// GenerateTemplate returns a commented starter config suitable for
// writing to .surgedit.yml.
func GenerateTemplate() []byte {
	return []byte(`# surgedit configuration
# See https://github.com/yaklabco/surgedit for documentation.

# Restrict edits to these directories. Empty means no restriction.
allowed_dirs: []

backups:
  # Create a timestamped backup next to each file before writing.
  enabled: true

# Run the matching formatter (gofmt, json, yaml, markdown) after edits.
format_after_edit: false

# Glob patterns skipped in batch mode.
exclude:
  - "*.min.js"
  - "vendor/**"

# Logging verbosity: debug, info, warn, error.
log_level: info
`)
}
