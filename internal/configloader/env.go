package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/surgedit/pkg/config"
)

// envVarPrefix is the prefix for all surgedit environment variables.
const envVarPrefix = "SURGEDIT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ALLOWED_DIRS":      {field: "allowed_dirs", typ: envTypeSlice},
	"BACKUPS_ENABLED":   {field: "backups.enabled", typ: envTypeBool},
	"NO_BACKUPS":        {field: "no_backups", typ: envTypeBool},
	"FORMAT_AFTER_EDIT": {field: "format_after_edit", typ: envTypeBool},
	"DRY_RUN":           {field: "dry_run", typ: envTypeBool},
	"JOBS":              {field: "jobs", typ: envTypeInt},
	"FORMAT":            {field: "format", typ: envTypeString},
	"EXCLUDE":           {field: "exclude", typ: envTypeSlice},
	"LOG_LEVEL":         {field: "log_level", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SURGEDIT_ (e.g., SURGEDIT_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	case "format_after_edit":
		cfg.FormatAfterEdit = value
	case "dry_run":
		cfg.DryRun = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "allowed_dirs":
		cfg.AllowedDirs = value
	case "exclude":
		cfg.Exclude = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"SURGEDIT_ALLOWED_DIRS":      "Comma-separated list of directories edits are restricted to",
		"SURGEDIT_BACKUPS_ENABLED":   "Enable backups before writing: true or false",
		"SURGEDIT_NO_BACKUPS":        "Disable backups: true or false",
		"SURGEDIT_FORMAT_AFTER_EDIT": "Run the matching formatter after edits: true or false",
		"SURGEDIT_DRY_RUN":           "Dry-run mode: true or false",
		"SURGEDIT_JOBS":              "Number of parallel workers (0 = auto)",
		"SURGEDIT_FORMAT":            "Output format: text, json, or diff",
		"SURGEDIT_EXCLUDE":           "Comma-separated list of glob patterns to skip",
		"SURGEDIT_LOG_LEVEL":         "Logging verbosity: debug, info, warn, or error",
	}
}
