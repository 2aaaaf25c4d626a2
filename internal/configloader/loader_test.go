package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/surgedit/pkg/config"
)

func baseOpts(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Temp directory with no config files.
	tmpDir := t.TempDir()

	result, err := Load(context.Background(), baseOpts(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if !result.Config.Backups.Enabled {
		t.Error("expected backups enabled by default")
	}
	if result.Config.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
allowed_dirs:
  - /srv/app
format_after_edit: true
exclude:
  - "*.min.js"
`
	configPath := filepath.Join(tmpDir, ".surgedit.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), baseOpts(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != configPath {
		t.Errorf("LoadedFrom = %v, want [%s]", result.LoadedFrom, configPath)
	}
	if len(result.Config.AllowedDirs) != 1 || result.Config.AllowedDirs[0] != "/srv/app" {
		t.Errorf("AllowedDirs = %v", result.Config.AllowedDirs)
	}
	if !result.Config.FormatAfterEdit {
		t.Error("FormatAfterEdit = false, want true")
	}
	// Defaults survive for fields the file does not set.
	if !result.Config.Backups.Enabled {
		t.Error("Backups.Enabled = false, want default true")
	}
}

func TestLoad_ExplicitConfigTakesPrecedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	projectPath := filepath.Join(tmpDir, ".surgedit.yml")
	if err := os.WriteFile(projectPath, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	explicitPath := filepath.Join(tmpDir, "override.yml")
	if err := os.WriteFile(explicitPath, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatalf("write explicit config: %v", err)
	}

	opts := baseOpts(tmpDir)
	opts.ExplicitPath = explicitPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want explicit config value", result.Config.LogLevel)
	}
}

func TestLoad_CLIConfigWins(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".surgedit.yml"), []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := baseOpts(tmpDir)
	opts.CLIConfig = &config.Config{LogLevel: "debug", Jobs: 4}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want CLI value", result.Config.LogLevel)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", result.Config.Jobs)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	opts := baseOpts(tmpDir)
	opts.CLIConfig = &config.Config{Jobs: -1}

	_, err := Load(context.Background(), opts)
	if err == nil {
		t.Fatal("Load succeeded with negative jobs")
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies the environment.
	t.Setenv("SURGEDIT_JOBS", "8")
	t.Setenv("SURGEDIT_FORMAT", "json")
	t.Setenv("SURGEDIT_ALLOWED_DIRS", "/a, /b")
	t.Setenv("SURGEDIT_NO_BACKUPS", "true")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.Jobs != 8 {
		t.Errorf("Jobs = %d, want 8", cfg.Jobs)
	}
	if cfg.Format != config.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if len(cfg.AllowedDirs) != 2 || cfg.AllowedDirs[0] != "/a" || cfg.AllowedDirs[1] != "/b" {
		t.Errorf("AllowedDirs = %v", cfg.AllowedDirs)
	}
	if !cfg.NoBackups {
		t.Error("NoBackups = false, want true")
	}
}

func TestLoadFromEnvInvalidBool(t *testing.T) {
	t.Setenv("SURGEDIT_DRY_RUN", "maybe")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("LoadFromEnv succeeded with invalid boolean")
	}
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".surgedit.yml"), []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// A child dir marked as a VCS root must not see the parent's config.
	child := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(child, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), child)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if found != "" {
		t.Errorf("found = %q, want none past VCS root", found)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	mid := &config.Config{LogLevel: "warn"}
	top := &config.Config{Jobs: 2}

	merged := MergeAll(base, mid, top)
	if merged.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", merged.LogLevel)
	}
	if merged.Jobs != 2 {
		t.Errorf("Jobs = %d", merged.Jobs)
	}
	if !merged.Backups.Enabled {
		t.Error("Backups.Enabled lost in merge")
	}
}

func TestWriteConfigTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".surgedit.yml")
	if err := WriteConfigTemplate(path); err != nil {
		t.Fatalf("WriteConfigTemplate: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if !cfg.Backups.Enabled {
		t.Error("template backups.enabled = false, want true")
	}
}
