package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"filesort/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "filesort", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "filesort")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Sorter.ProgressInterval != 100 {
		t.Fatalf("unexpected progress interval: %d", cfg.Sorter.ProgressInterval)
	}
	if cfg.Report.Filename != "report.md" {
		t.Fatalf("unexpected report filename: %q", cfg.Report.Filename)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.HistoryPath() != filepath.Join(wantState, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.StateDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "filesort.toml")

	type payload struct {
		Paths struct {
			StateDir string `toml:"state_dir"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Sorter struct {
			ProgressInterval int `toml:"progress_interval"`
		} `toml:"sorter"`
		History struct {
			Enabled bool `toml:"enabled"`
		} `toml:"history"`
	}
	custom := payload{}
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Warning"
	custom.Sorter.ProgressInterval = 10
	custom.History.Enabled = false
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.StateDir != custom.Paths.StateDir {
		t.Fatalf("unexpected state dir %q", cfg.Paths.StateDir)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected normalized warn level, got %q", cfg.Logging.Level)
	}
	if cfg.Sorter.ProgressInterval != 10 {
		t.Fatalf("expected progress interval 10, got %d", cfg.Sorter.ProgressInterval)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled from file")
	}
	if cfg.Report.Filename != "report.md" {
		t.Fatalf("unset report filename should keep default, got %q", cfg.Report.Filename)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Sorter.ProgressInterval != 100 {
		t.Fatalf("expected defaults, got %+v", cfg.Sorter)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[sorter\nprogress_interval = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.StateDir, "filesort") {
		t.Fatalf("expected state dir to contain filesort, got %q", cfg.Paths.StateDir)
	}
	if cfg.Sorter.ProgressInterval != config.Default().Sorter.ProgressInterval {
		t.Fatalf("sample progress interval drifted from defaults: %d", cfg.Sorter.ProgressInterval)
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting an existing file")
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Sorter.ProgressInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive progress interval")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Report.Filename = ".."
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for report filename without a file")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestReportPath(t *testing.T) {
	cfg := config.Default()
	target := t.TempDir()

	got, err := cfg.ReportPath(target, "")
	if err != nil {
		t.Fatalf("ReportPath: %v", err)
	}
	if got != filepath.Join(target, "report.md") {
		t.Fatalf("default report path = %q", got)
	}

	override := filepath.Join(t.TempDir(), "elsewhere.md")
	got, err = cfg.ReportPath(target, override)
	if err != nil {
		t.Fatalf("ReportPath: %v", err)
	}
	if got != override {
		t.Fatalf("absolute override = %q, want %q", got, override)
	}

	wd := t.TempDir()
	t.Chdir(wd)
	got, err = cfg.ReportPath(target, "summary.md")
	if err != nil {
		t.Fatalf("ReportPath: %v", err)
	}
	if got != filepath.Join(wd, "summary.md") {
		t.Fatalf("relative override = %q, want it under the working directory", got)
	}

	cfg.Report.Filename = "runs/latest.md"
	got, err = cfg.ReportPath(target, "")
	if err != nil {
		t.Fatalf("ReportPath: %v", err)
	}
	if got != filepath.Join(target, "runs", "latest.md") {
		t.Fatalf("configured filename = %q", got)
	}
}

func TestEncodeRoundTripsSections(t *testing.T) {
	cfg := config.Default()
	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, section := range []string{"[paths]", "[logging]", "[sorter]", "[report]", "[history]"} {
		if !strings.Contains(encoded, section) {
			t.Fatalf("encoded config missing %s:\n%s", section, encoded)
		}
	}
}
