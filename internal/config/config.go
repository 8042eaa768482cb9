package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directories owned by filesort itself.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Sorter tunes the batch driver.
type Sorter struct {
	ProgressInterval int `toml:"progress_interval"`
}

// Report controls where the per-run report is written.
type Report struct {
	// Filename is resolved against the target directory when relative.
	Filename string `toml:"filename"`
}

// History toggles the run history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Config encapsulates all configuration values for filesort.
//
// Configuration sections by subsystem:
//   - Paths: state directory for the log file and history database
//   - Logging: log format and level
//   - Sorter: progress reporting cadence
//   - Report: report file name
//   - History: run history toggle
type Config struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
	Sorter  Sorter  `toml:"sorter"`
	Report  Report  `toml:"report"`
	History History `toml:"history"`
}

// Load reads the configuration at path, or the first file found among the
// default locations when path is empty, on top of the built-in defaults. The
// returned config is normalized and validated. The second and third results
// report which file was considered and whether it existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, found, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if found {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, found, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// EnsureDirectories creates the state directory.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// HistoryPath returns the location of the run history database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// ReportPath resolves the report file for a run. An override is a plain path
// taken relative to the working directory. Without one the configured
// filename is used, and a relative filename lands in target.
func (c *Config) ReportPath(target, override string) (string, error) {
	if name := strings.TrimSpace(override); name != "" {
		return ExpandPath(name)
	}
	name := c.Report.Filename
	if filepath.IsAbs(name) || strings.HasPrefix(name, "~") {
		return ExpandPath(name)
	}
	return filepath.Join(target, name), nil
}

// Encode renders the config as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	encoder := toml.NewEncoder(&b)
	if err := encoder.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is left untouched.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
