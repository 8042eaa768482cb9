package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSorter(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateSorter() error {
	if c.Sorter.ProgressInterval <= 0 {
		return errors.New("sorter.progress_interval must be positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	switch filepath.Clean(c.Report.Filename) {
	case ".", "..", string(filepath.Separator):
		return fmt.Errorf("report.filename must name a file, got %q", c.Report.Filename)
	}
	return nil
}
