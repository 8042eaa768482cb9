package config

const (
	defaultStateDir         = "~/.local/share/filesort"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultProgressInterval = 100
	defaultReportFilename   = "report.md"
	defaultHistoryEnabled   = true
	defaultConfigLocation   = "~/.config/filesort/config.toml"
	projectConfigName       = "filesort.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Sorter: Sorter{
			ProgressInterval: defaultProgressInterval,
		},
		Report: Report{
			Filename: defaultReportFilename,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
	}
}
