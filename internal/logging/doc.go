// Package logging assembles structured slog loggers and formatting helpers used
// across filesort.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so the sorter can tag every log
// line of a run with its run ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
