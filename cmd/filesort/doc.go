// Package main hosts the filesort CLI entrypoint and command graph.
//
// The root command sorts a source file or directory into a target tree and
// then writes the report, prints a summary table, and records the run in the
// history database. Subcommands list the rule table, show past runs, and
// scaffold configuration. Configuration and logging are resolved lazily so
// plain help output never depends on a readable config file.
package main
