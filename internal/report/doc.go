// Package report renders the per-run tally.
//
// Write produces the markdown report artifact (UTF-8 with a byte order mark so
// spreadsheet tools and Windows editors detect the encoding). Summary renders
// the same figures as a console table for the CLI.
package report
