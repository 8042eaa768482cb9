// Package fault defines the error markers shared by the sorting pipeline.
//
// Callers tag failures with one of the exported sentinels through Wrap so the
// batch driver and CLI can decide, with errors.Is, whether a failure aborts
// the run or only skips a single file.
package fault
