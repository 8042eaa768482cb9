// Package sorter drives a sorting run: it validates the source, prepares the
// category tree under the target, snapshots candidate files, and moves each
// one into place while tallying per-category counts.
//
// A run is single-threaded. Per-file failures are logged and recorded in the
// Result without stopping the run; only problems with the source or target
// roots are fatal. Files already inside the target are never collected, so a
// second run over an emptied source is a no-op.
package sorter
