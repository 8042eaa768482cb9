// Package history persists a record of each sorting run in SQLite.
//
// The store is observability only: it answers "what ran, when, and how many
// files went where" for the history command. Nothing reads it back to resume
// or skip files. The database uses the pure-Go modernc.org/sqlite driver, WAL
// journaling, and retries statements that hit SQLITE_BUSY with a short
// exponential backoff so concurrent runs against different targets can share
// one state directory.
package history
