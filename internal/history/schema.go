package history

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever schema.sql changes. There are no
// migrations; a mismatching database must be deleted.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was written by a different schema version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ensureSchema creates the tables on first use and otherwise checks the
// stored version, all inside one transaction.
func (s *Store) ensureSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var tables int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`,
	).Scan(&tables); err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}

	if tables > 0 {
		var stored int
		if err := tx.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&stored); err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		if stored != schemaVersion {
			return fmt.Errorf("%w: %s has version %d, expected %d (delete it to start a fresh history)",
				ErrSchemaMismatch, s.path, stored, schemaVersion)
		}
		return nil
	}

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
