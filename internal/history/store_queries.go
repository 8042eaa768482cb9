package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"filesort/internal/rules"
)

// List returns the most recent runs first. A non-positive limit returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	query := `SELECT id, source, target, report_path, started_at, finished_at, processed, skipped
              FROM runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	index := make(map[string]int)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		index[run.ID] = len(runs)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	if len(runs) == 0 {
		return runs, nil
	}

	if err := s.loadCategories(ctx, runs, index); err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *Store) loadCategories(ctx context.Context, runs []Run, index map[string]int) error {
	placeholders := make([]string, 0, len(runs))
	args := make([]any, 0, len(runs))
	for _, run := range runs {
		placeholders = append(placeholders, "?")
		args = append(args, run.ID)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, category, files FROM run_categories WHERE run_id IN (`+strings.Join(placeholders, ", ")+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("list run categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			runID    string
			category string
			files    int
		)
		if err := rows.Scan(&runID, &category, &files); err != nil {
			return fmt.Errorf("scan run category: %w", err)
		}
		pos, ok := index[runID]
		if !ok {
			continue
		}
		if runs[pos].Categories == nil {
			runs[pos].Categories = make(map[rules.Category]int)
		}
		runs[pos].Categories[rules.Category(category)] = files
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate run categories: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(scanner rowScanner) (Run, error) {
	var (
		run        Run
		reportPath sql.NullString
		startedAt  string
		finishedAt string
	)
	if err := scanner.Scan(
		&run.ID,
		&run.Source,
		&run.Target,
		&reportPath,
		&startedAt,
		&finishedAt,
		&run.Processed,
		&run.Skipped,
	); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.ReportPath = reportPath.String
	run.StartedAt = parseTime(startedAt)
	run.FinishedAt = parseTime(finishedAt)
	return run, nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
