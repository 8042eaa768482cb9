package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"filesort/internal/config"
	"filesort/internal/history"
	"filesort/internal/logging"
	"filesort/internal/report"
	"filesort/internal/sorter"
)

func runSort(cmd *cobra.Command, cmdCtx *commandContext, source, target, reportFlag string) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	runID := history.NewRunID()
	ctx := logging.WithRunID(cmd.Context(), runID)

	started := time.Now()
	result, err := sorter.New(cfg, logger).Run(ctx, source, target)
	if err != nil {
		return err
	}
	finished := time.Now()

	reportPath, err := cfg.ReportPath(target, reportFlag)
	if err != nil {
		return fmt.Errorf("resolve report path: %w", err)
	}
	if err := report.Write(reportPath, result.Stats, result.Processed); err != nil {
		return err
	}

	if cfg.History.Enabled {
		recordRun(ctx, cfg, logging.WithContext(ctx, logger), history.Run{
			ID:         runID,
			Source:     source,
			Target:     target,
			ReportPath: reportPath,
			StartedAt:  started,
			FinishedAt: finished,
			Processed:  result.Processed,
			Skipped:    result.Skipped,
			Categories: result.Stats,
		})
	}

	printResult(cmd, result, reportPath)
	return nil
}

func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, run history.Run) {
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logging.WarnWithContext(logger, "run history unavailable", "history_open_failed",
			logging.String("path", cfg.HistoryPath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on the state directory or set history.enabled = false"),
			logging.String(logging.FieldImpact, "this run is missing from filesort history"),
		)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, run); err != nil {
		logging.WarnWithContext(logger, "failed to record run", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "this run is missing from filesort history"),
		)
	}
}

func printResult(cmd *cobra.Command, result sorter.Result, reportPath string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary(result.Stats, result.Processed, tableStyle(out)))
	fmt.Fprintf(out, "Processed %d of %d files", result.Processed, result.Discovered)
	if result.Skipped > 0 {
		fmt.Fprintf(out, " (%d skipped)", result.Skipped)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Report written to %s\n", reportPath)

	if len(result.Failures) == 0 {
		return
	}
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, "Files left in place:")
	for _, failure := range result.Failures {
		fmt.Fprintf(errOut, "  %s: %v\n", failure.Path, failure.Err)
	}
}
