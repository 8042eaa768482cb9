package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"filesort/internal/classifier"
	"filesort/internal/config"
	"filesort/internal/fault"
	"filesort/internal/layout"
	"filesort/internal/logging"
	"filesort/internal/mover"
	"filesort/internal/runlock"
)

const stage = "sorting"

// Options tunes a Sorter.
type Options struct {
	// ProgressInterval is the number of processed files between progress lines.
	ProgressInterval int
	// Lock takes the target run lock for the duration of the walk.
	Lock bool
}

// Sorter moves files from a source into the category tree of a target.
type Sorter struct {
	opts   Options
	mover  *mover.Mover
	logger *slog.Logger
}

// New constructs a sorter from application config with the real file system mover.
func New(cfg *config.Config, logger *slog.Logger) *Sorter {
	opts := Options{Lock: true}
	if cfg != nil {
		opts.ProgressInterval = cfg.Sorter.ProgressInterval
	}
	return NewWithDependencies(opts, mover.New(), logger)
}

// NewWithDependencies allows injecting collaborators (used in tests).
func NewWithDependencies(opts Options, mv *mover.Mover, logger *slog.Logger) *Sorter {
	if mv == nil {
		mv = mover.New()
	}
	return &Sorter{
		opts:   opts,
		mover:  mv,
		logger: logging.NewComponentLogger(logger, "sorter"),
	}
}

// Run sorts source, a single file or a directory tree, into target.
func (s *Sorter) Run(ctx context.Context, source, target string) (Result, error) {
	logger := logging.WithContext(ctx, s.logger)

	info, err := os.Lstat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fault.Wrap(fault.ErrNotFound, stage, "inspect source", fmt.Sprintf("%s does not exist", source), err)
		}
		return Result{}, fault.Wrap(fault.ErrInvalidSource, stage, "inspect source", source, err)
	}

	walkRoot := ""
	switch {
	case info.IsDir():
		walkRoot = source
	case info.Mode()&fs.ModeSymlink != 0:
		if resolved, statErr := os.Stat(source); statErr == nil && resolved.IsDir() {
			if walkRoot, err = filepath.EvalSymlinks(source); err != nil {
				return Result{}, fault.Wrap(fault.ErrInvalidSource, stage, "resolve source", source, err)
			}
		}
	case !info.Mode().IsRegular():
		return Result{}, fault.Wrap(fault.ErrInvalidSource, stage, "inspect source",
			fmt.Sprintf("%s is neither a regular file nor a directory (%s)", source, info.Mode().Type()), nil)
	}

	if err := layout.Prepare(target); err != nil {
		return Result{}, fault.Wrap(fault.ErrMove, stage, "prepare target", target, err)
	}

	if s.opts.Lock {
		lock, err := runlock.Acquire(target)
		if err != nil {
			return Result{}, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logging.WarnWithContext(logger, "failed to release run lock", "run_lock_release_failed",
					logging.String("lock", lock.Path()),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "remove the lock file manually if no run is active"),
					logging.String(logging.FieldImpact, "a stale lock file may remain in the target"),
				)
			}
		}()
	}

	var candidates []string
	if walkRoot == "" {
		candidates = []string{source}
	} else {
		candidates, err = s.snapshot(logger, walkRoot, target)
		if err != nil {
			return Result{}, err
		}
	}

	logger.Info("sorting started",
		logging.String(logging.FieldSource, source),
		logging.String(logging.FieldTarget, target),
		logging.Int("candidates", len(candidates)),
	)

	result := Result{Stats: NewStats(), Discovered: len(candidates)}
	sampler := logging.NewProgressSampler(s.opts.ProgressInterval)
	for _, path := range candidates {
		if err := s.sortOne(logger, path, target, &result); err != nil {
			result.Failures = append(result.Failures, Failure{Path: path, Err: err})
			result.Skipped++
			continue
		}
		if sampler.ShouldLog(result.Processed) {
			logger.Info("sorting progress",
				logging.Int("processed", result.Processed),
				logging.Int("candidates", len(candidates)),
			)
		}
	}

	logger.Info("sorting finished",
		logging.Int("processed", result.Processed),
		logging.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Sorter) sortOne(logger *slog.Logger, path, target string, result *Result) error {
	name := filepath.Base(path)
	class := classifier.Classify(name)

	dir, err := layout.ResolveDirectory(target, class)
	if err != nil {
		err = fault.Wrap(fault.ErrMove, stage, "resolve destination", name, err)
		s.warnFailure(logger, path, err)
		return err
	}

	final, err := s.mover.Move(path, dir, name)
	if err != nil {
		s.warnFailure(logger, path, err)
		return err
	}

	result.Stats[class.Category]++
	result.Processed++
	logger.Debug("file sorted",
		logging.String("file", path),
		logging.String("category", string(class.Category)),
		logging.String("subcategory", string(class.Subcategory)),
		logging.String("destination", final),
	)
	return nil
}

func (s *Sorter) warnFailure(logger *slog.Logger, path string, err error) {
	hint := "check permissions on the source and target directories"
	if errors.Is(err, fault.ErrNotFound) {
		hint = "the file was removed or renamed while the run was in progress"
	}
	logging.WarnWithContext(logger, "file could not be sorted", "file_sort_failed",
		logging.String("file", path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "file left in place; rerun to retry"),
	)
}
