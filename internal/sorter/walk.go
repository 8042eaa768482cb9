package sorter

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"filesort/internal/fault"
	"filesort/internal/logging"
)

// snapshot collects every regular file and symlink under root before any move
// happens. The target subtree is pruned and directory symlinks are not
// followed. Unreadable subdirectories are logged and skipped.
func (s *Sorter) snapshot(logger *slog.Logger, root, target string) ([]string, error) {
	rootCanon, err := canonical(root)
	if err != nil {
		return nil, fault.Wrap(fault.ErrInvalidSource, stage, "resolve source", root, err)
	}
	targetCanon, err := canonical(target)
	if err != nil {
		return nil, fault.Wrap(fault.ErrMove, stage, "resolve target", target, err)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logging.WarnWithContext(logger, "directory could not be read", "walk_failed",
				logging.String("path", path),
				logging.Error(walkErr),
				logging.String(logging.FieldErrorHint, "check read permissions"),
				logging.String(logging.FieldImpact, "files below this path were not sorted"),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if filepath.Join(rootCanon, rel) == targetCanon {
				logger.Debug("skipping target directory", logging.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() || d.Type()&fs.ModeSymlink != 0 {
			files = append(files, path)
			return nil
		}
		logger.Debug("skipping special file", logging.String("path", path), logging.String("type", d.Type().String()))
		return nil
	})
	if err != nil {
		return nil, fault.Wrap(fault.ErrInvalidSource, stage, "walk source", root, err)
	}
	return files, nil
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
