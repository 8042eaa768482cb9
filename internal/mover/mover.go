package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"filesort/internal/classifier"
	"filesort/internal/fault"
	"filesort/internal/fileutil"
)

const stage = "moving"

// Mover moves files into destination directories. The function fields exist
// so tests can simulate cross-device renames.
type Mover struct {
	Rename   func(oldpath, newpath string) error
	CopyFile func(src, dst string) error
}

// New returns a mover backed by the real file system.
func New() *Mover {
	return &Mover{Rename: os.Rename, CopyFile: fileutil.CopyFileVerified}
}

// Move relocates src into destDir under filename, or under the first free
// "stem_N.ext" variant when filename is taken, and returns the final path.
// A source that disappeared yields fault.ErrNotFound; any other failure
// yields fault.ErrMove. On failure the source is left where it was.
func (m *Mover) Move(src, destDir, filename string) (string, error) {
	info, err := os.Lstat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fault.Wrap(fault.ErrNotFound, stage, "inspect source", fmt.Sprintf("%s vanished before it could be moved", src), err)
		}
		return "", fault.Wrap(fault.ErrMove, stage, "inspect source", src, err)
	}
	if info.IsDir() {
		return "", fault.Wrap(fault.ErrMove, stage, "inspect source", fmt.Sprintf("%s is a directory", src), nil)
	}

	if samePath(src, filepath.Join(destDir, filename)) {
		return src, nil
	}

	target, err := FreeName(destDir, filename)
	if err != nil {
		return "", fault.Wrap(fault.ErrMove, stage, "pick destination name", destDir, err)
	}

	if err := m.relocate(src, target, info); err != nil {
		if _, statErr := os.Lstat(src); errors.Is(statErr, fs.ErrNotExist) {
			return "", fault.Wrap(fault.ErrNotFound, stage, "move", fmt.Sprintf("%s vanished during the move", src), err)
		}
		return "", fault.Wrap(fault.ErrMove, stage, "move", fmt.Sprintf("%s -> %s", src, target), err)
	}
	return target, nil
}

func (m *Mover) relocate(src, target string, info fs.FileInfo) error {
	rename := m.Rename
	if rename == nil {
		rename = os.Rename
	}
	err := rename(src, target)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, unix.EXDEV) {
		return err
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		dest, err := os.Readlink(src)
		if err != nil {
			return fmt.Errorf("read symlink: %w", err)
		}
		if err := os.Symlink(dest, target); err != nil {
			return fmt.Errorf("recreate symlink across devices: %w", err)
		}
	} else {
		copyFile := m.CopyFile
		if copyFile == nil {
			copyFile = fileutil.CopyFileVerified
		}
		if err := copyFile(src, target); err != nil {
			return fmt.Errorf("copy file across devices: %w", err)
		}
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// FreeName returns filename joined to dir when nothing occupies that path,
// otherwise the first "stem_N.ext" (N >= 1) that is free. There is no upper
// bound on N.
func FreeName(dir, filename string) (string, error) {
	candidate := filepath.Join(dir, filename)
	taken, err := fileutil.Exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}
	stem, ext := SplitName(filename)
	for counter := 1; ; counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		taken, err = fileutil.Exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// SplitName splits filename at its last extension boundary, using the same
// extension rule as the classifier.
func SplitName(filename string) (stem, ext string) {
	ext = classifier.Extension(filename)
	return strings.TrimSuffix(filename, ext), ext
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
