// Package runlock serializes filesort processes working on the same target.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"filesort/internal/fault"
)

// FileName is the lock file created in the target root.
const FileName = ".filesort.lock"

// Lock is a held advisory lock on a target directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes a non-blocking exclusive lock on target. The directory must
// exist. A lock held by another process yields fault.ErrBusy.
func Acquire(target string) (*Lock, error) {
	path := filepath.Join(target, FileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fault.Wrap(fault.ErrBusy, "locking", "acquire lock", fmt.Sprintf("another filesort run holds %s", path), nil)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the target. The lock file stays in place so every run
// locks the same inode. Calling Release twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	fl := l.lock
	l.lock = nil
	if err := fl.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
