// Package fileutil holds low-level file helpers shared by the mover.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Exists reports whether anything (file, directory or symlink, dangling or
// not) occupies path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// CopyFileVerified copies src to dst, which must not exist, then re-reads dst
// and compares its size and SHA-256 digest against what was read from src.
// dst keeps the source permissions and modification time and is removed
// again when any step fails.
func CopyFileVerified(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
		}
	}()

	srcSum := sha256.New()
	if _, err = io.Copy(out, io.TeeReader(in, srcSum)); err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("sync destination: %w", err)
	}
	if err = out.Close(); err != nil {
		return err
	}

	size, dstSum, err := digest(dst)
	if err != nil {
		return fmt.Errorf("verify destination: %w", err)
	}
	if size != info.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, destination %d bytes", info.Size(), size)
	}
	if !bytes.Equal(srcSum.Sum(nil), dstSum) {
		return errors.New("copy hash mismatch")
	}

	if err = os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve modification time: %w", err)
	}
	return nil
}

func digest(path string) (int64, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, nil, err
	}
	return n, h.Sum(nil), nil
}
