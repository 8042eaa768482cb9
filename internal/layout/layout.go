// Package layout owns the directory tree under the target root: the eager
// category directories and the lazily created subcategory directories.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"filesort/internal/classifier"
	"filesort/internal/rules"
)

const dirMode = 0o755

// Prepare creates root and one directory per category, including the
// catch-all. Existing directories are left untouched.
func Prepare(root string) error {
	if err := os.MkdirAll(root, dirMode); err != nil {
		return fmt.Errorf("create target root %q: %w", root, err)
	}
	for _, cat := range rules.Categories() {
		dir := filepath.Join(root, string(cat))
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create category directory %q: %w", dir, err)
		}
	}
	return nil
}

// DirectoryFor computes the destination directory for a classification
// without touching the file system.
func DirectoryFor(root string, result classifier.Result) string {
	if result.IsCatchAll() {
		return filepath.Join(root, string(rules.Uncategorized))
	}
	if result.Subcategory != "" {
		return filepath.Join(root, string(result.Category), string(result.Subcategory))
	}
	return filepath.Join(root, string(result.Category))
}

// ResolveDirectory returns the destination directory for a classification and
// makes sure it exists. Subcategory directories are only created here, the
// first time a file needs them.
func ResolveDirectory(root string, result classifier.Result) (string, error) {
	dir := DirectoryFor(root, result)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("create destination directory %q: %w", dir, err)
	}
	return dir, nil
}
