// Package classifier maps a filename to its destination category and
// subcategory using the fixed rule table.
package classifier

import (
	"path/filepath"
	"strings"

	"filesort/internal/rules"
)

// Result is the classification of one filename. Subcategory is empty when the
// file belongs directly under its category directory.
type Result struct {
	Category    rules.Category
	Subcategory rules.Subcategory
}

// IsCatchAll reports whether the file matched no rule.
func (r Result) IsCatchAll() bool {
	return r.Category == rules.Uncategorized
}

// Classify resolves filename to its category and, for known categories, the
// optional subcategory. Only the base name is considered.
func Classify(filename string) Result {
	ext := Extension(filename)
	cat := rules.CategoryOf(ext)
	if cat == rules.Uncategorized {
		return Result{Category: cat}
	}
	sub, _ := rules.SubcategoryOf(cat, ext)
	return Result{Category: cat, Subcategory: sub}
}

// Extension returns the suffix of the base name starting at its last dot. A
// name whose only dot is the leading one (".bashrc") has no extension.
func Extension(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	if strings.Trim(base[:idx], ".") == "" {
		return ""
	}
	return base[idx:]
}
