package sorter

import "filesort/internal/rules"

// Stats counts successfully moved files per category.
type Stats map[rules.Category]int

// NewStats returns stats with every category, including the catch-all, set to zero.
func NewStats() Stats {
	stats := make(Stats, len(rules.Categories()))
	for _, category := range rules.Categories() {
		stats[category] = 0
	}
	return stats
}

// Total sums all category counts.
func (s Stats) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// Failure records a file that could not be sorted.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes one run.
type Result struct {
	Stats      Stats
	Discovered int
	Processed  int
	Skipped    int
	Failures   []Failure
}
