package history

import (
	"time"

	"github.com/google/uuid"

	"filesort/internal/rules"
)

// Run is one recorded invocation of the sorter.
type Run struct {
	ID         string
	Source     string
	Target     string
	ReportPath string
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Skipped    int
	Categories map[rules.Category]int
}

// Duration reports how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}
