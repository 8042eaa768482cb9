package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidSource = errors.New("invalid source")
	ErrMove          = errors.New("move failed")
	ErrConfiguration = errors.New("configuration error")
	ErrBusy          = errors.New("target busy")
)

// Wrap tags err with marker, a sentinel from this package, and prefixes
// the non-empty stage, operation and message parts. A nil marker means ErrMove.
func Wrap(marker error, stage, operation, message string, err error) error {
	if marker == nil {
		marker = ErrMove
	}
	var detail []string
	for _, part := range [...]string{stage, operation, message} {
		if part = strings.TrimSpace(part); part != "" {
			detail = append(detail, part)
		}
	}
	if len(detail) == 0 {
		detail = []string{"sort failure"}
	}
	joined := strings.Join(detail, ": ")
	if err == nil {
		return fmt.Errorf("%w: %s", marker, joined)
	}
	return fmt.Errorf("%w: %s: %w", marker, joined, err)
}
