package fault_test

import (
	"errors"
	"strings"
	"testing"

	"filesort/internal/fault"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := fault.Wrap(fault.ErrMove, "sorting", "move", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fault.ErrMove) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"sorting", "move", "failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := fault.Wrap(fault.ErrInvalidSource, "sorting", "inspect source", "", nil)
	if !errors.Is(err, fault.ErrInvalidSource) {
		t.Fatalf("expected invalid source marker, got %v", err)
	}
	if errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("unexpected not found marker in %v", err)
	}
	if got := err.Error(); got != "invalid source: sorting: inspect source" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := fault.Wrap(nil, " ", "", "", nil)
	if !errors.Is(err, fault.ErrMove) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "sort failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}
