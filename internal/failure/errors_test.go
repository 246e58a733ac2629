package failure_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cutsort/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("permission denied")
	err := failure.Wrap(failure.ErrFilesystem, "relocate", "mkdir", "create destination", base)
	if !errors.Is(err, failure.ErrFilesystem) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"relocate", "mkdir", "create destination", "permission denied"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutDetail(t *testing.T) {
	err := failure.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failure.ErrFilesystem) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failed") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"parse", fmt.Errorf("outer: %w", failure.ErrParse), failure.KindParse},
		{"category", failure.Wrap(failure.ErrUnknownCategory, "sort", "lookup", "", nil), failure.KindUnknownCategory},
		{"filesystem", failure.Wrap(failure.ErrFilesystem, "merge", "remove", "", errors.New("io")), failure.KindFilesystem},
		{"configuration", failure.Wrap(failure.ErrConfiguration, "config", "", "bad", nil), failure.KindConfiguration},
		{"other", errors.New("boom"), failure.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.Kind(tt.err); got != tt.want {
				t.Fatalf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}
