package cutlist

import (
	"fmt"

	"cutsort/internal/failure"
)

// ParseError reports a cut-list field that is missing or not a non-negative
// integer.
type ParseError struct {
	Path    string
	Field   string
	Token   string
	Missing bool
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Missing:
		return fmt.Sprintf("cut-list %s: field %q not found", e.Path, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("cut-list %s: field %q: value %q is not numeric: %v", e.Path, e.Field, e.Token, e.Err)
	default:
		return fmt.Sprintf("cut-list %s: field %q: value %q is not a non-negative integer", e.Path, e.Field, e.Token)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets callers match any ParseError with failure.ErrParse.
func (e *ParseError) Is(target error) bool { return target == failure.ErrParse }

func missingField(path, label string) *ParseError {
	return &ParseError{Path: path, Field: label, Missing: true}
}
