package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnknownCategory = errors.New("unknown category")
	ErrFilesystem      = errors.New("filesystem error")
	ErrConfiguration   = errors.New("configuration error")
)

// Kind labels used in journal rows and summaries.
const (
	KindParse           = "parse"
	KindUnknownCategory = "unknown_category"
	KindFilesystem      = "filesystem"
	KindConfiguration   = "configuration"
	KindInternal        = "internal"
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind maps an error to the label recorded for it. A nil error maps to "".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrUnknownCategory):
		return KindUnknownCategory
	case errors.Is(err, ErrFilesystem):
		return KindFilesystem
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	default:
		return KindInternal
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
