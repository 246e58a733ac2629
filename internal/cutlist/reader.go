package cutlist

import (
	"errors"
	"os"

	"cutsort/internal/failure"
)

// ReadLines loads a cut-list file and splits it with SplitLines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrFilesystem, "cutlist", "read", path, err)
	}
	return SplitLines(string(data)), nil
}

// ReadField returns the integer value of the first line in path containing
// label. found is false when no line matches.
func ReadField(path, label string) (value int, found bool, err error) {
	lines, err := ReadLines(path)
	if err != nil {
		return 0, false, err
	}
	value, found, err = FieldValue(lines, label)
	return value, found, withPath(err, path)
}

// RequireField is ReadField with a missing label reported as a *ParseError.
func RequireField(path, label string) (int, error) {
	value, found, err := ReadField(path, label)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, missingField(path, label)
	}
	return value, nil
}

// ReadDimension parses the height and width fields of path.
func ReadDimension(path string, labels Labels) (Dimension, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return Dimension{}, err
	}
	return DimensionOf(path, lines, labels)
}

// DimensionOf parses the height and width fields from already loaded lines.
// path is only used for error context.
func DimensionOf(path string, lines []string, labels Labels) (Dimension, error) {
	height, found, err := FieldValue(lines, labels.Height)
	if err != nil {
		return Dimension{}, withPath(err, path)
	}
	if !found {
		return Dimension{}, missingField(path, labels.Height)
	}
	width, found, err := FieldValue(lines, labels.Width)
	if err != nil {
		return Dimension{}, withPath(err, path)
	}
	if !found {
		return Dimension{}, missingField(path, labels.Width)
	}
	return Dimension{Height: height, Width: width}, nil
}

func withPath(err error, path string) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Path == "" {
		perr.Path = path
	}
	return err
}
