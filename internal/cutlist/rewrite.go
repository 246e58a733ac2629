package cutlist

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"cutsort/internal/failure"
)

// ReplaceField returns lines with the last token of the first line containing
// label replaced by value. Leading text, spacing and the line terminator are
// kept. ok is false when no line contains label.
func ReplaceField(lines []string, label string, value int) (out []string, ok bool) {
	idx := FindLine(lines, label)
	if idx < 0 {
		return lines, false
	}
	line := lines[idx]
	body := strings.TrimRightFunc(line, unicode.IsSpace)
	start := strings.LastIndexFunc(body, unicode.IsSpace) + 1

	out = make([]string, len(lines))
	copy(out, lines)
	out[idx] = body[:start] + strconv.Itoa(value) + line[len(body):]
	return out, true
}

// SetField rewrites the value of label in path, keeping the file mode.
func SetField(path, label string, value int) error {
	info, err := os.Stat(path)
	if err != nil {
		return failure.Wrap(failure.ErrFilesystem, "cutlist", "stat", path, err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		return err
	}
	updated, ok := ReplaceField(lines, label, value)
	if !ok {
		return missingField(path, label)
	}
	if err := os.WriteFile(path, []byte(strings.Join(updated, "")), info.Mode().Perm()); err != nil {
		return failure.Wrap(failure.ErrFilesystem, "cutlist", "write", path, err)
	}
	return nil
}
