package cutlist

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultHeightLabel = "fdtHeight :="
	DefaultWidthLabel  = "fdtWidth :="
	DefaultPiecesLabel = "fdtNr_Of_Pieces_To_Cut :="
)

// Labels names the lines that hold the fields cutsort consumes.
type Labels struct {
	Height string
	Width  string
	Pieces string
}

// DefaultLabels returns the labels written by the CAM exporter.
func DefaultLabels() Labels {
	return Labels{
		Height: DefaultHeightLabel,
		Width:  DefaultWidthLabel,
		Pieces: DefaultPiecesLabel,
	}
}

// Dimension is the (height, width) cross-section of a part. Order matters.
type Dimension struct {
	Height int
	Width  int
}

// String renders the dimension as "HxW", the form used in destination paths.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Height, d.Width)
}

// SplitLines splits content into lines, keeping each line terminator so the
// pieces concatenate back to the original bytes.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the index of the first line containing label, or -1.
func FindLine(lines []string, label string) int {
	for i, line := range lines {
		if strings.Contains(line, label) {
			return i
		}
	}
	return -1
}

// lastToken returns the last whitespace-delimited token of line.
func lastToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FieldValue looks label up in lines. found is false when no line contains the
// label; a matching line whose last token is not a non-negative integer yields
// a *ParseError without a path (callers attach it).
func FieldValue(lines []string, label string) (value int, found bool, err error) {
	idx := FindLine(lines, label)
	if idx < 0 {
		return 0, false, nil
	}
	token := lastToken(lines[idx])
	n, convErr := strconv.Atoi(token)
	if convErr != nil {
		return 0, true, &ParseError{Field: label, Token: token, Err: convErr}
	}
	if n < 0 {
		return 0, true, &ParseError{Field: label, Token: token}
	}
	return n, true, nil
}
