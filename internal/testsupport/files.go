package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// HeaderLines is the number of geometry lines CutList.Render emits before the
// operation body. It matches the merger default.
const HeaderLines = 7

// CutList describes a synthetic CAM export. Height, width and piece count
// live in the header so two parts with the same body differ only there.
type CutList struct {
	Name   string
	Height int
	Width  int
	Length int
	Pieces int
	Body   []string
}

// Render produces the file content for c.
func (c CutList) Render() string {
	name := c.Name
	if name == "" {
		name = "PART"
	}
	length := c.Length
	if length == 0 {
		length = 2400
	}
	body := c.Body
	if body == nil {
		body = []string{"fdtOperation := SAW", "fdtAngle := 90", "fdtOffset := 0"}
	}

	var b strings.Builder
	b.WriteString("[Header]\n")
	fmt.Fprintf(&b, "fdtName := %s\n", name)
	fmt.Fprintf(&b, "fdtHeight := %d\n", c.Height)
	fmt.Fprintf(&b, "fdtWidth := %d\n", c.Width)
	fmt.Fprintf(&b, "fdtLength := %d\n", length)
	fmt.Fprintf(&b, "fdtNr_Of_Pieces_To_Cut := %d\n", c.Pieces)
	b.WriteString("fdtMaterial := C24\n")
	b.WriteString("[Operations]\n")
	for _, line := range body {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteCutList renders c into dir/name and returns the full path.
func WriteCutList(t testing.TB, dir, name string, c CutList) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteText(t, path, c.Render())
	return path
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadText returns the content of path or fails the test.
func ReadText(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// ListNames returns the sorted entry names of dir or fails the test.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
