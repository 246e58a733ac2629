package fileutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCopyFileMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileMode(src, dst, 0o755); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	// Check executable bits are set (umask may clear some bits).
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected executable bits, got %o", info.Mode().Perm())
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "A.cut")
	dst := filepath.Join(dir, "B.cut")

	content := []byte("fdtHeight := 28\nfdtWidth := 70\n")
	if err := os.WriteFile(src, content, 0o640); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o007 != 0 {
		t.Fatalf("expected source permissions to carry over, got %o", info.Mode().Perm())
	}
}

func TestCopyFileVerifiedRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "A.cut")
	dst := filepath.Join(dir, "B.cut")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(src, dst); err == nil {
		t.Fatal("expected error for existing target")
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "old" {
		t.Fatalf("existing target overwritten: %q", got)
	}
}

func TestCopyFileVerified_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFileVerified(filepath.Join(dir, "nonexistent"), filepath.Join(dir, "dst.bin"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")

	mustWrite(t, filepath.Join(src, "root", "S01", "a.cut"), "a")
	mustWrite(t, filepath.Join(src, "root", "S02", "b.cut"), "b")
	if err := os.MkdirAll(filepath.Join(src, "default"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	for rel, want := range map[string]string{"root/S01/a.cut": "a", "root/S02/b.cut": "b"} {
		got, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(got) != want {
			t.Fatalf("%s = %q, want %q", rel, got, want)
		}
	}
	if info, err := os.Stat(filepath.Join(dst, "default")); err != nil || !info.IsDir() {
		t.Fatalf("empty directory not recreated: %v", err)
	}
}

func TestCopyTreeRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	mustWrite(t, file, "x")
	if err := CopyTree(file, filepath.Join(dir, "out")); err == nil {
		t.Fatal("expected error for non-directory source")
	}
}

func TestListings(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.cut"), "b")
	mustWrite(t, filepath.Join(dir, "a.cut"), "a")
	mustWrite(t, filepath.Join(dir, "S02", "x"), "x")
	if err := os.MkdirAll(filepath.Join(dir, "S01"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := RegularFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.cut", "b.cut"}; !reflect.DeepEqual(files, want) {
		t.Fatalf("RegularFiles = %v, want %v", files, want)
	}
	dirs, err := SubDirs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"S01", "S02"}; !reflect.DeepEqual(dirs, want) {
		t.Fatalf("SubDirs = %v, want %v", dirs, want)
	}

	empty, err := IsEmptyDir(filepath.Join(dir, "S01"))
	if err != nil || !empty {
		t.Fatalf("IsEmptyDir(S01) = %v, %v; want true", empty, err)
	}
	empty, err = IsEmptyDir(filepath.Join(dir, "S02"))
	if err != nil || empty {
		t.Fatalf("IsEmptyDir(S02) = %v, %v; want false", empty, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
