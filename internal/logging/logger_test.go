package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cutsort/internal/config"
	"cutsort/internal/logging"
)

func TestNewFromConfigWritesDailyFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, closer, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("sorted", logging.Int("files", 3))
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	path := logging.LogFilePath(cfg.Paths.LogDir, time.Now())
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &record); err != nil {
		t.Fatalf("expected JSON record in log file, got %q: %v", content, err)
	}
	if record["msg"] != "sorted" || record["level"] != "info" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "sorter").Info("file moved",
		logging.String(logging.FieldFile, "S01/a b.cut"),
		logging.Int("pieces", 12),
	)

	line := buf.String()
	for _, want := range []string{"INFO", "sorter: file moved", `file="S01/a b.cut"`, "pieces=12"} {
		if !strings.Contains(line, want) {
			t.Fatalf("console line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestContextFieldsAreAttached(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithPhase(logging.WithRunID(context.Background(), "run-1"), "merge")
	logger.InfoContext(ctx, "group merged")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldRunID] != "run-1" || record[logging.FieldPhase] != "merge" {
		t.Fatalf("context fields missing: %v", record)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(context.Background(), logger, "fallback used", "routing_fallback",
		logging.String(logging.FieldImpact, "file left in default folder"),
	)

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldEventType] != "routing_fallback" {
		t.Fatalf("event_type = %v", record[logging.FieldEventType])
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error_hint")
	}
	if record[logging.FieldImpact] != "file left in default folder" {
		t.Fatalf("impact overwritten: %v", record[logging.FieldImpact])
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should be disabled at every level")
	}
	logging.NewComponentLogger(nil, "x").Info("ignored")
}

func TestTeeHandlerFansOut(t *testing.T) {
	var first, second bytes.Buffer
	a, _, _ := logging.New(logging.Options{Format: "json", Writer: &first})
	b, _, _ := logging.New(logging.Options{Format: "json", Writer: &second})
	logger := slog.New(logging.TeeHandler(a.Handler(), nil, b.Handler()))
	logger.Info("both")
	if !strings.Contains(first.String(), "both") || !strings.Contains(second.String(), "both") {
		t.Fatalf("expected record in both outputs: %q / %q", first.String(), second.String())
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "cutsort-20200101.log")
	current := filepath.Join(dir, "cutsort-20200102.log")
	other := filepath.Join(dir, "journal.db")
	for _, path := range []string{old, current, other} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		stale := time.Now().AddDate(0, 0, -40)
		if err := os.Chtimes(path, stale, stale); err != nil {
			t.Fatal(err)
		}
	}

	removed := logging.CleanupOldLogs(context.Background(), logging.NewNop(), dir, logging.LogFilePattern, 30, current)
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected %s removed", old)
	}
	for _, path := range []string{current, other} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s kept: %v", path, err)
		}
	}
	if logging.CleanupOldLogs(context.Background(), nil, dir, logging.LogFilePattern, 0) != 0 {
		t.Fatal("retention 0 must disable pruning")
	}
}
