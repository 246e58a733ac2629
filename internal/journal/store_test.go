package journal_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cutsort/internal/failure"
	"cutsort/internal/journal"
	"cutsort/internal/testsupport"
)

func TestRunLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)
	ctx := context.Background()

	run := testsupport.StartRun(t, store, "run")
	if run.ID == "" || run.Status != journal.StatusRunning {
		t.Fatalf("unexpected run: %+v", run)
	}

	rec := store.Recorder(run.ID)
	events := []journal.Event{
		{Phase: "sort", Action: journal.ActionMove, Source: "root/S01/a.cut", Target: "destination/BATTEN/a.cut", Rule: "ext-wall-batten"},
		{Phase: "sort", Action: journal.ActionFallback, Source: "root/S02/b.cut", Target: "default/b.cut"},
		{Phase: "merge", Action: journal.ActionMerge, Target: "destination/BATTEN/a.cut", Detail: "pieces=12"},
	}
	for _, ev := range events {
		if err := rec.Record(ctx, ev); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	counts := journal.Counts{Moved: 1, Fallback: 1}.Add(journal.Counts{MergedGroups: 1, RemovedFiles: 1})
	if err := store.FinishRun(ctx, run.ID, counts, nil); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := store.FindRun(ctx, run.ID[:8])
	if err != nil {
		t.Fatalf("FindRun: %v", err)
	}
	if got == nil || got.ID != run.ID {
		t.Fatalf("FindRun returned %+v", got)
	}
	if got.Status != journal.StatusSucceeded || got.Counts != counts {
		t.Fatalf("unexpected finished run: %+v", got)
	}
	if got.FinishedAt.IsZero() || got.Duration() < 0 {
		t.Fatalf("expected finish time, got %+v", got)
	}

	stored, err := store.Events(ctx, run.ID)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(stored) != len(events) {
		t.Fatalf("events = %d, want %d", len(stored), len(events))
	}
	if stored[0].Rule != "ext-wall-batten" || stored[1].Action != journal.ActionFallback || stored[2].Detail != "pieces=12" {
		t.Fatalf("unexpected events: %+v", stored)
	}
	for _, ev := range stored {
		if ev.RunID != run.ID {
			t.Fatalf("event bound to %q, want %q", ev.RunID, run.ID)
		}
	}
}

func TestFinishRunRecordsFailureKind(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)
	ctx := context.Background()

	run := testsupport.StartRun(t, store, "sort")
	runErr := failure.Wrap(failure.ErrFilesystem, "relocate", "move", "a.cut", errors.New("disk full"))
	if err := store.FinishRun(ctx, run.ID, journal.Counts{Failed: 1}, runErr); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := store.FindRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("FindRun: %v", err)
	}
	if got.Status != journal.StatusFailed || got.ErrorKind != failure.KindFilesystem {
		t.Fatalf("unexpected failed run: %+v", got)
	}
	if !strings.Contains(got.ErrorMessage, "disk full") {
		t.Fatalf("error message = %q", got.ErrorMessage)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)
	ctx := context.Background()

	first := testsupport.StartRun(t, store, "run")
	second := testsupport.StartRun(t, store, "merge")

	runs, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", runs)
	}
	limited, err := store.Runs(ctx, 1)
	if err != nil {
		t.Fatalf("Runs(limit): %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %d rows", len(limited))
	}
}

func TestFindRunMissingAndInvalid(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenJournal(t, cfg)
	ctx := context.Background()

	got, err := store.FindRun(ctx, "does-not-exist")
	if err != nil || got != nil {
		t.Fatalf("FindRun(missing) = %+v, %v", got, err)
	}
	if _, err := store.FindRun(ctx, " "); err == nil {
		t.Fatal("expected error for empty identifier")
	}
	if err := store.FinishRun(ctx, "does-not-exist", journal.Counts{}, nil); err == nil {
		t.Fatal("expected error finishing unknown run")
	}
	if err := store.Record(ctx, journal.Event{Phase: "sort", Action: journal.ActionMove}); err == nil {
		t.Fatal("expected error recording without run id")
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	store, err := journal.OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	run, err := store.StartRun(context.Background(), "run", "CM03")
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := journal.OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.FindRun(context.Background(), run.ID)
	if err != nil || got == nil || got.Model != "CM03" {
		t.Fatalf("history lost after reopen: %+v, %v", got, err)
	}
}

func TestOpenRefusesOtherSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	store, err := journal.OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("update version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	_, err = journal.OpenPath(path)
	if !errors.Is(err, journal.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name the journal file", err)
	}
}

func TestNopRecorder(t *testing.T) {
	var rec journal.Recorder = journal.Nop{}
	if err := rec.Record(context.Background(), journal.Event{}); err != nil {
		t.Fatalf("Nop.Record: %v", err)
	}
}
