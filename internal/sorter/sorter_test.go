package sorter_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cutsort/internal/category"
	"cutsort/internal/config"
	"cutsort/internal/cutlist"
	"cutsort/internal/failure"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
	"cutsort/internal/relocate"
	"cutsort/internal/routing"
	"cutsort/internal/sorter"
	"cutsort/internal/testsupport"
)

func newSorter(t *testing.T, cfg *config.Config, rec journal.Recorder) *sorter.Sorter {
	t.Helper()
	return newLoggedSorter(t, cfg, rec, logging.NewNop())
}

func newLoggedSorter(t *testing.T, cfg *config.Config, rec journal.Recorder, logger *slog.Logger) *sorter.Sorter {
	t.Helper()
	model, err := cfg.ProductModel()
	if err != nil {
		t.Fatalf("ProductModel: %v", err)
	}
	s := sorter.New(model, routing.NewResolver(), relocate.New(logging.NewNop()), cfg.Labels(), logger, rec)
	s.ContinueOnError = cfg.ContinueOnError()
	return s
}

func layout(cfg *config.Config) sorter.Layout {
	return sorter.Layout{Root: cfg.RootDir(), Destination: cfg.DestinationDir(), Default: cfg.DefaultDir()}
}

func TestSortRoutesExtWallBatten(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S01"), "a.cut", testsupport.CutList{Height: 28, Width: 70, Pieces: 5})

	rec := &testsupport.EventRecorder{}
	summary, err := newSorter(t, cfg, rec).Sort(context.Background(), layout(cfg))
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := filepath.Join(cfg.DestinationDir(), "BATTEN", "EXT_WALL", "LEVEL_1", "28x70", "BATTEN", "a.cut")
	if !testsupport.Exists(want) {
		t.Fatalf("expected %s", want)
	}
	if summary.Moved != 1 || summary.Fallback != 0 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Entries[0].Destination.Rule != "ext-wall-batten" {
		t.Fatalf("rule = %q", summary.Entries[0].Destination.Rule)
	}
	if len(rec.Events) != 1 || rec.Events[0].Action != journal.ActionMove || rec.Events[0].Phase != "sort" {
		t.Fatalf("unexpected events: %+v", rec.Events)
	}
}

func TestSortPrefixesSideForMultiUnitProducts(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithModel("CM03"))
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S03"), "lgha.cut", testsupport.CutList{Height: 10, Width: 20})

	if _, err := newSorter(t, cfg, nil).Sort(context.Background(), layout(cfg)); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := filepath.Join(cfg.DestinationDir(), "LEFT", "FRAME", "LGHA", "S03", "FRAME", "lgha.cut")
	if !testsupport.Exists(want) {
		t.Fatalf("expected %s", want)
	}
}

func TestSortFallbackGoesToDefaultFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S02"), "odd.cut", testsupport.CutList{Height: 45, Width: 95})

	rec := &testsupport.EventRecorder{}
	summary, err := newSorter(t, cfg, rec).Sort(context.Background(), layout(cfg))
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if !testsupport.Exists(filepath.Join(cfg.DefaultDir(), "odd.cut")) {
		t.Fatal("expected file in default folder")
	}
	if summary.Fallback != 1 || !summary.Entries[0].Fallback() {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if rec.Actions()[0] != journal.ActionFallback {
		t.Fatalf("actions = %v", rec.Actions())
	}
}

func TestSortAbortsOnUnknownFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "A-UNKNOWN"), "x.cut", testsupport.CutList{Height: 28, Width: 70})
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S01"), "a.cut", testsupport.CutList{Height: 28, Width: 70})

	summary, err := newSorter(t, cfg, nil).Sort(context.Background(), layout(cfg))
	var unknown *category.UnknownCategoryError
	if !errors.As(err, &unknown) || unknown.Folder != "A-UNKNOWN" {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if summary.Failed != 1 || summary.Moved != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !testsupport.Exists(filepath.Join(testsupport.SourceFolder(cfg, "S01"), "a.cut")) {
		t.Fatal("batch continued after abort")
	}
}

func TestSortWarnsAboutEmptyUnknownFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(testsupport.SourceFolder(cfg, "MYSTERY"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S01"), "a.cut", testsupport.CutList{Height: 28, Width: 70})

	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	summary, err := newLoggedSorter(t, cfg, nil, logger).Sort(context.Background(), layout(cfg))
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if summary.Moved != 1 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	out := buf.String()
	if !strings.Contains(out, `"event_type":"unknown_folder"`) || !strings.Contains(out, `"folder":"MYSTERY"`) {
		t.Fatalf("expected unknown_folder warning, got %s", out)
	}
}

func TestSortContinuesWhenConfigured(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOnError(config.OnErrorContinue))
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "A-UNKNOWN"), "x.cut", testsupport.CutList{Height: 28, Width: 70})
	testsupport.WriteText(t, filepath.Join(testsupport.SourceFolder(cfg, "S01"), "broken.cut"), "fdtHeight := abc\nfdtWidth := 70\n")
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S01"), "good.cut", testsupport.CutList{Height: 28, Width: 70})

	rec := &testsupport.EventRecorder{}
	summary, err := newSorter(t, cfg, rec).Sort(context.Background(), layout(cfg))
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if summary.Failed != 2 || summary.Moved != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	errs := summary.Errors()
	if !errors.Is(errs[0], failure.ErrUnknownCategory) || !errors.Is(errs[1], failure.ErrParse) {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []string{journal.ActionFailure, journal.ActionFailure, journal.ActionMove}
	if !reflect.DeepEqual(rec.Actions(), want) {
		t.Fatalf("actions = %v, want %v", rec.Actions(), want)
	}
	if got := summary.Counts(); got.Failed != 2 || got.Moved != 1 {
		t.Fatalf("counts = %+v", got)
	}
}

func TestPlanDoesNotMove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	src := testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "P1"), "floor.cut", testsupport.CutList{Height: 45, Width: 220})
	testsupport.WriteText(t, filepath.Join(testsupport.SourceFolder(cfg, "P1"), "nodim.cut"), "fdtName := x\n")

	entries, err := newSorter(t, cfg, nil).Plan(context.Background(), layout(cfg))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if got, want := entries[0].Destination.Relative(), "FRAME/FLOOR/DEFAULT_LEVEL/P1/FRAME"; got != want {
		t.Fatalf("destination = %q, want %q", got, want)
	}
	if entries[0].Dimension != (cutlist.Dimension{Height: 45, Width: 220}) {
		t.Fatalf("dimension = %v", entries[0].Dimension)
	}
	if !errors.Is(entries[1].Err, failure.ErrParse) {
		t.Fatalf("expected parse error on second entry, got %v", entries[1].Err)
	}
	if !testsupport.Exists(src) {
		t.Fatal("Plan moved a file")
	}
}

func TestSortStopsOnCancel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCutList(t, testsupport.SourceFolder(cfg, "S01"), "a.cut", testsupport.CutList{Height: 28, Width: 70})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newSorter(t, cfg, nil).Sort(ctx, layout(cfg)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
