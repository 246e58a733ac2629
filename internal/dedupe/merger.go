package dedupe

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cutsort/internal/cutlist"
	"cutsort/internal/failure"
	"cutsort/internal/fileutil"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
)

// DefaultHeaderLines is the number of leading lines excluded from comparison.
const DefaultHeaderLines = 7

// Group is a set of duplicate files, sorted by name. Members[0] is the
// representative.
type Group struct {
	Members []string
	// HeaderOnly is set when the members have no lines past the header, so
	// they were grouped on an empty body.
	HeaderOnly bool
}

// Representative is the file that survives a merge.
func (g Group) Representative() string { return g.Members[0] }

// MergedGroup describes one applied merge.
type MergedGroup struct {
	Representative string
	Removed        []string
	Total          int
}

// Report is the outcome of merging one folder.
type Report struct {
	Folder string
	Groups []MergedGroup
}

// RemovedCount is the number of files deleted.
func (r Report) RemovedCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Removed)
	}
	return n
}

// Merger finds and collapses duplicate groups.
type Merger struct {
	HeaderLines int
	PiecesLabel string

	logger   *slog.Logger
	recorder journal.Recorder
}

// New returns a Merger. A nil recorder disables journaling.
func New(headerLines int, piecesLabel string, logger *slog.Logger, recorder journal.Recorder) *Merger {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Merger{
		HeaderLines: headerLines,
		PiecesLabel: piecesLabel,
		logger:      logging.NewComponentLogger(logger, "dedupe"),
		recorder:    recorder,
	}
}

// Groups returns the duplicate groups of folder without changing anything.
// Only regular files directly inside folder are considered; groups of one
// are omitted. Groups are ordered by representative name.
func (m *Merger) Groups(folder string) ([]Group, error) {
	names, err := fileutil.RegularFiles(folder)
	if err != nil {
		return nil, failure.Wrap(failure.ErrFilesystem, "dedupe", "list folder", folder, err)
	}

	byBody := make(map[string]int, len(names))
	var groups []Group
	for _, name := range names {
		path := filepath.Join(folder, name)
		lines, err := cutlist.ReadLines(path)
		if err != nil {
			return nil, err
		}
		key := body(lines, m.HeaderLines)
		if idx, ok := byBody[key]; ok {
			groups[idx].Members = append(groups[idx].Members, path)
			continue
		}
		byBody[key] = len(groups)
		groups = append(groups, Group{Members: []string{path}, HeaderOnly: key == ""})
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Members) > 1 {
			out = append(out, g)
		}
	}
	return out, nil
}

func body(lines []string, header int) string {
	if header < 0 {
		header = 0
	}
	if header >= len(lines) {
		return ""
	}
	return strings.Join(lines[header:], "")
}

// Merge collapses every duplicate group in folder. Each group is validated
// (all piece counts readable) before anything in it is modified.
func (m *Merger) Merge(ctx context.Context, folder string) (Report, error) {
	report := Report{Folder: folder}
	groups, err := m.Groups(folder)
	if err != nil {
		return report, err
	}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		merged, err := m.mergeGroup(ctx, group)
		if err != nil {
			return report, err
		}
		report.Groups = append(report.Groups, merged)
	}
	return report, nil
}

func (m *Merger) mergeGroup(ctx context.Context, group Group) (MergedGroup, error) {
	if group.HeaderOnly {
		logging.WarnWithContext(ctx, m.logger, "merging files with no body past the header", "empty_body_group",
			logging.String(logging.FieldFile, group.Representative()),
			logging.Int("members", len(group.Members)),
			logging.Int("header_lines", m.HeaderLines),
			logging.String(logging.FieldImpact, "files may be merged even though their headers differ"),
			logging.String(logging.FieldErrorHint, "check cut_list.header_lines against the export format"),
		)
	}
	total := 0
	for _, member := range group.Members {
		pieces, err := cutlist.RequireField(member, m.PiecesLabel)
		if err != nil {
			return MergedGroup{}, err
		}
		total += pieces
	}

	rep := group.Representative()
	if err := cutlist.SetField(rep, m.PiecesLabel, total); err != nil {
		return MergedGroup{}, err
	}
	m.record(ctx, journal.Event{
		Action: journal.ActionMerge,
		Target: rep,
		Detail: fmt.Sprintf("pieces=%d members=%d", total, len(group.Members)),
	})

	merged := MergedGroup{Representative: rep, Total: total}
	for _, member := range group.Members[1:] {
		if err := os.Remove(member); err != nil {
			return merged, failure.Wrap(failure.ErrFilesystem, "dedupe", "remove duplicate", member, err)
		}
		merged.Removed = append(merged.Removed, member)
		m.record(ctx, journal.Event{Action: journal.ActionRemove, Source: member, Target: rep})
	}

	m.logger.InfoContext(ctx, "duplicates merged",
		logging.String(logging.FieldFile, rep),
		logging.Int("members", len(group.Members)),
		logging.Int("pieces", total),
		logging.String(logging.FieldEventType, "duplicates_merged"),
	)
	return merged, nil
}

func (m *Merger) record(ctx context.Context, event journal.Event) {
	if event.Phase == "" {
		event.Phase = "merge"
	}
	if err := m.recorder.Record(ctx, event); err != nil {
		logging.WarnWithContext(ctx, m.logger, "journal write failed", "journal_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run history is incomplete"),
			logging.String(logging.FieldErrorHint, "check the journal database path and permissions"),
		)
	}
}

// MergeTree applies Merge to root and every directory below it that directly
// contains regular files, in lexical walk order.
func (m *Merger) MergeTree(ctx context.Context, root string) ([]Report, error) {
	var reports []Report
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return failure.Wrap(failure.ErrFilesystem, "dedupe", "walk", path, walkErr)
		}
		if !d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		files, err := fileutil.RegularFiles(path)
		if err != nil {
			return failure.Wrap(failure.ErrFilesystem, "dedupe", "list folder", path, err)
		}
		if len(files) < 2 {
			return nil
		}
		report, err := m.Merge(ctx, path)
		if len(report.Groups) > 0 {
			reports = append(reports, report)
		}
		return err
	})
	return reports, err
}
