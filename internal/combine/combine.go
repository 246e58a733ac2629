// Package combine folds the sibling folders of a directory into one folder
// named after all of them.
package combine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cutsort/internal/failure"
	"cutsort/internal/fileutil"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
	"cutsort/internal/relocate"
)

// Report describes one combine.
type Report struct {
	Target  string
	Sources []string
	Moved   int
}

// Combiner merges sibling folders.
type Combiner struct {
	relocator *relocate.Relocator
	logger    *slog.Logger
	recorder  journal.Recorder
}

// New returns a Combiner moving files through relocator.
func New(relocator *relocate.Relocator, logger *slog.Logger, recorder journal.Recorder) *Combiner {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Combiner{
		relocator: relocator,
		logger:    logging.NewComponentLogger(logger, "combine"),
		recorder:  recorder,
	}
}

// TargetName is the sorted folder names joined by a space.
func TargetName(folders []string) string {
	return strings.Join(folders, " ")
}

// Combine moves the content of every subdirectory of dir into
// dir/<TargetName(subdirs)> and removes the emptied subdirectories. Fewer
// than two subdirectories is a no-op. Name collisions are detected before
// anything moves.
func (c *Combiner) Combine(ctx context.Context, dir string) (Report, error) {
	subdirs, err := fileutil.SubDirs(dir)
	if err != nil {
		return Report{}, failure.Wrap(failure.ErrFilesystem, "combine", "list folder", dir, err)
	}
	if len(subdirs) < 2 {
		return Report{}, nil
	}

	report := Report{Target: filepath.Join(dir, TargetName(subdirs))}
	type move struct {
		from  string
		isDir bool
	}
	var moves []move
	seen := make(map[string]string)
	for _, sub := range subdirs {
		src := filepath.Join(dir, sub)
		report.Sources = append(report.Sources, src)
		entries, err := os.ReadDir(src)
		if err != nil {
			return Report{}, failure.Wrap(failure.ErrFilesystem, "combine", "list folder", src, err)
		}
		for _, entry := range entries {
			if prev, dup := seen[entry.Name()]; dup {
				return Report{}, failure.Wrap(failure.ErrFilesystem, "combine", "name collision",
					entry.Name()+" exists in both "+prev+" and "+sub, os.ErrExist)
			}
			seen[entry.Name()] = sub
			moves = append(moves, move{from: filepath.Join(src, entry.Name()), isDir: entry.IsDir()})
		}
	}

	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if m.isDir {
			if err := os.MkdirAll(report.Target, 0o755); err != nil {
				return report, failure.Wrap(failure.ErrFilesystem, "combine", "create target", report.Target, err)
			}
			target := filepath.Join(report.Target, filepath.Base(m.from))
			if err := os.Rename(m.from, target); err != nil {
				return report, failure.Wrap(failure.ErrFilesystem, "combine", "move folder", m.from, err)
			}
		} else if _, err := c.relocator.Move(ctx, m.from, report.Target); err != nil {
			return report, err
		}
		report.Moved++
	}

	for _, src := range report.Sources {
		if err := os.Remove(src); err != nil {
			return report, failure.Wrap(failure.ErrFilesystem, "combine", "remove emptied folder", src, err)
		}
	}
	if report.Moved == 0 {
		if err := os.MkdirAll(report.Target, 0o755); err != nil {
			return report, failure.Wrap(failure.ErrFilesystem, "combine", "create target", report.Target, err)
		}
	}

	if err := c.recorder.Record(ctx, journal.Event{
		Phase:  "combine",
		Action: journal.ActionCombine,
		Source: strings.Join(report.Sources, ", "),
		Target: report.Target,
	}); err != nil {
		logging.WarnWithContext(ctx, c.logger, "journal write failed", "journal_write_failed", logging.Error(err))
	}
	c.logger.InfoContext(ctx, "folders combined",
		logging.String("target", report.Target),
		logging.Int("folders", len(report.Sources)),
		logging.Int("entries", report.Moved),
		logging.String(logging.FieldEventType, "folders_combined"),
	)
	return report, nil
}
