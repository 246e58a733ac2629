// Package naming renames the files of a destination folder into a canonical
// numbered sequence.
//
// Files are taken in name order and numbered from 1, zero-padded to three
// digits:
//
//	index:     <folder>.001, <folder>.002, ...
//	dimension: <folder>-45x195.001, <folder>-28x70.002, ...
//
// Renames go through temporary names first so a target never clobbers a
// member that has not been renamed yet.
package naming

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

// Mode selects the naming scheme.
type Mode string

const (
	ModeIndex     Mode = "index"
	ModeDimension Mode = "dimension"
)

// ParseMode validates a mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeIndex:
		return ModeIndex, nil
	case ModeDimension:
		return ModeDimension, nil
	default:
		return "", fmt.Errorf("%w: rename mode must be %q or %q, got %q", failure.ErrConfiguration, ModeIndex, ModeDimension, value)
	}
}

const tempPrefix = ".cutsort-rename-"

// Rename is one applied rename.
type Rename struct {
	From string
	To   string
}

// Report lists the renames applied to one folder.
type Report struct {
	Dir     string
	Renames []Rename
}

// Renamer applies a naming scheme.
type Renamer struct {
	labels   cutlist.Labels
	logger   *slog.Logger
	recorder journal.Recorder
	// rename is swapped in tests to fail part way through a folder.
	rename func(oldpath, newpath string) error
}

// New returns a Renamer. labels are used by the dimension scheme.
func New(labels cutlist.Labels, logger *slog.Logger, recorder journal.Recorder) *Renamer {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Renamer{
		labels:   labels,
		logger:   logging.NewComponentLogger(logger, "naming"),
		recorder: recorder,
		rename:   os.Rename,
	}
}

// Plan computes the renames for dir without touching the filesystem.
func (r *Renamer) Plan(dir string, mode Mode) ([]Rename, error) {
	names, err := fileutil.RegularFiles(dir)
	if err != nil {
		return nil, failure.Wrap(failure.ErrFilesystem, "naming", "list folder", dir, err)
	}
	folder := filepath.Base(dir)
	plan := make([]Rename, 0, len(names))
	for i, name := range names {
		from := filepath.Join(dir, name)
		var base string
		switch mode {
		case ModeIndex:
			base = fmt.Sprintf("%s.%03d", folder, i+1)
		case ModeDimension:
			dim, err := cutlist.ReadDimension(from, r.labels)
			if err != nil {
				return nil, err
			}
			base = fmt.Sprintf("%s-%s.%03d", folder, dim, i+1)
		default:
			return nil, fmt.Errorf("%w: unknown rename mode %q", failure.ErrConfiguration, mode)
		}
		plan = append(plan, Rename{From: from, To: filepath.Join(dir, base)})
	}
	return plan, nil
}

// Rename applies mode to the regular files directly inside dir.
func (r *Renamer) Rename(ctx context.Context, dir string, mode Mode) (Report, error) {
	report := Report{Dir: dir}
	plan, err := r.Plan(dir, mode)
	if err != nil {
		return report, err
	}
	if err := checkTargets(plan); err != nil {
		return report, err
	}

	temps := make([]string, len(plan))
	for i, step := range plan {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		temps[i] = filepath.Join(dir, fmt.Sprintf("%s%04d", tempPrefix, i))
		if err := r.rename(step.From, temps[i]); err != nil {
			return report, failure.Wrap(failure.ErrFilesystem, "naming", "rename to temporary",
				step.From+stranded(plan[:i], temps[:i]), err)
		}
	}
	for i, step := range plan {
		if err := r.rename(temps[i], step.To); err != nil {
			return report, failure.Wrap(failure.ErrFilesystem, "naming", "rename",
				temps[i]+stranded(plan[i:], temps[i:]), err)
		}
		report.Renames = append(report.Renames, step)
		if step.From == step.To {
			continue
		}
		if err := r.recorder.Record(ctx, journal.Event{Phase: "rename", Action: journal.ActionRename, Source: step.From, Target: step.To}); err != nil {
			logging.WarnWithContext(ctx, r.logger, "journal write failed", "journal_write_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "run history is incomplete"),
			)
		}
	}

	r.logger.InfoContext(ctx, "folder renamed",
		logging.String("dir", dir),
		logging.String("mode", string(mode)),
		logging.Int("files", len(plan)),
		logging.String(logging.FieldEventType, "folder_renamed"),
	)
	return report, nil
}

// stranded lists the files left under temporary names when a rename fails,
// paired with their original names so an operator can put them back.
func stranded(plan []Rename, temps []string) string {
	if len(temps) == 0 {
		return ""
	}
	pairs := make([]string, len(temps))
	for i, temp := range temps {
		pairs[i] = fmt.Sprintf("%s was %s", filepath.Base(temp), filepath.Base(plan[i].From))
	}
	return " (left under temporary names: " + strings.Join(pairs, ", ") + ")"
}

// A planned name may already be taken by something that is not part of the
// plan (a subdirectory, a leftover temporary).
func checkTargets(plan []Rename) error {
	members := make(map[string]struct{}, len(plan))
	for _, step := range plan {
		members[step.From] = struct{}{}
	}
	for _, step := range plan {
		if _, ok := members[step.To]; ok {
			continue
		}
		if _, err := os.Lstat(step.To); err == nil {
			return failure.Wrap(failure.ErrFilesystem, "naming", "rename", step.To, fs.ErrExist)
		}
	}
	return nil
}

// RenameTree applies mode to root and every directory below it that
// directly contains regular files.
func (r *Renamer) RenameTree(ctx context.Context, root string, mode Mode) ([]Report, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return failure.Wrap(failure.ErrFilesystem, "naming", "walk", path, walkErr)
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var reports []Report
	for _, dir := range dirs {
		files, err := fileutil.RegularFiles(dir)
		if err != nil {
			return reports, failure.Wrap(failure.ErrFilesystem, "naming", "list folder", dir, err)
		}
		if len(files) == 0 {
			continue
		}
		report, err := r.Rename(ctx, dir, mode)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}
