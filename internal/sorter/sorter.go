package sorter

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"cutsort/internal/category"
	"cutsort/internal/cutlist"
	"cutsort/internal/failure"
	"cutsort/internal/fileutil"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
	"cutsort/internal/relocate"
	"cutsort/internal/routing"
)

// Layout names the three trees a batch touches.
type Layout struct {
	Root        string
	Destination string
	Default     string
}

// Entry is the classification of one file.
type Entry struct {
	Source      string
	Folder      string
	Category    category.Category
	Dimension   cutlist.Dimension
	Destination routing.Destination
	// Target is the resolved folder (or the moved path after Sort).
	Target string
	Err    error
}

// Fallback reports whether no rule claimed the file.
func (e Entry) Fallback() bool { return e.Err == nil && e.Destination.Fallback }

// Summary is the outcome of a Sort.
type Summary struct {
	Entries  []Entry
	Moved    int
	Fallback int
	Failed   int
}

// Counts converts the summary into journal counts.
func (s Summary) Counts() journal.Counts {
	return journal.Counts{Moved: s.Moved, Fallback: s.Fallback, Failed: s.Failed}
}

// Errors returns the per-file failures in processing order.
func (s Summary) Errors() []error {
	var errs []error
	for _, e := range s.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errs
}

// Sorter classifies and moves files.
type Sorter struct {
	ContinueOnError bool

	model     *category.Model
	resolver  *routing.Resolver
	relocator *relocate.Relocator
	labels    cutlist.Labels
	logger    *slog.Logger
	recorder  journal.Recorder
}

// New assembles a Sorter. A nil recorder disables journaling.
func New(model *category.Model, resolver *routing.Resolver, relocator *relocate.Relocator, labels cutlist.Labels, logger *slog.Logger, recorder journal.Recorder) *Sorter {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Sorter{
		model:     model,
		resolver:  resolver,
		relocator: relocator,
		labels:    labels,
		logger:    logging.NewComponentLogger(logger, "sorter"),
		recorder:  recorder,
	}
}

// Plan classifies every file under layout.Root without moving anything.
// Per-file failures are reported on the entries; the error return is for
// failures to read the tree itself.
func (s *Sorter) Plan(ctx context.Context, layout Layout) ([]Entry, error) {
	var entries []Entry
	err := s.walk(ctx, layout, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// Sort classifies and moves every file under layout.Root.
func (s *Sorter) Sort(ctx context.Context, layout Layout) (Summary, error) {
	var summary Summary
	err := s.walk(ctx, layout, func(e Entry) error {
		if e.Err == nil {
			moved, err := s.relocator.Move(ctx, e.Source, e.Target)
			if err != nil {
				e.Err = err
			} else {
				e.Target = moved
			}
		}
		summary.Entries = append(summary.Entries, e)

		switch {
		case e.Err != nil:
			summary.Failed++
			s.fail(ctx, e)
			if !s.ContinueOnError {
				return e.Err
			}
		case e.Destination.Fallback:
			summary.Fallback++
			logging.WarnWithContext(ctx, s.logger, "no routing rule matched; file sent to default folder", "routing_fallback",
				logging.String(logging.FieldFile, e.Source),
				logging.String("category", e.Category.String()),
				logging.String("dimension", e.Dimension.String()),
				logging.String(logging.FieldImpact, "file needs manual placement"),
				logging.String(logging.FieldErrorHint, "extend the routing rules or the category table"),
			)
			s.record(ctx, journal.Event{Action: journal.ActionFallback, Source: e.Source, Target: e.Target})
		default:
			summary.Moved++
			s.record(ctx, journal.Event{Action: journal.ActionMove, Source: e.Source, Target: e.Target, Rule: e.Destination.Rule})
		}
		return nil
	})

	s.logger.InfoContext(ctx, "sort finished",
		logging.Int("moved", summary.Moved),
		logging.Int("fallback", summary.Fallback),
		logging.Int("failed", summary.Failed),
		logging.String(logging.FieldEventType, "sort_finished"),
	)
	return summary, err
}

// walk visits files folder by folder and hands each classification to visit.
func (s *Sorter) walk(ctx context.Context, layout Layout, visit func(Entry) error) error {
	folders, err := fileutil.SubDirs(layout.Root)
	if err != nil {
		return failure.Wrap(failure.ErrFilesystem, "sorter", "list root", layout.Root, err)
	}
	if stray, err := fileutil.RegularFiles(layout.Root); err == nil && len(stray) > 0 {
		logging.WarnWithContext(ctx, s.logger, "files directly under root are ignored", "stray_files",
			logging.String("root", layout.Root),
			logging.Int("count", len(stray)),
			logging.String(logging.FieldImpact, "these files are not sorted"),
			logging.String(logging.FieldErrorHint, "place cut lists inside a category folder"),
		)
	}

	for _, folder := range folders {
		dir := filepath.Join(layout.Root, folder)
		files, err := fileutil.RegularFiles(dir)
		if err != nil {
			return failure.Wrap(failure.ErrFilesystem, "sorter", "list folder", dir, err)
		}
		cat, catErr := s.model.Lookup(folder)
		if catErr != nil && len(files) == 0 {
			logging.WarnWithContext(ctx, s.logger, "folder not in product table", "unknown_folder",
				logging.String("folder", folder),
				logging.String(logging.FieldImpact, "files placed here later will fail to sort"),
				logging.String(logging.FieldErrorHint, "add the folder to the product table or rename it"),
			)
		}
		for _, name := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := Entry{Source: filepath.Join(dir, name), Folder: folder, Category: cat, Err: catErr}
			if entry.Err == nil {
				s.classify(&entry, layout)
			}
			if err := visit(entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Sorter) classify(e *Entry, layout Layout) {
	dim, err := cutlist.ReadDimension(e.Source, s.labels)
	if err != nil {
		e.Err = err
		return
	}
	e.Dimension = dim
	e.Destination = s.resolver.Resolve(routing.Input{
		Side:      e.Category.Side,
		PartType:  e.Category.PartType,
		Level:     e.Category.Level,
		Dimension: dim,
		Parent:    e.Folder,
	}, layout.Default)
	e.Target = e.Destination.Path(layout.Destination)
}

func (s *Sorter) fail(ctx context.Context, e Entry) {
	attrs := []logging.Attr{
		logging.String(logging.FieldFile, e.Source),
		logging.String("kind", failure.Kind(e.Err)),
		logging.Error(e.Err),
	}
	var unknown *category.UnknownCategoryError
	if errors.As(e.Err, &unknown) {
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "add the folder to the product table or rename it"))
	}
	logging.ErrorWithContext(ctx, s.logger, "file not sorted", "sort_failed", attrs...)
	s.record(ctx, journal.Event{Action: journal.ActionFailure, Source: e.Source, Kind: failure.Kind(e.Err), Detail: e.Err.Error()})
}

func (s *Sorter) record(ctx context.Context, event journal.Event) {
	event.Phase = "sort"
	if err := s.recorder.Record(ctx, event); err != nil {
		logging.WarnWithContext(ctx, s.logger, "journal write failed", "journal_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run history is incomplete"),
		)
	}
}
