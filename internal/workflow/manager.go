package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cutsort/internal/backup"
	"cutsort/internal/category"
	"cutsort/internal/combine"
	"cutsort/internal/config"
	"cutsort/internal/dedupe"
	"cutsort/internal/failure"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
	"cutsort/internal/naming"
	"cutsort/internal/relocate"
	"cutsort/internal/routing"
	"cutsort/internal/sorter"
)

// ErrRunInProgress is returned when another process holds the run lock.
var ErrRunInProgress = errors.New("another cutsort run is already in progress")

// Manager coordinates locked cutsort operations.
type Manager struct {
	cfg      *config.Config
	base     *slog.Logger
	logger   *slog.Logger
	resolver *routing.Resolver
}

// NewManager constructs a workflow manager using the default routing rules.
func NewManager(cfg *config.Config, logger *slog.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("workflow requires a config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		cfg:      cfg,
		base:     logger,
		logger:   logging.NewComponentLogger(logger, "workflow"),
		resolver: routing.NewResolver(routing.DefaultRules()...),
	}, nil
}

// session is the per-operation wiring handed to phase functions.
type session struct {
	runID     string
	logger    *slog.Logger
	model     *category.Model
	recorder  journal.Recorder
	relocator *relocate.Relocator
}

func (s *session) sorter(cfg *config.Config, resolver *routing.Resolver) *sorter.Sorter {
	srt := sorter.New(s.model, resolver, s.relocator, cfg.Labels(), s.logger, s.recorder)
	srt.ContinueOnError = cfg.ContinueOnError()
	return srt
}

func (s *session) merger(cfg *config.Config) *dedupe.Merger {
	return dedupe.New(cfg.CutList.HeaderLines, cfg.CutList.PiecesLabel, s.logger, s.recorder)
}

func (s *session) renamer(cfg *config.Config) *naming.Renamer {
	return naming.New(cfg.Labels(), s.logger, s.recorder)
}

func (s *session) combiner() *combine.Combiner {
	return combine.New(s.relocator, s.logger, s.recorder)
}

func (s *session) backup(cfg *config.Config) *backup.Manager {
	return backup.New(cfg.Paths.WorkspaceDir, cfg.Paths.BackupDir, s.logger, s.recorder)
}

// execute runs fn under the run lock with a journal row open.
func (m *Manager) execute(ctx context.Context, command string, fn func(context.Context, *session, *Result) error) (Result, error) {
	result := Result{Command: command}

	if err := os.MkdirAll(m.cfg.Paths.LogDir, 0o755); err != nil {
		return result, failure.Wrap(failure.ErrFilesystem, "workflow", "create log dir", m.cfg.Paths.LogDir, err)
	}
	lock := flock.New(m.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return result, failure.Wrap(failure.ErrFilesystem, "workflow", "acquire lock", m.cfg.LockPath(), err)
	}
	if !ok {
		return result, ErrRunInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			m.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	model, err := m.cfg.ProductModel()
	if err != nil {
		return result, err
	}

	var store *journal.Store
	if m.cfg.Journal.Enabled {
		store, err = journal.Open(m.cfg)
		if err != nil {
			return result, err
		}
		defer store.Close()
	}

	sess := &session{
		model:    model,
		recorder: journal.Nop{},
	}
	if store != nil {
		run, err := store.StartRun(ctx, command, model.Name())
		if err != nil {
			return result, err
		}
		sess.runID = run.ID
		sess.recorder = store.Recorder(run.ID)
	} else {
		sess.runID = uuid.NewString()
	}
	result.RunID = sess.runID

	ctx = logging.WithRunID(ctx, sess.runID)
	sess.logger = m.base
	sess.relocator = relocate.New(m.base)

	start := time.Now()
	m.logger.InfoContext(ctx, "run started",
		logging.String("command", command),
		logging.String("model", model.Name()),
		logging.String("workspace", m.cfg.Paths.WorkspaceDir),
		logging.String(logging.FieldEventType, "run_started"),
	)

	runErr := fn(ctx, sess, &result)
	counts := result.Counts()

	if store != nil {
		// The caller's context may already be cancelled; the row still
		// needs closing.
		finishCtx := context.WithoutCancel(ctx)
		if err := store.FinishRun(finishCtx, sess.runID, counts, runErr); err != nil {
			logging.WarnWithContext(ctx, m.logger, "journal run update failed", "journal_write_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "run history shows this run as still running"),
			)
		}
	}

	attrs := []logging.Attr{
		logging.String("command", command),
		logging.Duration("duration", time.Since(start)),
		logging.Int("moved", counts.Moved),
		logging.Int("fallback", counts.Fallback),
		logging.Int("failed", counts.Failed),
		logging.Int("merged_groups", counts.MergedGroups),
		logging.Int("removed_files", counts.RemovedFiles),
		logging.Int("renamed", counts.Renamed),
	}
	if runErr != nil {
		attrs = append(attrs, logging.String("kind", failure.Kind(runErr)), logging.Error(runErr))
		logging.ErrorWithContext(ctx, m.logger, "run failed", "run_failed", attrs...)
		return result, runErr
	}
	attrs = append(attrs, logging.String(logging.FieldEventType, "run_completed"))
	m.logger.InfoContext(ctx, "run completed", logging.Args(attrs...)...)
	return result, nil
}
