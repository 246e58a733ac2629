package workflow

import (
	"context"
	"errors"
	"fmt"

	"cutsort/internal/logging"
	"cutsort/internal/naming"
	"cutsort/internal/sorter"
)

// Run executes the full workflow: restore, sort, merge, rename.
func (m *Manager) Run(ctx context.Context) (Result, error) {
	result, err := m.execute(ctx, CommandRun, func(ctx context.Context, s *session, result *Result) error {
		if m.cfg.Run.RestoreFromBackup {
			if err := m.cfg.EnsureDirectories(); err != nil {
				return err
			}
			if err := s.backup(m.cfg).Restore(logging.WithPhase(ctx, PhaseRestore)); err != nil {
				return err
			}
			result.Restored = true
		}
		if err := m.cfg.EnsureDirectories(); err != nil {
			return err
		}
		if err := m.runPreflightChecks(ctx); err != nil {
			return err
		}

		sortErr := m.sortPhase(ctx, s, result)
		if sortErr != nil && !m.cfg.ContinueOnError() {
			return sortErr
		}

		if m.cfg.Run.Merge {
			reports, err := s.merger(m.cfg).MergeTree(logging.WithPhase(ctx, PhaseMerge), m.cfg.DestinationDir())
			result.Merges = reports
			if err != nil {
				return errors.Join(sortErr, err)
			}
		}

		if mode, ok := m.renameMode(); ok {
			reports, err := s.renamer(m.cfg).RenameTree(logging.WithPhase(ctx, PhaseRename), m.cfg.DestinationDir(), mode)
			result.Renames = reports
			if err != nil {
				return errors.Join(sortErr, err)
			}
		}
		return sortErr
	})
	m.pruneLogs(ctx)
	return result, err
}

// Sort executes only the classification-and-move phase.
func (m *Manager) Sort(ctx context.Context) (Result, error) {
	return m.execute(ctx, CommandSort, func(ctx context.Context, s *session, result *Result) error {
		if err := m.cfg.EnsureDirectories(); err != nil {
			return err
		}
		if err := m.runPreflightChecks(ctx); err != nil {
			return err
		}
		return m.sortPhase(ctx, s, result)
	})
}

// sortPhase runs the sorter. Under the continue policy per-file failures
// are joined into the returned error after every file was attempted.
func (m *Manager) sortPhase(ctx context.Context, s *session, result *Result) error {
	summary, err := s.sorter(m.cfg, m.resolver).Sort(logging.WithPhase(ctx, PhaseSort), m.layout())
	result.Sort = summary
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files not sorted: %w", summary.Failed, len(summary.Entries), errors.Join(summary.Errors()...))
	}
	return nil
}

// Plan classifies every input file without moving anything. It takes no
// lock and writes no journal row.
func (m *Manager) Plan(ctx context.Context) ([]sorter.Entry, error) {
	model, err := m.cfg.ProductModel()
	if err != nil {
		return nil, err
	}
	srt := sorter.New(model, m.resolver, nil, m.cfg.Labels(), m.base, nil)
	return srt.Plan(logging.WithPhase(ctx, PhaseSort), m.layout())
}

// Merge deduplicates every folder below dir. An empty dir means the
// destination tree.
func (m *Manager) Merge(ctx context.Context, dir string) (Result, error) {
	if dir == "" {
		dir = m.cfg.DestinationDir()
	}
	return m.execute(ctx, CommandMerge, func(ctx context.Context, s *session, result *Result) error {
		reports, err := s.merger(m.cfg).MergeTree(logging.WithPhase(ctx, PhaseMerge), dir)
		result.Merges = reports
		return err
	})
}

// Rename applies canonical names to every folder below dir. An empty dir
// means the destination tree.
func (m *Manager) Rename(ctx context.Context, dir string, mode naming.Mode) (Result, error) {
	if dir == "" {
		dir = m.cfg.DestinationDir()
	}
	return m.execute(ctx, CommandRename, func(ctx context.Context, s *session, result *Result) error {
		reports, err := s.renamer(m.cfg).RenameTree(logging.WithPhase(ctx, PhaseRename), dir, mode)
		result.Renames = reports
		return err
	})
}

// Combine merges the sub-folders of dir into one folder.
func (m *Manager) Combine(ctx context.Context, dir string) (Result, error) {
	return m.execute(ctx, CommandCombine, func(ctx context.Context, s *session, result *Result) error {
		report, err := s.combiner().Combine(logging.WithPhase(ctx, PhaseCombine), dir)
		if err != nil {
			return err
		}
		result.Combine = &report
		return nil
	})
}

// Restore replaces the workspace with the backup tree.
func (m *Manager) Restore(ctx context.Context) (Result, error) {
	return m.execute(ctx, CommandRestore, func(ctx context.Context, s *session, result *Result) error {
		if err := s.backup(m.cfg).Restore(logging.WithPhase(ctx, PhaseRestore)); err != nil {
			return err
		}
		result.Restored = true
		return m.cfg.EnsureDirectories()
	})
}

// Snapshot replaces the backup tree with a copy of the workspace.
func (m *Manager) Snapshot(ctx context.Context) (Result, error) {
	return m.execute(ctx, CommandSnapshot, func(ctx context.Context, s *session, _ *Result) error {
		return s.backup(m.cfg).Snapshot(logging.WithPhase(ctx, PhaseSnapshot))
	})
}

func (m *Manager) layout() sorter.Layout {
	return sorter.Layout{
		Root:        m.cfg.RootDir(),
		Destination: m.cfg.DestinationDir(),
		Default:     m.cfg.DefaultDir(),
	}
}

func (m *Manager) renameMode() (naming.Mode, bool) {
	mode, err := naming.ParseMode(m.cfg.Run.Rename)
	if err != nil {
		return "", false
	}
	return mode, true
}

func (m *Manager) pruneLogs(ctx context.Context) {
	if removed := logging.CleanupOldLogs(ctx, m.logger, m.cfg.Paths.LogDir, logging.LogFilePattern, m.cfg.Logging.RetentionDays); removed > 0 {
		m.logger.Info("pruned old log files", logging.Int("removed", removed))
	}
}
