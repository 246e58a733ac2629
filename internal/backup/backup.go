// Package backup resets the working tree from a pristine copy and captures
// new copies.
//
// Both directions copy into a sibling staging directory first and swap it in
// only after the copy succeeded, so a failed copy leaves the previous tree in
// place.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cutsort/internal/failure"
	"cutsort/internal/fileutil"
	"cutsort/internal/journal"
	"cutsort/internal/logging"
)

// ErrNoBackup is returned by Restore when the backup tree is missing.
var ErrNoBackup = errors.New("backup tree not found")

// Manager copies trees between the workspace and the backup location.
type Manager struct {
	workspace string
	backup    string
	logger    *slog.Logger
	recorder  journal.Recorder
}

// New returns a Manager for the given workspace and backup directories.
func New(workspace, backup string, logger *slog.Logger, recorder journal.Recorder) *Manager {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Manager{
		workspace: workspace,
		backup:    backup,
		logger:    logging.NewComponentLogger(logger, "backup"),
		recorder:  recorder,
	}
}

// Restore replaces the workspace with a copy of the backup tree.
func (m *Manager) Restore(ctx context.Context) error {
	if err := requireDir(m.backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrNoBackup
		}
		return failure.Wrap(failure.ErrFilesystem, "backup", "restore", m.backup, err)
	}
	if err := m.replace(ctx, m.backup, m.workspace); err != nil {
		return failure.Wrap(failure.ErrFilesystem, "backup", "restore", m.workspace, err)
	}
	m.done(ctx, journal.ActionRestore, m.backup, m.workspace)
	return nil
}

// Snapshot replaces the backup tree with a copy of the workspace.
func (m *Manager) Snapshot(ctx context.Context) error {
	if err := requireDir(m.workspace); err != nil {
		return failure.Wrap(failure.ErrFilesystem, "backup", "snapshot", m.workspace, err)
	}
	if err := m.replace(ctx, m.workspace, m.backup); err != nil {
		return failure.Wrap(failure.ErrFilesystem, "backup", "snapshot", m.backup, err)
	}
	m.done(ctx, journal.ActionSnapshot, m.workspace, m.backup)
	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func (m *Manager) replace(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	staging := fmt.Sprintf("%s.cutsort-tmp-%d", dst, time.Now().UnixNano())
	if err := fileutil.CopyTree(src, staging); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.Rename(staging, dst)
}

func (m *Manager) done(ctx context.Context, action, src, dst string) {
	m.logger.InfoContext(ctx, "tree copied",
		logging.String("action", action),
		logging.String("source", src),
		logging.String("target", dst),
		logging.String(logging.FieldEventType, "tree_"+action),
	)
	if err := m.recorder.Record(ctx, journal.Event{Phase: action, Action: action, Source: src, Target: dst}); err != nil {
		logging.WarnWithContext(ctx, m.logger, "journal write failed", "journal_write_failed", logging.Error(err))
	}
}
