package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"cutsort/internal/config"
	"cutsort/internal/failure"
)

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the journal configured in cfg, creating it if needed.
func Open(cfg *config.Config) (*Store, error) {
	return OpenPath(cfg.Journal.Path)
}

// OpenPath connects to the journal database at path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time; cutsort never writes concurrently.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// StartRun inserts a running row with a fresh identifier.
func (s *Store) StartRun(ctx context.Context, command, model string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Command:   command,
		Model:     model,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, command, model, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Command, nullableString(run.Model), run.Status, formatTime(run.StartedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// FinishRun closes a run row with its counts. A nil runErr marks success.
func (s *Store) FinishRun(ctx context.Context, id string, counts Counts, runErr error) error {
	status := StatusSucceeded
	var kind, message string
	if runErr != nil {
		status = StatusFailed
		kind = failure.Kind(runErr)
		message = runErr.Error()
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs
         SET status = ?, finished_at = ?, moved = ?, fallback = ?, failed = ?,
             merged_groups = ?, removed_files = ?, renamed = ?, error_kind = ?, error_message = ?
         WHERE id = ?`,
		status,
		formatTime(time.Now().UTC()),
		counts.Moved,
		counts.Fallback,
		counts.Failed,
		counts.MergedGroups,
		counts.RemovedFiles,
		counts.Renamed,
		nullableString(kind),
		nullableString(message),
		id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run: unknown run %s", id)
	}
	return nil
}

// Record appends an event. Event.RunID must reference an existing run.
func (s *Store) Record(ctx context.Context, event Event) error {
	if event.RunID == "" {
		return errors.New("record event: run id is empty")
	}
	at := event.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (run_id, at, phase, action, source, target, rule, kind, detail)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.RunID,
		formatTime(at),
		event.Phase,
		event.Action,
		nullableString(event.Source),
		nullableString(event.Target),
		nullableString(event.Rule),
		nullableString(event.Kind),
		nullableString(event.Detail),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Recorder binds the store to one run.
func (s *Store) Recorder(runID string) Recorder {
	return RecorderFunc(func(ctx context.Context, event Event) error {
		event.RunID = runID
		return s.Record(ctx, event)
	})
}

const runColumns = "id, command, model, status, started_at, finished_at, moved, fallback, failed, merged_groups, removed_files, renamed, error_kind, error_message"

// Runs lists the most recent runs, newest first. limit <= 0 lists all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// FindRun returns the run whose identifier equals or starts with prefix.
// It returns nil when nothing matches and an error when the prefix is ambiguous.
func (s *Store) FindRun(ctx context.Context, prefix string) (*Run, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, errors.New("find run: empty identifier")
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id LIKE ? ESCAPE '\' ORDER BY started_at DESC LIMIT 2`,
		escaped+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	defer rows.Close()

	var found []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		found = append(found, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("find run: identifier %q is ambiguous", prefix)
	}
}

// Events returns the events of a run in insertion order.
func (s *Store) Events(ctx context.Context, runID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, at, phase, action, source, target, rule, kind, detail
         FROM events WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev                                 Event
			atRaw                              string
			source, target, rule, kind, detail sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.RunID, &atRaw, &ev.Phase, &ev.Action, &source, &target, &rule, &kind, &detail); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.At = parseTime(atRaw)
		ev.Source = source.String
		ev.Target = target.String
		ev.Rule = rule.String
		ev.Kind = kind.String
		ev.Detail = detail.String
		events = append(events, ev)
	}
	return events, rows.Err()
}
