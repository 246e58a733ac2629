package journal

import (
	"context"
	"time"
)

// Status is the lifecycle state of a run row.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Actions recorded as events.
const (
	ActionMove     = "move"
	ActionFallback = "fallback"
	ActionMerge    = "merge"
	ActionRemove   = "remove"
	ActionRename   = "rename"
	ActionCombine  = "combine"
	ActionRestore  = "restore"
	ActionSnapshot = "snapshot"
	ActionFailure  = "failure"
)

// Counts summarizes what a run did.
type Counts struct {
	Moved        int
	Fallback     int
	Failed       int
	MergedGroups int
	RemovedFiles int
	Renamed      int
}

// Add returns the field-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Moved:        c.Moved + other.Moved,
		Fallback:     c.Fallback + other.Fallback,
		Failed:       c.Failed + other.Failed,
		MergedGroups: c.MergedGroups + other.MergedGroups,
		RemovedFiles: c.RemovedFiles + other.RemovedFiles,
		Renamed:      c.Renamed + other.Renamed,
	}
}

// Run is one row of the runs table.
type Run struct {
	ID           string
	Command      string
	Model        string
	Status       Status
	StartedAt    time.Time
	FinishedAt   time.Time
	Counts       Counts
	ErrorKind    string
	ErrorMessage string
}

// Duration is the wall time of a finished run, or zero while running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Event is one file action.
type Event struct {
	ID     int64
	RunID  string
	At     time.Time
	Phase  string
	Action string
	Source string
	Target string
	Rule   string
	Kind   string
	Detail string
}

// Recorder receives events from the workflow phases.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// Nop is a Recorder that drops every event.
type Nop struct{}

func (Nop) Record(context.Context, Event) error { return nil }

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, event Event) error

func (f RecorderFunc) Record(ctx context.Context, event Event) error { return f(ctx, event) }
