package testsupport

import (
	"context"
	"testing"

	"cutsort/internal/config"
	"cutsort/internal/journal"
)

// MustOpenJournal opens a journal.Store for tests and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// StartRun opens a run row for tests using the provided store.
func StartRun(t testing.TB, store *journal.Store, command string) *journal.Run {
	t.Helper()

	run, err := store.StartRun(context.Background(), command, "CM06")
	if err != nil {
		t.Fatalf("store.StartRun: %v", err)
	}
	return run
}

// EventRecorder collects events in memory.
type EventRecorder struct {
	Events []journal.Event
}

func (r *EventRecorder) Record(_ context.Context, event journal.Event) error {
	r.Events = append(r.Events, event)
	return nil
}

// Actions returns the recorded action names in order.
func (r *EventRecorder) Actions() []string {
	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Action)
	}
	return out
}
