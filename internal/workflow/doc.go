// Package workflow drives a cutsort run through its phases.
//
// The Manager owns the process-level run lock, the run journal, and the
// component wiring (sorter, merger, renamer, combiner, backup). A full run
// executes:
//
//	restore (optional) -> sort -> merge (optional) -> rename (optional)
//
// Each phase is also exposed on its own for the CLI. Every locked operation
// opens a journal row, tags the context with a run id and phase so log lines
// correlate, and closes the row with the aggregated counts.
//
// Under the "abort" error policy the first failing file stops the run before
// later phases execute. Under "continue" every phase runs and the run is
// still reported as failed when any file could not be sorted.
package workflow
