package workflow

import (
	"cutsort/internal/combine"
	"cutsort/internal/dedupe"
	"cutsort/internal/journal"
	"cutsort/internal/naming"
	"cutsort/internal/sorter"
)

// Phase names used in log context and journal events.
const (
	PhaseRestore  = "restore"
	PhaseSnapshot = "snapshot"
	PhaseSort     = "sort"
	PhaseMerge    = "merge"
	PhaseRename   = "rename"
	PhaseCombine  = "combine"
)

// Commands recorded on journal run rows.
const (
	CommandRun      = "run"
	CommandSort     = "sort"
	CommandMerge    = "merge"
	CommandRename   = "rename"
	CommandCombine  = "combine"
	CommandRestore  = "restore"
	CommandSnapshot = "snapshot"
)

// Result aggregates what one locked operation did.
type Result struct {
	RunID    string
	Command  string
	Restored bool
	Sort     sorter.Summary
	Merges   []dedupe.Report
	Renames  []naming.Report
	Combine  *combine.Report
}

// Counts folds the phase reports into journal counts.
func (r Result) Counts() journal.Counts {
	counts := r.Sort.Counts()
	for _, report := range r.Merges {
		counts.MergedGroups += len(report.Groups)
		counts.RemovedFiles += report.RemovedCount()
	}
	for _, report := range r.Renames {
		counts.Renamed += len(report.Renames)
	}
	return counts
}
