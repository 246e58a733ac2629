package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cutsort/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Advisory bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Workspace directory", cfg.Paths.WorkspaceDir))
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))

	if cfg.Run.RestoreFromBackup {
		results = append(results, CheckDirectoryAccess("Backup directory", cfg.Paths.BackupDir))
	}

	table := CheckProductTable(cfg)
	results = append(results, table)
	if table.Passed && !cfg.Run.RestoreFromBackup {
		// After a restore the root comes from the backup, so checking the
		// current root would be meaningless.
		results = append(results, CheckRootFolders(cfg))
	}

	if cfg.Journal.Enabled {
		results = append(results, CheckJournal(ctx, cfg))
	}

	return results
}

// Err summarizes failed required checks, or returns nil when none failed.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed && !r.Advisory {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.New("preflight failed: " + strings.Join(failed, "; "))
}
