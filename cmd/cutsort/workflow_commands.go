package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cutsort/internal/config"
	"cutsort/internal/naming"
	"cutsort/internal/workflow"
)

func newWorkflowCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newRunCommand(ctx),
		newSortCommand(ctx),
		newMergeCommand(ctx),
		newRenameCommand(ctx),
		newCombineCommand(ctx),
		newRestoreCommand(ctx),
		newSnapshotCommand(ctx),
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Restore, sort, merge and rename in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Run(cmd.Context())
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Classify and move input files without merging or renaming",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Sort(cmd.Context())
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "merge [dir]",
		Short: "Merge duplicate cut lists (default: destination tree)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Merge(cmd.Context(), dir)
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "rename [dir]",
		Short: "Rename files to <folder>.NNN or <folder>-HxW.NNN (default: destination tree)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			mode, err := naming.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Rename(cmd.Context(), dir, mode)
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&modeFlag, "mode", string(naming.ModeIndex), "Naming scheme: index or dimension")
	return cmd
}

func newCombineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "combine <dir>",
		Short: "Merge the sub-folders of a directory into one folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Combine(cmd.Context(), dir)
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Replace the workspace with the backup tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Restore(cmd.Context())
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Replace the backup tree with a copy of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				result, err := mgr.Snapshot(cmd.Context())
				printResult(cmd.OutOrStdout(), cfg, result)
				return err
			})
		},
	}
}

func dirArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	dir, err := config.ExpandPath(strings.TrimSpace(args[0]))
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	return dir, nil
}

func printResult(out io.Writer, cfg *config.Config, result workflow.Result) {
	if result.RunID == "" {
		return
	}
	fmt.Fprintf(out, "Run %s (%s)\n", shortID(result.RunID), result.Command)
	if result.Restored {
		fmt.Fprintf(out, "  restored workspace from %s\n", cfg.Paths.BackupDir)
	}
	if result.Command == workflow.CommandSnapshot {
		fmt.Fprintf(out, "  captured workspace into %s\n", cfg.Paths.BackupDir)
	}
	counts := result.Counts()
	if len(result.Sort.Entries) > 0 {
		fmt.Fprintf(out, "  sorted:   %d moved, %d to default, %d failed\n", counts.Moved, counts.Fallback, counts.Failed)
		for _, entry := range result.Sort.Entries {
			if entry.Err != nil {
				fmt.Fprintf(out, "    %s: %v\n", relPath(cfg.Paths.WorkspaceDir, entry.Source), entry.Err)
			}
		}
	}
	if len(result.Merges) > 0 {
		fmt.Fprintf(out, "  merged:   %d groups, %d files removed\n", counts.MergedGroups, counts.RemovedFiles)
	}
	if len(result.Renames) > 0 {
		fmt.Fprintf(out, "  renamed:  %d files\n", counts.Renamed)
	}
	if result.Combine != nil && result.Combine.Target == "" {
		fmt.Fprintln(out, "  combined: fewer than two folders, nothing to do")
	} else if result.Combine != nil {
		fmt.Fprintf(out, "  combined: %s -> %s (%d entries)\n",
			strings.Join(result.Combine.Sources, ", "), result.Combine.Target, result.Combine.Moved)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
