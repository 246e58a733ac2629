package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cutsort/internal/config"
	"cutsort/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent runs, or the events of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("journal is disabled (set journal.enabled = true)")
			}
			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				return printRunDetail(cmd, out, cfg, store, args[0])
			}

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					shortID(r.ID),
					r.StartedAt.Local().Format("2006-01-02 15:04:05"),
					r.Command,
					r.Model,
					string(r.Status),
					formatDuration(r.Duration()),
					strconv.Itoa(r.Counts.Moved),
					strconv.Itoa(r.Counts.Fallback),
					strconv.Itoa(r.Counts.Failed),
					strconv.Itoa(r.Counts.MergedGroups),
					strconv.Itoa(r.Counts.Renamed),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Started", "Command", "Model", "Status", "Duration", "Moved", "Default", "Failed", "Merged", "Renamed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")
	return cmd
}

func printRunDetail(cmd *cobra.Command, out io.Writer, cfg *config.Config, store *journal.Store, prefix string) error {
	run, err := store.FindRun(cmd.Context(), prefix)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run matches %q", prefix)
	}
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderSectionHeader("Run "+run.ID, colorize))
	fmt.Fprintf(out, "  Command:  %s\n", run.Command)
	fmt.Fprintf(out, "  Model:    %s\n", run.Model)
	fmt.Fprintf(out, "  Status:   %s\n", run.Status)
	fmt.Fprintf(out, "  Started:  %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "  Duration: %s\n", formatDuration(run.Duration()))
	if run.ErrorMessage != "" {
		fmt.Fprintf(out, "  Error:    [%s] %s\n", run.ErrorKind, run.ErrorMessage)
	}

	events, err := store.Events(cmd.Context(), run.ID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "  No events recorded")
		return nil
	}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		note := ev.Rule
		if ev.Kind != "" {
			note = ev.Kind
		}
		if ev.Detail != "" && ev.Kind != "" {
			note += ": " + ev.Detail
		}
		rows = append(rows, []string{
			ev.Phase,
			ev.Action,
			relPath(cfg.Paths.WorkspaceDir, ev.Source),
			relPath(cfg.Paths.WorkspaceDir, ev.Target),
			note,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Phase", "Action", "Source", "Target", "Rule / error"}, rows, nil))
	return nil
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}
