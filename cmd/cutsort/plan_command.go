package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutsort/internal/config"
	"cutsort/internal/failure"
	"cutsort/internal/workflow"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show where every input file would go without moving anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(cmd, func(cfg *config.Config, mgr *workflow.Manager) error {
				entries, err := mgr.Plan(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintf(out, "No input files under %s\n", cfg.RootDir())
					return nil
				}

				rows := make([][]string, 0, len(entries))
				var fallback, failed int
				for _, e := range entries {
					row := []string{relPath(cfg.RootDir(), e.Source), "", "", "", ""}
					switch {
					case e.Err != nil:
						failed++
						row[4] = fmt.Sprintf("error (%s): %v", failure.Kind(e.Err), e.Err)
						if e.Category.PartType != "" {
							row[1] = e.Category.String()
						}
					default:
						row[1] = e.Category.String()
						row[2] = e.Dimension.String()
						if e.Fallback() {
							fallback++
							row[3] = "(default)"
						} else {
							row[3] = e.Destination.Rule
						}
						row[4] = relPath(cfg.Paths.WorkspaceDir, e.Target)
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(out, renderTable(
					[]string{"File", "Category", "Dimension", "Rule", "Destination"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d files, %d to default folder, %d errors\n", len(entries), fallback, failed)
				return nil
			})
		},
	}
}
