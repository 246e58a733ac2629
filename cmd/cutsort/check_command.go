package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutsort/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify directories, product table and journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			fmt.Fprintln(out, renderSectionHeader("Preflight", colorize))
			fmt.Fprintf(out, "  %-*s %s\n", statusLabelWidth, "Config:", ctx.configPath)
			results := preflight.RunAll(cmd.Context(), cfg)
			for _, r := range results {
				kind := statusOK
				switch {
				case r.Passed:
				case r.Advisory:
					kind = statusWarn
				default:
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			return preflight.Err(results)
		},
	}
}
