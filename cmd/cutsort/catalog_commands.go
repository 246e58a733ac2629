package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cutsort/internal/category"
	"cutsort/internal/routing"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "rules",
		Short:       "List routing rules in evaluation order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := routing.NewResolver().Rules()
			rows := make([][]string, 0, len(rules))
			for i, r := range rules {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					r.Name,
					string(r.PartType),
					r.Level.String(),
					r.Dim.String(),
					r.Template,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Rule", "Part type", "Level", "Dimension", "Destination"},
				rows,
				[]columnAlignment{alignRight},
			))
			fmt.Fprintln(out, "First match wins. Unmatched files go to <default>/<folder>.")
			return nil
		},
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "models [model]",
		Short:       "List product tables, or the folders of one table",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				model, err := category.ByName(args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, model.Len())
				for _, folder := range model.Folders() {
					cat, err := model.Lookup(folder)
					if err != nil {
						return err
					}
					rows = append(rows, []string{folder, dash(string(cat.Side)), string(cat.PartType), dash(string(cat.Level))})
				}
				fmt.Fprintln(out, renderTable([]string{"Folder", "Side", "Part type", "Level"}, rows, nil))
				return nil
			}

			names := category.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				model, err := category.ByName(name)
				if err != nil {
					return err
				}
				sides := make([]string, 0, len(model.Sides()))
				for _, side := range model.Sides() {
					sides = append(sides, string(side))
				}
				rows = append(rows, []string{name, strconv.Itoa(model.Len()), dash(strings.Join(sides, ", "))})
			}
			fmt.Fprintln(out, renderTable([]string{"Model", "Folders", "Sides"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
