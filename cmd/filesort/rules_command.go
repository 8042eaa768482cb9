package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filesort/internal/rules"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the extension rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := rules.All()
			rows := make([][]string, 0, len(all))
			for _, rule := range all {
				sub := string(rule.Subcategory)
				if sub == "" {
					sub = "-"
				}
				rows = append(rows, []string{rule.Extension, string(rule.Category), sub})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []column{
				{title: "Extension"},
				{title: "Category"},
				{title: "Subcategory"},
			}, rows))
			fmt.Fprintf(out, "Unlisted extensions go to %s.\n", rules.Uncategorized)
			return nil
		},
	}
}
