package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var reportFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "filesort <source> <target>",
		Short: "Sort files into a category tree by extension",
		Long: "filesort moves a file, or every file below a directory, into <target>/<category>[/<subcategory>]\n" +
			"based on its extension. Name collisions are resolved by appending _1, _2, ... and a\n" +
			"markdown report with per-category counts is written after each run.\n\n" +
			"The words rules, history and config are subcommands. To sort a directory with one of\n" +
			"those names, give it as a path, for example: filesort ./history sorted",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0, 2:
				return nil
			default:
				return fmt.Errorf("expected <source> and <target>, got %d argument(s)", len(args))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSort(cmd, ctx, args[0], args[1], reportFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")
	rootCmd.Flags().StringVarP(&reportFlag, "report", "r", "", "Report path (default <target>/report.md)")

	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
