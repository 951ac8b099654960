package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdlkit/pkg/cdlfile"
	"github.com/joshuapare/cdlkit/pkg/cdlfile/printer"
)

var statsNoFlags bool

func init() {
	cmd := newStatsCmd()
	cmd.Flags().BoolVar(&statsNoFlags, "no-flags", false, "Omit the per-flag breakdown")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <log>",
		Short: "Show coverage statistics",
		Long: `The stats command reports, for every block in a log, how many addresses
were touched and how many carry each access flag.

Example:
  cdlctl stats game.cdl
  cdlctl stats game.cdl --no-flags
  cdlctl stats game.cdl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	path := args[0]
	printVerbose("Opening log: %s\n", path)

	stats, err := cdlfile.Stats(path)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	if quiet && !jsonOut {
		return nil
	}

	opts := printer.DefaultOptions()
	opts.ShowFlags = !statsNoFlags
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Stats(path, stats)
}
