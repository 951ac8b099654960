package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <log>",
		Short: "Validate a log header and list its blocks",
		Long: `The info command validates a code/data log file and lists every block it
contains in file order, including blocks with names this tool does not track.

Example:
  cdlctl info game.cdl
  cdlctl info game.cdl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]
	printVerbose("Opening log: %s\n", path)

	info, err := cdlfile.Inspect(path)
	if err != nil {
		return fmt.Errorf("failed to inspect log: %w", err)
	}
	if quiet && !jsonOut {
		return nil
	}
	return newPrinter().Info(info)
}
