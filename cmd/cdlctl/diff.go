package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare the coverage of two logs",
		Long: `The diff command compares two logs address by address and reports, per
block, how many addresses changed and how many are covered only in one log.

Example:
  cdlctl diff before.cdl after.cdl`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	d, err := cdlfile.DiffFiles(args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to diff logs: %w", err)
	}
	if quiet && !jsonOut {
		return nil
	}
	return newPrinter().Diff(d)
}
