package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdlkit/pkg/cdlfile"
)

var (
	mergeBackup bool
	mergeSync   bool
	mergeDryRun bool
)

func init() {
	cmd := newMergeCmd()
	cmd.Flags().BoolVarP(&mergeBackup, "backup", "b", false, "Create backup before merging")
	cmd.Flags().BoolVar(&mergeSync, "sync", false, "Flush the result to disk before exiting")
	cmd.Flags().BoolVarP(&mergeDryRun, "dry-run", "n", false, "Check that the logs merge without writing")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <dest> <log>...",
		Short: "Merge one or more logs into a destination log",
		Long: `The merge command ORs the coverage of every source log into the destination.
If the destination does not exist, the first source defines its layout. All logs
must describe the same memory layout.

Example:
  cdlctl merge game.cdl session1.cdl
  cdlctl merge game.cdl session1.cdl session2.cdl --backup`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	dst := args[0]
	srcs := args[1:]

	printVerbose("Merging into log: %s\n", dst)
	printVerbose("Sources: %v\n", srcs)

	opts := cdlfile.DefaultMergeOptions()
	opts.CreateBackup = mergeBackup
	opts.Sync = mergeSync
	opts.DryRun = mergeDryRun
	opts.OnProgress = func(done, total int) {
		printVerbose("  merged %d/%d\n", done, total)
	}

	if err := cdlfile.Merge(dst, srcs, opts); err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}
	if mergeDryRun {
		printInfo("Dry run: %d log(s) can be merged into %s\n", len(srcs), dst)
		return nil
	}
	printInfo("Merged %d log(s) into %s\n", len(srcs), dst)
	return nil
}
