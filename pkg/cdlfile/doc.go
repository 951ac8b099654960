/*
Package cdlfile provides path-based operations over code/data log files for
tooling: inspecting a file block by block, computing coverage statistics,
merging several logs into one, and diffing two logs.

# Quick Start

Merge coverage from several play sessions:

	err := cdlfile.Merge("game.cdl", []string{"run1.cdl", "run2.cdl"}, nil)

Inspect a file, unknown blocks included:

	info, err := cdlfile.Inspect("game.cdl")
	for _, b := range info.Blocks {
	    fmt.Println(b.Name, b.Length, b.Known)
	}

All operations reuse the cdl package, so the same format and schema rules
apply: merging logs that describe different memory layouts fails with
cdl.ErrSchemaMismatch.
*/
package cdlfile
