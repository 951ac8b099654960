package cdlfile

import "github.com/joshuapare/cdlkit/cdl"

// MergeOptions controls Merge.
type MergeOptions struct {
	// Atomic replaces the destination via temp file + rename.
	// Default: true when nil options are passed.
	Atomic bool

	// Sync flushes the destination to disk before returning.
	Sync bool

	// CreateBackup copies an existing destination to <dst>.bak first.
	CreateBackup bool

	// DryRun merges and encodes in memory without writing dst.
	DryRun bool

	// OnProgress is called after each source is merged.
	OnProgress func(done, total int)
}

// DefaultMergeOptions returns the options used when nil is passed.
func DefaultMergeOptions() *MergeOptions {
	return &MergeOptions{Atomic: true}
}

func (o *MergeOptions) saveOptions() *cdl.SaveOptions {
	return &cdl.SaveOptions{Atomic: o.Atomic, Sync: o.Sync}
}
