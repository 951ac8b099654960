/*
Package cdl records which kinds of access each emulated memory address has
seen and persists that record as a BizHawk compatible code/data log.

# Overview

A Log holds one byte per address for each memory region (BlockKind). Each
byte is a bitmask of Flag values that only ever grows: Set ORs flags in, and
Load merges a saved log into the live one with OR as well.

	log := cdl.New()
	log.Init(cdl.Layout{ROMSize: 0x8000})

	// memory access hook
	log.Set(cdl.CartROM, cdl.ExecFirst, 0x10)

	if err := log.Save("game.cdl", nil); err != nil {
	    return err
	}

# Loading

LoadAsIs replaces the blocks named in the file and leaves the others alone.
Load is the safe entry point: it parses the file into a scratch log, checks
that it describes the same layout, then ORs it in. Both reset the log to
empty on any failure.

# Disabled builds

Building with the nocdl tag, or constructing with Config.Enabled false,
makes NewTracker return Disabled, a no-op Tracker.

# Concurrency

A Log is NOT thread-safe. Set runs on the emulation thread; pause emulation
before calling Load or Save from elsewhere.
*/
package cdl
