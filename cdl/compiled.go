//go:build !nocdl

package cdl

// Compiled reports whether code/data logging is built in. Build with the
// nocdl tag to compile it out.
const Compiled = true
