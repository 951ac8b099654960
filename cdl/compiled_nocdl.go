//go:build nocdl

package cdl

// Compiled reports whether code/data logging is built in.
const Compiled = false
