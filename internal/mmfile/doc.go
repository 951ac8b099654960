// Package mmfile provides platform-specific helpers for memory-mapping log files.
package mmfile
