package cdl

import (
	"errors"

	"github.com/joshuapare/cdlkit/internal/format"
)

var (
	// ErrTruncated indicates the file ended before the expected bytes.
	ErrTruncated = format.ErrTruncated
	// ErrFormatMismatch indicates the magic or platform tag did not match.
	ErrFormatMismatch = format.ErrFormatMismatch
	// ErrCapacityExceeded indicates a block name was longer than allowed.
	ErrCapacityExceeded = format.ErrCapacityExceeded
	// ErrWrite indicates a short write while saving.
	ErrWrite = format.ErrWrite
	// ErrSchemaMismatch indicates a loaded log does not match the live layout.
	ErrSchemaMismatch = errors.New("cdl: schema mismatch")
	// ErrIO indicates the log file could not be opened, read, or written.
	ErrIO = errors.New("cdl: i/o failure")
	// ErrDisabled is returned by the Disabled tracker for file operations.
	ErrDisabled = errors.New("cdl: code/data logging disabled")
)
