package format

import "errors"

var (
	// ErrTruncated indicates the stream ended before the expected bytes.
	ErrTruncated = errors.New("format: truncated input")
	// ErrFormatMismatch indicates the magic or platform tag did not match.
	ErrFormatMismatch = errors.New("format: format mismatch")
	// ErrCapacityExceeded indicates a length-prefixed string would overflow its buffer.
	ErrCapacityExceeded = errors.New("format: capacity exceeded")
	// ErrWrite indicates a sink accepted fewer bytes than requested.
	ErrWrite = errors.New("format: short write")
)
