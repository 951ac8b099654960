// Package buf contains bounds helpers for slicing decoded payloads.
package buf

import (
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// SliceU32 is Slice for a length read from disk as an unsigned 32-bit value.
func SliceU32(b []byte, off int, n uint32) ([]byte, bool) {
	if uint64(n) > uint64(math.MaxInt) {
		return nil, false
	}
	return Slice(b, off, int(n))
}

// OrInto ORs src into dst byte by byte. Both slices must have equal length.
func OrInto(dst, src []byte) bool {
	if len(dst) != len(src) {
		return false
	}
	for i, v := range src {
		dst[i] |= v
	}
	return true
}
