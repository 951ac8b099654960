package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ReadVarInt reads an unsigned LEB128 value: seven data bits per byte, least
// significant group first, high bit set on every byte but the last.
//
// The group count is not bounded. Groups past the 64th bit are shifted out.
func ReadVarInt(r io.ByteReader) (uint64, error) {
	var v uint64
	var shift uint
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("varint: %w", ErrTruncated)
			}
			return 0, fmt.Errorf("varint: %w", err)
		}
		v |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}

// WriteVarInt writes v as unsigned LEB128. Zero is a single 0x00 byte.
func WriteVarInt(w io.Writer, v uint64) error {
	var b [binary.MaxVarintLen64]byte
	return writeAll(w, AppendVarInt(b[:0], v))
}

// AppendVarInt appends the LEB128 encoding of v to b.
func AppendVarInt(b []byte, v uint64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b = append(b, c)
		if v == 0 {
			return b
		}
	}
}

// VarIntSize returns the number of bytes AppendVarInt emits for v.
func VarIntSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
