package format

import (
	"bytes"
	"fmt"
	"io"
)

// ReadString reads a length-prefixed string into a fresh buffer. The bytes
// are returned verbatim; no character set decoding is applied.
//
// capacity mirrors a fixed destination buffer that also has to hold a
// terminator, so a length equal to capacity is already too long.
func ReadString(r ByteReader, capacity int) ([]byte, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("string length: %w", err)
	}
	if capacity <= 0 || n >= uint64(capacity) {
		return nil, fmt.Errorf("string length %d, capacity %d: %w", n, capacity, ErrCapacityExceeded)
	}
	s := make([]byte, n)
	if err := readFull(r, s); err != nil {
		return nil, fmt.Errorf("string body: %w", err)
	}
	return s, nil
}

// WriteString writes the varint length of s followed by its raw bytes.
func WriteString(w io.Writer, s string) error {
	if err := WriteVarInt(w, uint64(len(s))); err != nil {
		return err
	}
	return writeAll(w, []byte(s))
}

// AppendString appends the length-prefixed encoding of s to b.
func AppendString(b []byte, s string) []byte {
	b = AppendVarInt(b, uint64(len(s)))
	return append(b, s...)
}

// ExpectString reads one length-prefixed string and reports whether it is
// byte-for-byte equal to literal. A different value is not an error; only a
// broken stream is.
//
// When the length already differs the body is not consumed.
func ExpectString(r ByteReader, literal string) (bool, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return false, fmt.Errorf("expect %q: %w", literal, err)
	}
	if n != uint64(len(literal)) {
		return false, nil
	}
	s := make([]byte, n)
	if err := readFull(r, s); err != nil {
		return false, fmt.Errorf("expect %q: %w", literal, err)
	}
	return bytes.Equal(s, []byte(literal)), nil
}
