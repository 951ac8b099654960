package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ByteReader is the input side of every decoder in this package.
// *bufio.Reader and *bytes.Reader both satisfy it.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// ReadU32BE reads exactly four bytes as a big-endian uint32.
func ReadU32BE(r io.Reader) (uint32, error) {
	var b [U32Size]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("u32: %w", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// WriteU32BE writes v as exactly four big-endian bytes.
func WriteU32BE(w io.Writer, v uint32) error {
	var b [U32Size]byte
	binary.BigEndian.PutUint32(b[:], v)
	return writeAll(w, b[:])
}

// AppendU32BE appends the big-endian encoding of v to b.
func AppendU32BE(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

// WriteRaw writes b verbatim, reporting a short write as ErrWrite.
func WriteRaw(w io.Writer, b []byte) error {
	return writeAll(w, b)
}

// readFull fills b, mapping any early end of stream to ErrTruncated.
func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// writeAll writes b, reporting a short write as ErrWrite.
func writeAll(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n != len(b) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrWrite, n, len(b))
	}
	return nil
}
