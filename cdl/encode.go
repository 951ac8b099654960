package cdl

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/cdlkit/internal/format"
)

// EncodedSize returns the number of bytes WriteTo produces.
func (l *Log) EncodedSize() int {
	size := format.HeaderSize
	for i, b := range l.blocks {
		if len(b) == 0 {
			continue
		}
		size += format.StringSize(blockNames[i]) + format.U32Size + len(b)
	}
	return size
}

// WriteTo encodes the log in block index order, emitting only non-empty
// blocks. It implements io.WriterTo.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := l.encode(cw)
	return cw.n, err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *Log) MarshalBinary() ([]byte, error) {
	return l.AppendBinary(make([]byte, 0, l.EncodedSize()))
}

// AppendBinary appends the encoded log to b.
func (l *Log) AppendBinary(b []byte) ([]byte, error) {
	b = format.AppendString(b, format.Magic)
	b = format.AppendString(b, format.Platform)
	b = format.AppendU32BE(b, uint32(l.CountActiveBlocks()))
	for i, block := range l.blocks {
		if len(block) == 0 {
			continue
		}
		if uint64(len(block)) > math.MaxUint32 {
			return nil, fmt.Errorf("block %s: %d bytes does not fit the length field", blockNames[i], len(block))
		}
		b = format.AppendString(b, blockNames[i])
		b = format.AppendU32BE(b, uint32(len(block)))
		b = append(b, block...)
	}
	return b, nil
}

func (l *Log) encode(w io.Writer) error {
	b, err := l.MarshalBinary()
	if err != nil {
		return err
	}
	return format.WriteRaw(w, b)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
