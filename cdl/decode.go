package cdl

import (
	"bytes"
	"fmt"
	"io"

	"github.com/joshuapare/cdlkit/internal/buf"
	"github.com/joshuapare/cdlkit/internal/format"
)

// RawBlock is one block as it appears in an encoded log.
type RawBlock struct {
	// Name is the on-disk name, verbatim.
	Name []byte
	// Kind is valid only when Known is true.
	Kind  BlockKind
	Known bool
	// Offset is the position of Data within the encoded log.
	Offset int
	// Data aliases the encoded input.
	Data []byte
}

// ReadHeader checks the magic and platform tag and returns the block count.
func ReadHeader(r format.ByteReader) (uint32, error) {
	ok, err := format.ExpectString(r, format.Magic)
	if err != nil {
		return 0, fmt.Errorf("magic: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("magic: %w", ErrFormatMismatch)
	}
	ok, err = format.ExpectString(r, format.Platform)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("platform: %w", ErrFormatMismatch)
	}
	count, err := format.ReadU32BE(r)
	if err != nil {
		return 0, fmt.Errorf("block count: %w", err)
	}
	return count, nil
}

// ScanBlocks walks every block of an encoded log in file order, unknown
// names included, and calls fn for each. It stops at the first error.
func ScanBlocks(data []byte, fn func(RawBlock) error) error {
	r := bytes.NewReader(data)
	count, err := ReadHeader(r)
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		name, err := format.ReadString(r, format.NameCapacity)
		if err != nil {
			return fmt.Errorf("block %d name: %w", i, err)
		}
		size, err := format.ReadU32BE(r)
		if err != nil {
			return fmt.Errorf("block %d length: %w", i, err)
		}
		off := len(data) - r.Len()
		payload, ok := buf.SliceU32(data, off, size)
		if !ok {
			return fmt.Errorf("block %d data: %d bytes at offset %d: %w", i, size, off, ErrTruncated)
		}
		if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
			return fmt.Errorf("block %d data: %w", i, err)
		}
		kind, known := parseBlockKindBytes(name)
		if err := fn(RawBlock{Name: name, Kind: kind, Known: known, Offset: off, Data: payload}); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses an encoded log into l. Blocks named in data are resized and
// replaced, unknown blocks are skipped, and blocks missing from data keep
// their current contents. On any error l is reset to empty.
func (l *Log) Decode(data []byte) error {
	var staged [NumBlockKinds][]byte
	var present [NumBlockKinds]bool
	err := ScanBlocks(data, func(b RawBlock) error {
		if !b.Known {
			l.log().Warn("skipping unknown block",
				"name", format.DecodeName(b.Name), "bytes", len(b.Data))
			return nil
		}
		staged[b.Kind] = b.Data
		present[b.Kind] = true
		return nil
	})
	if err != nil {
		l.Reset()
		return err
	}
	for i := range staged {
		if !present[i] {
			continue
		}
		// Copy out; data may be an mmap that goes away after the load.
		l.blocks[i] = append(l.blocks[i][:0], staged[i]...)
	}
	return nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *Log) UnmarshalBinary(data []byte) error {
	return l.Decode(data)
}

// ReadFrom reads r to the end and decodes it. It implements io.ReaderFrom.
func (l *Log) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		l.Reset()
		return int64(len(data)), fmt.Errorf("%w: %w", ErrIO, err)
	}
	return int64(len(data)), l.Decode(data)
}
