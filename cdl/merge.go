package cdl

import (
	"fmt"

	"github.com/joshuapare/cdlkit/internal/buf"
)

// CheckSchema reports ErrSchemaMismatch unless other has the same number of
// non-empty blocks and every block has the same length as in l.
func (l *Log) CheckSchema(other *Log) error {
	if got, want := other.CountActiveBlocks(), l.CountActiveBlocks(); got != want {
		return fmt.Errorf("%d active blocks, want %d: %w", got, want, ErrSchemaMismatch)
	}
	for i := range l.blocks {
		if got, want := len(other.blocks[i]), len(l.blocks[i]); got != want {
			return fmt.Errorf("block %s is %d bytes, want %d: %w",
				BlockKind(i), got, want, ErrSchemaMismatch)
		}
	}
	return nil
}

// Merge ORs every flag byte of other into l. Both logs must share a schema;
// on mismatch l is left untouched.
func (l *Log) Merge(other *Log) error {
	if err := l.CheckSchema(other); err != nil {
		return err
	}
	for i := range l.blocks {
		buf.OrInto(l.blocks[i], other.blocks[i])
	}
	return nil
}
