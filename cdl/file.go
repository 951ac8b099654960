package cdl

import (
	"errors"
	"fmt"

	"github.com/joshuapare/cdlkit/internal/format"
	"github.com/joshuapare/cdlkit/internal/mmfile"
	"github.com/joshuapare/cdlkit/internal/writer"
)

// SaveOptions controls how a log file is written.
type SaveOptions struct {
	// Atomic writes to a temp file and renames it over the destination.
	// Without it the destination is truncated in place and a failed save
	// may leave a partial file.
	Atomic bool

	// Sync flushes the file to stable storage before returning.
	Sync bool
}

// Save writes the log to path. A nil opts saves as-is: no atomic replace
// and no sync.
func (l *Log) Save(path string, opts *SaveOptions) error {
	if opts == nil {
		opts = &SaveOptions{}
	}
	w := &writer.FileWriter{Path: path, Atomic: opts.Atomic, Sync: opts.Sync}
	return l.saveTo(path, w)
}

// SaveAsIs writes exactly the current state to path.
func (l *Log) SaveAsIs(path string) error {
	return l.Save(path, nil)
}

func (l *Log) saveTo(path string, sink writer.Sink) error {
	if err := sink.WriteLog(l); err != nil {
		if errors.Is(err, format.ErrWrite) {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return fmt.Errorf("save %s: %w: %w", path, ErrIO, err)
	}
	l.log().Debug("saved code/data log",
		"path", path, "blocks", l.CountActiveBlocks(), "bytes", l.EncodedSize())
	return nil
}

// LoadAsIs reads the log at path into l, replacing the blocks the file
// names and keeping the others. On failure l is reset to empty.
func (l *Log) LoadAsIs(path string) (err error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		l.Reset()
		return fmt.Errorf("load %s: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil && err == nil {
			err = fmt.Errorf("load %s: unmap: %w", path, cleanupErr)
		}
	}()

	if err := l.Decode(data); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	l.log().Debug("loaded code/data log",
		"path", path, "blocks", l.CountActiveBlocks(), "bytes", len(data))
	return nil
}

// Load merges the log at path into l. The file must describe the same
// layout: the same non-empty blocks with the same lengths. On success every
// address holds the OR of its current and loaded flags. On any failure l is
// reset to empty.
func (l *Log) Load(path string) error {
	other := New(WithLogger(l.log()))
	if err := other.LoadAsIs(path); err != nil {
		l.Reset()
		return err
	}
	if err := l.Merge(other); err != nil {
		l.Reset()
		return fmt.Errorf("load %s: %w", path, err)
	}
	l.log().Debug("merged code/data log", "path", path, "blocks", l.CountActiveBlocks())
	return nil
}
