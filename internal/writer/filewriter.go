// Package writer exposes sinks for encoded code/data logs.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives an encoded log.
type Sink interface {
	WriteLog(src io.WriterTo) error
}

// FileWriter streams log bytes to a filesystem path.
//
// By default the destination is created or truncated in place, so a failed
// write can leave a partial file behind. Atomic writes to a temp file in the
// same directory and renames it over Path on success.
type FileWriter struct {
	Path   string
	Atomic bool
	Sync   bool
}

// WriteLog encodes src into the configured path.
func (w *FileWriter) WriteLog(src io.WriterTo) error {
	if w.Atomic {
		return w.writeAtomic(src)
	}
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.Path, err)
	}
	if err := w.stream(f, src); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.Path, err)
	}
	return nil
}

func (w *FileWriter) writeAtomic(src io.WriterTo) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".cdlkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := w.stream(tmpFile, src); err != nil {
		return err
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// stream writes src through a buffer and optionally syncs the file.
func (w *FileWriter) stream(f *os.File, src io.WriterTo) error {
	bw := bufio.NewWriter(f)
	if _, err := src.WriteTo(bw); err != nil {
		return fmt.Errorf("write %s: %w", f.Name(), err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", f.Name(), err)
	}
	if w.Sync {
		if err := syncFile(f); err != nil {
			return fmt.Errorf("sync %s: %w", f.Name(), err)
		}
	}
	return nil
}
