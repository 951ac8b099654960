package writer

import (
	"bytes"
	"io"
)

// MemWriter captures log bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteLog replaces Buf with the encoding of src.
func (w *MemWriter) WriteLog(src io.WriterTo) error {
	out := bytes.NewBuffer(w.Buf[:0])
	if _, err := src.WriteTo(out); err != nil {
		return err
	}
	w.Buf = out.Bytes()
	return nil
}
