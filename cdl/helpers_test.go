package cdl

import (
	"path/filepath"
	"testing"

	"github.com/joshuapare/cdlkit/internal/format"
)

// --- helpers ---

// smallLayout mirrors a 32 KiB LoROM cartridge without save RAM.
var smallLayout = Layout{ROMSize: 0x8000}

type rawEntry struct {
	name string
	data []byte
}

// encodeRaw builds an encoded log by hand, block order and names as given.
func encodeRaw(magic, platform string, entries ...rawEntry) []byte {
	b := format.AppendString(nil, magic)
	b = format.AppendString(b, platform)
	b = format.AppendU32BE(b, uint32(len(entries)))
	for _, e := range entries {
		b = format.AppendString(b, e.name)
		b = format.AppendU32BE(b, uint32(len(e.data)))
		b = append(b, e.data...)
	}
	return b
}

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func newInitialized(layout Layout) *Log {
	l := New()
	l.Init(layout)
	return l
}
