package cdl

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cdlkit/internal/format"
)

func TestEndToEndScenario(t *testing.T) {
	path := tempPath(t, "a.cdl")

	l := New()
	l.Init(Layout{ROMSize: 0x8000, SRAMSizeCode: 0})
	require.Equal(t, [NumBlockKinds]int{0x8000, 0, 0x20000, 0x10000, 0, 0, 0, 0}, l.BlockSizes())

	l.Set(CartROM, ExecFirst, 0x10)
	require.NoError(t, l.Save(path, nil))

	fresh := New()
	fresh.Init(Layout{ROMSize: 0x8000, SRAMSizeCode: 0})
	require.NoError(t, fresh.Load(path))
	require.Equal(t, byte(ExecFirst), fresh.Block(CartROM)[0x10])
	require.Equal(t, 3, fresh.CountActiveBlocks())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t, "round.cdl")
	layout := Layout{ROMSize: 0x10000, SRAMSizeCode: 2}

	src := newInitialized(layout)
	for i := uint32(0); i < 0x10000; i += 3 {
		src.Set(CartROM, Flag(byte(i*37)), i)
	}
	src.Set(CartRAM, CPUData|DMAData, 0xfff)
	src.Set(WRAM, CPUMFlag, 0x1234)
	require.NoError(t, src.SaveAsIs(path))

	dst := newInitialized(layout)
	require.NoError(t, dst.Load(path))
	for _, k := range BlockKinds() {
		if diff := cmp.Diff(src.Block(k), dst.Block(k)); diff != "" {
			t.Fatalf("block %s mismatch (-want +got):\n%s", k, diff)
		}
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(src.EncodedSize()), info.Size())
}

func TestSaveAtomicAndSync(t *testing.T) {
	path := tempPath(t, "atomic.cdl")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	l := newInitialized(smallLayout)
	l.Set(APURAM, BRR, 0x200)
	require.NoError(t, l.Save(path, &SaveOptions{Atomic: true, Sync: true}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := l.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveUnwritablePath(t *testing.T) {
	l := newInitialized(smallLayout)
	err := l.Save(filepath.Join(t.TempDir(), "missing", "x.cdl"), nil)
	require.ErrorIs(t, err, ErrIO)
	require.Equal(t, 3, l.CountActiveBlocks(), "failed save keeps the log")
}

func TestLoadMergesWithoutLosingBits(t *testing.T) {
	path := tempPath(t, "merge.cdl")

	saved := newInitialized(smallLayout)
	saved.Set(CartROM, ExecFirst, 0x10)
	saved.Set(CartROM, CPUData, 0x20)
	saved.Set(WRAM, DMAData, 0x30)
	require.NoError(t, saved.Save(path, nil))

	live := newInitialized(smallLayout)
	live.Set(CartROM, ExecOperand, 0x10)
	live.Set(APURAM, BRR, 0x40)
	before := live.Clone()

	require.NoError(t, live.Load(path))
	require.Equal(t, ExecFirst|ExecOperand, live.Get(CartROM, 0x10))
	require.Equal(t, CPUData, live.Get(CartROM, 0x20))
	require.Equal(t, DMAData, live.Get(WRAM, 0x30))
	require.Equal(t, BRR, live.Get(APURAM, 0x40))

	// Monotonic: no bit set before the load is cleared by it.
	for _, k := range BlockKinds() {
		prev, now := before.Block(k), live.Block(k)
		require.Len(t, now, len(prev))
		for addr := range prev {
			if prev[addr]&^now[addr] != 0 {
				t.Fatalf("block %s addr 0x%x lost bits: before 0x%02x after 0x%02x",
					k, addr, prev[addr], now[addr])
			}
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	path := tempPath(t, "idem.cdl")
	saved := newInitialized(smallLayout)
	saved.Set(CartROM, ExecFirst|CPUXFlag, 0x100)
	saved.Set(WRAM, CPUData, 0x1000)
	require.NoError(t, saved.Save(path, nil))

	live := newInitialized(smallLayout)
	live.Set(CartROM, ExecOperand, 0x101)

	require.NoError(t, live.Load(path))
	once := live.Clone()
	require.NoError(t, live.Load(path))
	for _, k := range BlockKinds() {
		require.True(t, bytes.Equal(once.Block(k), live.Block(k)), k.String())
	}
}

func TestLoadSchemaMismatchResets(t *testing.T) {
	path := tempPath(t, "other-cart.cdl")
	require.NoError(t, newInitialized(Layout{ROMSize: 0x10000}).Save(path, nil))

	live := newInitialized(smallLayout)
	live.Set(CartROM, ExecFirst, 1)
	err := live.Load(path)
	require.ErrorIs(t, err, ErrSchemaMismatch)
	require.Equal(t, 0, live.CountActiveBlocks())
	require.Equal(t, [NumBlockKinds]int{}, live.BlockSizes())
}

func TestLoadBlockCountMismatchResets(t *testing.T) {
	path := tempPath(t, "sram.cdl")
	require.NoError(t, newInitialized(Layout{ROMSize: 0x8000, SRAMSizeCode: 1}).Save(path, nil))

	live := newInitialized(smallLayout)
	require.ErrorIs(t, live.Load(path), ErrSchemaMismatch)
	require.Equal(t, 0, live.CountActiveBlocks())
}

func TestLoadIntoEmptyLogRejectsNonEmptyFile(t *testing.T) {
	path := tempPath(t, "a.cdl")
	require.NoError(t, newInitialized(smallLayout).Save(path, nil))

	l := New()
	require.ErrorIs(t, l.Load(path), ErrSchemaMismatch)
}

func TestLoadFormatMismatch(t *testing.T) {
	path := tempPath(t, "nes.cdl")
	require.NoError(t, os.WriteFile(path, encodeRaw(format.Magic, "NES            "), 0o644))

	l := newInitialized(smallLayout)
	require.ErrorIs(t, l.LoadAsIs(path), ErrFormatMismatch)
	require.Equal(t, 0, l.CountActiveBlocks())

	l.Init(smallLayout)
	require.ErrorIs(t, l.Load(path), ErrFormatMismatch)
	require.Equal(t, 0, l.CountActiveBlocks())
}

func TestLoadMissingFile(t *testing.T) {
	l := newInitialized(smallLayout)
	err := l.Load(tempPath(t, "missing.cdl"))
	require.ErrorIs(t, err, ErrIO)
	require.Equal(t, 0, l.CountActiveBlocks())
}

func TestLoadAsIsUnknownBlock(t *testing.T) {
	path := tempPath(t, "future.cdl")
	data := encodeRaw(format.Magic, format.Platform,
		rawEntry{"FUTURE_BLOCK", filled(10, 0xaa)},
		rawEntry{"CARTROM", []byte{0x01, 0x02}},
		rawEntry{"APURAM", []byte{0x80}},
	)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var logs bytes.Buffer
	l := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, l.LoadAsIs(path))
	require.Equal(t, 2, l.CountActiveBlocks())
	require.Equal(t, []byte{0x01, 0x02}, l.Block(CartROM))
	require.Equal(t, []byte{0x80}, l.Block(APURAM))
	require.Contains(t, logs.String(), "FUTURE_BLOCK")
}

func TestZeroValueLogFileIO(t *testing.T) {
	path := tempPath(t, "zero.cdl")

	var src Log
	src.Init(Layout{ROMSize: 0x10})
	src.SetActive(true)
	src.Set(CartROM, ExecFirst, 0x3)
	require.NoError(t, src.Save(path, nil))

	var asIs Log
	require.NoError(t, asIs.LoadAsIs(path))
	require.Equal(t, src.Block(CartROM), asIs.Block(CartROM))

	var merged Log
	merged.Init(Layout{ROMSize: 0x10})
	require.NoError(t, merged.Load(path))
	require.Equal(t, ExecFirst, merged.Get(CartROM, 0x3))

	var missing Log
	require.ErrorIs(t, missing.Load(tempPath(t, "missing.cdl")), ErrIO)
}

func TestLoadAsIsEmptyFile(t *testing.T) {
	path := tempPath(t, "empty.cdl")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	l := newInitialized(smallLayout)
	require.ErrorIs(t, l.LoadAsIs(path), ErrTruncated)
	require.Equal(t, 0, l.CountActiveBlocks())
}
