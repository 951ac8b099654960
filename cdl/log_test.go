package cdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmptyAndActive(t *testing.T) {
	l := New()
	require.True(t, l.Active())
	require.Equal(t, 0, l.CountActiveBlocks())
	require.Equal(t, [NumBlockKinds]int{}, l.BlockSizes())

	require.False(t, New(WithActive(false)).Active())
}

func TestInitSizesAndZeroFills(t *testing.T) {
	l := New()
	l.Init(smallLayout)
	require.Equal(t, smallLayout.BlockSizes(), l.BlockSizes())
	require.Equal(t, 3, l.CountActiveBlocks())
	for _, k := range BlockKinds() {
		for _, v := range l.Block(k) {
			require.Zero(t, v)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	l := newInitialized(Layout{ROMSize: 0x8000, SRAMSizeCode: 1})
	l.Set(CartROM, ExecFirst, 0x10)
	l.Set(CartRAM, CPUData, 0x7ff)

	l.Init(smallLayout)
	require.Equal(t, smallLayout.BlockSizes(), l.BlockSizes())
	require.Equal(t, None, l.Get(CartROM, 0x10))
	require.Empty(t, l.Block(CartRAM))

	l.Init(Layout{ROMSize: 0x10000})
	require.Len(t, l.Block(CartROM), 0x10000)
	require.Equal(t, None, l.Get(CartROM, 0x10))
}

func TestSetAccumulates(t *testing.T) {
	l := newInitialized(smallLayout)
	l.Set(CartROM, ExecFirst, 0x10)
	l.Set(CartROM, CPUXFlag, 0x10)
	l.Set(CartROM, ExecFirst, 0x10)
	require.Equal(t, ExecFirst|CPUXFlag, l.Get(CartROM, 0x10))
	require.Equal(t, byte(0x11), l.Block(CartROM)[0x10])

	l.Set(WRAM, DMAData, 0x1ffff)
	require.Equal(t, DMAData, l.Get(WRAM, 0x1ffff))
	l.Set(APURAM, BRR, 0)
	require.Equal(t, BRR, l.Get(APURAM, 0))
}

func TestSetOutOfRangeIsNoop(t *testing.T) {
	l := newInitialized(smallLayout)
	before := l.Clone()

	for _, k := range BlockKinds() {
		size := uint32(len(l.Block(k)))
		require.NotPanics(t, func() {
			l.Set(k, ExecFirst, size)
			l.Set(k, ExecFirst, size+1)
			l.Set(k, ExecFirst, 0xffffffff)
		}, k.String())
		assert.Equal(t, None, l.Get(k, size))
	}
	require.NotPanics(t, func() {
		l.Set(BlockKind(NumBlockKinds), ExecFirst, 0)
		l.Set(BlockKind(0xff), ExecFirst, 0)
	})
	require.Equal(t, before.BlockSizes(), l.BlockSizes())
	for _, k := range BlockKinds() {
		require.Equal(t, before.Block(k), l.Block(k), k.String())
	}

	empty := New()
	require.NotPanics(t, func() { empty.Set(CartROM, ExecFirst, 0) })
	require.Equal(t, 0, empty.CountActiveBlocks())
}

func TestSetInactiveIsNoop(t *testing.T) {
	l := newInitialized(smallLayout)
	l.Set(CartROM, ExecFirst, 1)

	l.SetActive(false)
	require.False(t, l.Active())
	l.Set(CartROM, ExecOperand, 2)
	require.Equal(t, None, l.Get(CartROM, 2))
	require.Equal(t, ExecFirst, l.Get(CartROM, 1), "gate keeps existing data")

	l.SetActive(true)
	l.Set(CartROM, ExecOperand, 2)
	require.Equal(t, ExecOperand, l.Get(CartROM, 2))
}

func TestSetDoesNotAllocate(t *testing.T) {
	l := newInitialized(smallLayout)
	allocs := testing.AllocsPerRun(1000, func() {
		l.Set(CartROM, ExecFirst, 0x100)
		l.Set(WRAM, CPUData, 0x40000)
	})
	require.Zero(t, allocs)
}

func TestResetEmptiesEverything(t *testing.T) {
	l := newInitialized(Layout{ROMSize: 0x8000, SRAMSizeCode: 2})
	l.Set(CartRAM, CPUData, 3)
	l.Reset()
	require.Equal(t, 0, l.CountActiveBlocks())
	require.Equal(t, [NumBlockKinds]int{}, l.BlockSizes())
	require.Equal(t, None, l.Get(CartRAM, 3))
	require.True(t, l.Active())
}

func TestCloneIsDeep(t *testing.T) {
	l := newInitialized(smallLayout)
	l.Set(CartROM, ExecFirst, 5)

	c := l.Clone()
	l.Set(CartROM, CPUData, 5)
	require.Equal(t, ExecFirst, c.Get(CartROM, 5))
	require.Equal(t, ExecFirst|CPUData, l.Get(CartROM, 5))
	require.Equal(t, l.BlockSizes(), c.BlockSizes())
	require.Nil(t, l.Block(BlockKind(NumBlockKinds)))
}

func BenchmarkSet(b *testing.B) {
	l := newInitialized(smallLayout)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Set(CartROM, ExecFirst, uint32(i)&0xffff)
	}
}
