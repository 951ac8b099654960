package cdl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeInMemory(t *testing.T) {
	a := newInitialized(smallLayout)
	b := newInitialized(smallLayout)
	a.Set(CartROM, ExecFirst, 7)
	b.Set(CartROM, CPUData, 7)
	b.Set(WRAM, DMAData, 8)

	require.NoError(t, a.Merge(b))
	require.Equal(t, ExecFirst|CPUData, a.Get(CartROM, 7))
	require.Equal(t, DMAData, a.Get(WRAM, 8))
	require.Equal(t, CPUData, b.Get(CartROM, 7), "source untouched")
}

func TestMergeSchemaMismatchLeavesLogAlone(t *testing.T) {
	a := newInitialized(smallLayout)
	a.Set(CartROM, ExecFirst, 7)
	b := newInitialized(Layout{ROMSize: 0x4000})

	require.ErrorIs(t, a.Merge(b), ErrSchemaMismatch)
	require.ErrorIs(t, a.CheckSchema(New()), ErrSchemaMismatch)
	require.Equal(t, ExecFirst, a.Get(CartROM, 7))
	require.NoError(t, a.CheckSchema(a.Clone()))
}
