package page

import (
	"testing"

	"go-slotted-page/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestFreeSpaceAllocateRowSpace(t *testing.T) {
	f := freeSpace{start: 0, end: 100}
	require.Equal(t, 100, f.size())

	off, err := f.allocateRowSpace(30)
	require.NoError(t, err)
	require.Equal(t, 0, off)
	require.Equal(t, 70, f.size())

	off, err = f.allocateRowSpace(70)
	require.NoError(t, err)
	require.Equal(t, 30, off)
	require.Equal(t, 0, f.size())
}

func TestFreeSpaceAllocateSlotEntrySpace(t *testing.T) {
	f := freeSpace{start: 0, end: 100}

	off, err := f.allocateSlotEntrySpace()
	require.NoError(t, err)
	require.Equal(t, 98, off)

	off, err = f.allocateSlotEntrySpace()
	require.NoError(t, err)
	require.Equal(t, 96, off)
	require.Equal(t, 96, f.size())
}

func TestFreeSpaceFullMutatesNothing(t *testing.T) {
	f := freeSpace{start: 10, end: 14}

	_, err := f.allocateRowSpace(5)
	require.ErrorIs(t, err, customerrors.ErrPageFull)
	require.Equal(t, 10, f.start)
	require.Equal(t, 14, f.end)

	_, err = f.allocateRowSpace(4)
	require.NoError(t, err)

	_, err = f.allocateSlotEntrySpace()
	require.ErrorIs(t, err, customerrors.ErrPageFull)
	require.Equal(t, 14, f.start)
	require.Equal(t, 14, f.end)
}
