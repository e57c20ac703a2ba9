package page

import (
	"testing"

	"go-slotted-page/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestSlotMapAddressing(t *testing.T) {
	s := slotMap{start: 64}
	require.Equal(t, 62, s.entryOffset(0, 64))
	require.Equal(t, 60, s.entryOffset(1, 64))
	require.Equal(t, 44, s.entryOffset(9, 64))
}

func TestSlotMapInsertShifts(t *testing.T) {
	data := make([]byte, 64)
	f := freeSpace{start: 0, end: 64}
	s := slotMap{start: 64}

	// row offsets arrive out of logical order; the middle insert has to
	// shift the highest entry one slot left
	require.NoError(t, s.insert(&f, data, 100, 0))
	require.NoError(t, s.insert(&f, data, 300, 1))
	require.NoError(t, s.insert(&f, data, 200, 1))

	require.Equal(t, 58, s.start)
	require.Equal(t, 100, s.get(data, 0))
	require.Equal(t, 200, s.get(data, 1))
	require.Equal(t, 300, s.get(data, 2))

	// slot 0 occupies the last two bytes of the body
	require.Equal(t, uint16(100), bin.Uint16(data[62:64]))
	require.Equal(t, uint16(200), bin.Uint16(data[60:62]))
	require.Equal(t, uint16(300), bin.Uint16(data[58:60]))
}

func TestSlotMapInsertAtHead(t *testing.T) {
	data := make([]byte, 64)
	f := freeSpace{start: 0, end: 64}
	s := slotMap{start: 64}

	require.NoError(t, s.insert(&f, data, 20, 0))
	require.NoError(t, s.insert(&f, data, 10, 0))

	require.Equal(t, 10, s.get(data, 0))
	require.Equal(t, 20, s.get(data, 1))
}

func TestSlotMapGetOutOfRange(t *testing.T) {
	data := make([]byte, 64)
	s := slotMap{start: 62}

	require.Equal(t, 0, s.get(data, 0))
	require.Panics(t, func() { s.get(data, 1) })
	require.Panics(t, func() { s.get(data, -1) })
}

func TestSlotMapInsertFull(t *testing.T) {
	data := make([]byte, 8)
	f := freeSpace{start: 8, end: 8}
	s := slotMap{start: 8}

	require.ErrorIs(t, s.insert(&f, data, 0, 0), customerrors.ErrPageFull)
	require.Equal(t, 8, s.start)
	require.Equal(t, 8, f.end)
}
