package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderSlotCount(t *testing.T) {
	buf := make([]byte, PageSize)
	buf[0], buf[1] = 10, 0

	h := newHeader(buf[:PageHeaderSize])
	require.Equal(t, uint16(10), h.slotCount())

	h.setSlotCount(20)
	require.Equal(t, uint16(20), h.slotCount())
	require.Equal(t, byte(20), buf[0])
	require.Equal(t, byte(0), buf[1])

	h.increaseSlotCount(5)
	require.Equal(t, uint16(25), h.slotCount())
}

func TestHeaderSlotCountOverflow(t *testing.T) {
	h := newHeader(make([]byte, PageHeaderSize))
	h.setSlotCount(65535)

	require.Panics(t, func() { h.increaseSlotCount(1) })
	require.Equal(t, uint16(65535), h.slotCount())
}

func TestHeaderWindowSize(t *testing.T) {
	require.Panics(t, func() { newHeader(make([]byte, 3)) })
}
