package page

import "github.com/pkg/errors"

// pageHeader is a view over the first PageHeaderSize bytes of the page.
// Its only field is the slot count, a u16 LE at offset 0.
type pageHeader struct {
	data []byte
}

func newHeader(data []byte) pageHeader {
	if len(data) != PageHeaderSize {
		panic(errors.Errorf("page: header window must be %d bytes, got %d", PageHeaderSize, len(data)))
	}
	return pageHeader{data: data}
}

func (h pageHeader) slotCount() uint16 {
	return bin.Uint16(h.data[0:2])
}

func (h pageHeader) setSlotCount(count uint16) {
	bin.PutUint16(h.data[0:2], count)
}

// increaseSlotCount bumps the slot count by delta. The count is
// monotonic for the lifetime of a page (there is no delete), so a result
// below the current count means a bug in this layer, not bad input: a
// full body holds far fewer rows than fit in a u16.
func (h pageHeader) increaseSlotCount(delta uint16) {
	current := h.slotCount()
	next := current + delta
	if next < current {
		panic(errors.Errorf("page: slot count overflow: %d + %d", current, delta))
	}
	h.setSlotCount(next)
}
