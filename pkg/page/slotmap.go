package page

import "github.com/pkg/errors"

// slotMap is the slot directory: fixed size entries packed against the
// end of the page body, each a u16 LE row offset. Logical slot 0
// occupies the last SlotEntrySize bytes of the body and higher slots sit
// at lower addresses, so the directory grows leftward toward the row
// region without ever moving row data.
type slotMap struct {
	// start is the byte offset of the leftmost used entry, i.e. the
	// entry with the highest logical index. len(body) when empty.
	start int
}

// entryOffset maps a logical slot index to the byte offset of its entry.
func (s slotMap) entryOffset(index, bodyLen int) int {
	return bodyLen - (index+1)*SlotEntrySize
}

// get returns the row offset stored in the entry at the given logical
// index. Indexes beyond the directory are a bug in this layer.
func (s slotMap) get(data []byte, index int) int {
	off := s.entryOffset(index, len(data))
	if index < 0 || off < s.start {
		panic(errors.Errorf("page: slot index %d outside directory", index))
	}
	return int(bin.Uint16(data[off : off+SlotEntrySize]))
}

// insert opens the directory at the given logical index and stores a row
// offset there. Entries with logical index >= index move one slot
// further left to make room, preserving their relative order, so passing
// the sorted insertion point for the new row's key keeps the directory
// sorted.
func (s *slotMap) insert(free *freeSpace, data []byte, rowOffset uint16, index int) error {
	newStart, err := free.allocateSlotEntrySpace()
	if err != nil {
		return err
	}

	// Entries at logical indexes >= index occupy [oldStart, shiftEnd);
	// move them one entry toward the row region.
	oldStart := s.start
	s.start = newStart
	shiftEnd := len(data) - index*SlotEntrySize
	copy(data[newStart:], data[oldStart:shiftEnd])

	off := s.entryOffset(index, len(data))
	bin.PutUint16(data[off:off+SlotEntrySize], rowOffset)
	return nil
}
