package page

import (
	"go-slotted-page/pkg/customerrors"

	"github.com/pkg/errors"
)

// freeSpace tracks the unused byte range between the row region and the
// slot directory. start and end are offsets into the page body; start is
// the row region end, end is the slot directory start. Rows are
// allocated at the left edge and slot entries at the right edge, and
// neither allocation is ever reversed, matching the page's no-delete,
// no-compaction model.
type freeSpace struct {
	start int
	end   int
}

func (f *freeSpace) size() int {
	return f.end - f.start
}

// allocateRowSpace reserves size bytes at the left edge of the free
// range and returns their starting offset. On ErrPageFull no state
// changes.
func (f *freeSpace) allocateRowSpace(size int) (int, error) {
	if f.start+size > f.end {
		return 0, errors.Wrapf(customerrors.ErrPageFull,
			"row needs %d bytes, %d free", size, f.size())
	}

	offset := f.start
	f.start += size
	return offset, nil
}

// allocateSlotEntrySpace reserves SlotEntrySize bytes at the right edge
// of the free range and returns their starting offset. On ErrPageFull no
// state changes.
func (f *freeSpace) allocateSlotEntrySpace() (int, error) {
	if f.start+SlotEntrySize > f.end {
		return 0, errors.Wrapf(customerrors.ErrPageFull,
			"slot entry needs %d bytes, %d free", SlotEntrySize, f.size())
	}

	f.end -= SlotEntrySize
	return f.end, nil
}
