package page

import (
	"go-slotted-page/pkg/customerrors"

	"github.com/pkg/errors"
)

// pageBody owns the byte range after the page header and coordinates the
// three regions inside it: rows on the left, the slot directory on the
// right, free space in between. All mutations of a page funnel through
// it.
type pageBody struct {
	data    []byte
	free    freeSpace
	slots   slotMap
	compare CompareFunc
}

// newBody lays out an empty body: no rows, no directory, everything
// free.
func newBody(data []byte, compare CompareFunc) pageBody {
	return pageBody{
		data:    data,
		free:    freeSpace{start: 0, end: len(data)},
		slots:   slotMap{start: len(data)},
		compare: compare,
	}
}

// readBody reconstructs the body from existing bytes. The row region has
// no index of its own, so its end is recovered by decoding slotCount
// records one after another from offset 0. The directory start follows
// from slotCount by arithmetic. Every directory entry is then checked
// against the recovered row region bound; bytes that fail any check
// cannot be trusted and surface as ErrCorruptPage.
func readBody(data []byte, slotCount int, compare CompareFunc) (pageBody, error) {
	slotMapStart := len(data) - slotCount*SlotEntrySize
	if slotMapStart < 0 {
		return pageBody{}, errors.Wrapf(customerrors.ErrCorruptPage,
			"slot count %d does not fit in a %d byte body", slotCount, len(data))
	}

	freeStart := 0
	for i := 0; i < slotCount; i++ {
		r := row{offset: freeStart}
		if err := r.validate(data, slotMapStart); err != nil {
			return pageBody{}, err
		}
		freeStart += r.size(data)
	}
	if freeStart > slotMapStart {
		return pageBody{}, errors.Wrapf(customerrors.ErrCorruptPage,
			"row region ends at %d, past slot directory start %d", freeStart, slotMapStart)
	}

	body := pageBody{
		data:    data,
		free:    freeSpace{start: freeStart, end: slotMapStart},
		slots:   slotMap{start: slotMapStart},
		compare: compare,
	}

	for i := 0; i < slotCount; i++ {
		offset := body.slots.get(data, i)
		if offset >= freeStart {
			return pageBody{}, errors.Wrapf(customerrors.ErrCorruptPage,
				"slot %d points at offset %d, past row region end %d", i, offset, freeStart)
		}
		if err := (row{offset: offset}).validate(data, freeStart); err != nil {
			return pageBody{}, err
		}
	}

	return body, nil
}

// search performs a binary search over the slot directory for the given
// key and returns the index where it should be and a flag indicating
// whether the key exists. When not found, idx is the sorted insertion
// point.
func (b *pageBody) search(key []byte, slotCount int) (idx int, found bool) {
	left, right := 0, slotCount-1

	for left <= right {
		idx = (left + right) / 2

		r := row{offset: b.slots.get(b.data, idx)}
		cmp := b.compare(key, r.key(b.data))
		if cmp == 0 {
			return idx, true
		} else if cmp > 0 {
			left = idx + 1
		} else {
			right = idx - 1
		}
	}

	return left, false
}

// get returns a copy of the value stored under key.
func (b *pageBody) get(key []byte, slotCount int) ([]byte, error) {
	idx, found := b.search(key, slotCount)
	if !found {
		return nil, customerrors.ErrKeyNotFound
	}

	r := row{offset: b.slots.get(b.data, idx)}
	value := r.value(b.data)
	return append(make([]byte, 0, len(value)), value...), nil
}

// insert writes a new record and its directory entry at the given sorted
// insertion index. Space for both is checked before any byte is touched,
// so a failed insert leaves the body unchanged.
func (b *pageBody) insert(key, value []byte, index int) error {
	rowSize := RowHeaderSize + len(key) + len(value)
	if rowSize+SlotEntrySize > b.free.size() {
		return errors.Wrapf(customerrors.ErrPageFull,
			"row of %d bytes plus slot entry exceeds %d free", rowSize, b.free.size())
	}

	offset, err := b.free.allocateRowSpace(rowSize)
	if err != nil {
		return err
	}
	row{offset: offset}.write(b.data, key, value)

	return b.slots.insert(&b.free, b.data, uint16(offset), index)
}

// update overwrites the value of the record addressed by the given slot
// in place. The replacement must have exactly the stored value's length;
// no offset, directory or free space state changes.
func (b *pageBody) update(index int, value []byte) error {
	r := row{offset: b.slots.get(b.data, index)}
	if stored := r.valueSize(b.data); stored != len(value) {
		return errors.Wrapf(customerrors.ErrValueSizeMismatch,
			"stored value is %d bytes, replacement is %d", stored, len(value))
	}

	r.setValue(b.data, value)
	return nil
}
