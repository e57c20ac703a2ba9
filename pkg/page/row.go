package page

import (
	"go-slotted-page/pkg/customerrors"

	"github.com/pkg/errors"
)

const (
	keySizeOffset   = 0
	valueSizeOffset = 2
)

// row is a view over one key/value record at a fixed offset in the page
// body: a 4 byte header (key size, value size, both u16 LE) followed by
// the key bytes and the value bytes. The view holds no allocation of its
// own; every accessor takes the body bytes.
type row struct {
	offset int
}

func (r row) keySize(data []byte) int {
	off := r.offset + keySizeOffset
	return int(bin.Uint16(data[off : off+2]))
}

func (r row) valueSize(data []byte) int {
	off := r.offset + valueSizeOffset
	return int(bin.Uint16(data[off : off+2]))
}

func (r row) key(data []byte) []byte {
	start := r.offset + RowHeaderSize
	return data[start : start+r.keySize(data)]
}

func (r row) value(data []byte) []byte {
	start := r.offset + RowHeaderSize + r.keySize(data)
	return data[start : start+r.valueSize(data)]
}

// size returns the full record length including the header.
func (r row) size(data []byte) int {
	return RowHeaderSize + r.keySize(data) + r.valueSize(data)
}

// write encodes the record at the row's offset. The caller must have
// allocated size() bytes there.
func (r row) write(data, key, value []byte) {
	bin.PutUint16(data[r.offset+keySizeOffset:], uint16(len(key)))
	bin.PutUint16(data[r.offset+valueSizeOffset:], uint16(len(value)))
	copy(data[r.offset+RowHeaderSize:], key)
	copy(data[r.offset+RowHeaderSize+len(key):], value)
}

// setValue overwrites the record's value bytes in place. The caller must
// have checked that value is exactly valueSize() long.
func (r row) setValue(data, value []byte) {
	start := r.offset + RowHeaderSize + r.keySize(data)
	copy(data[start:start+len(value)], value)
}

// validate checks that the record's header and payload lie fully inside
// data[:limit]. Size fields of a corrupt record are reported instead of
// being read past.
func (r row) validate(data []byte, limit int) error {
	if r.offset < 0 || r.offset+RowHeaderSize > limit {
		return errors.Wrapf(customerrors.ErrCorruptPage,
			"row header at offset %d runs past %d", r.offset, limit)
	}
	if end := r.offset + r.size(data); end > limit {
		return errors.Wrapf(customerrors.ErrCorruptPage,
			"row at offset %d ends at %d, past %d", r.offset, end, limit)
	}
	return nil
}
