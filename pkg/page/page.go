// Package page implements a fixed size slotted page for B-Tree leaf
// storage. Variable length key/value rows are packed from the left edge
// of the page body, a slot directory of row offsets grows leftward from
// the right edge, and the free space between them shrinks as both grow.
// Read in logical order, the directory yields rows in ascending key
// order, so point lookups are a binary search over the directory.
//
// The page does no I/O and no locking. The backing buffer belongs to the
// caller (the buffer pool), which must also serialize access: concurrent
// Save calls on one page are not safe.
package page

import (
	"encoding/binary"

	"go-slotted-page/pkg/customerrors"
	"go-slotted-page/util/helpers"

	"github.com/pkg/errors"
)

// bin is the byte order used for all on-page integers.
var bin = binary.LittleEndian

const (
	// PageSize is the fixed size of a page buffer in bytes.
	PageSize = 8000

	// PageHeaderSize is the page header length - 2 (slot count).
	PageHeaderSize = 2

	// SlotEntrySize is the size of one slot directory entry.
	SlotEntrySize = 2

	// RowHeaderSize is the row header length - 2 (key size) + 2 (value size).
	RowHeaderSize = 4

	bodySize = PageSize - PageHeaderSize
)

// CompareFunc defines the ordering of row keys within a page. It must
// return a negative number if a sorts before b, 0 if they are equal and
// a positive number otherwise.
type CompareFunc func(a, b []byte) int

// Options represents the configuration options for a page.
type Options struct {
	// Compare is the key ordering function. The B-Tree layer owning the
	// page supplies it; if nil, helpers.CompareLE is used.
	Compare CompareFunc
}

var defaultOptions = Options{
	Compare: helpers.CompareLE,
}

// Page is a view over one fixed size page buffer: the 2 byte header
// holding the slot count, and the body holding rows, free space and the
// slot directory. The two views cover disjoint byte ranges of the same
// buffer.
type Page struct {
	header pageHeader
	body   pageBody
}

// New returns a page over a fresh buffer. The buffer must be PageSize
// bytes; its header is reset so the page starts empty.
func New(buf []byte, opts *Options) *Page {
	if len(buf) != PageSize {
		panic(errors.Errorf("page: buffer must be %d bytes, got %d", PageSize, len(buf)))
	}

	p := &Page{
		header: newHeader(buf[:PageHeaderSize]),
		body:   newBody(buf[PageHeaderSize:], resolveCompare(opts)),
	}
	p.header.setSlotCount(0)
	return p
}

// Load reconstructs a page from existing buffer bytes. The row region
// end is recovered by walking slotCount rows from the start of the body
// (the byte format does not persist it), and the slot directory is
// validated against the recovered bound. Returns ErrCorruptPage if the
// bytes violate the page layout.
func Load(buf []byte, opts *Options) (*Page, error) {
	if len(buf) != PageSize {
		return nil, errors.Wrapf(customerrors.ErrCorruptPage,
			"buffer must be %d bytes, got %d", PageSize, len(buf))
	}

	header := newHeader(buf[:PageHeaderSize])
	body, err := readBody(buf[PageHeaderSize:], int(header.slotCount()), resolveCompare(opts))
	if err != nil {
		return nil, err
	}

	return &Page{header: header, body: body}, nil
}

// Get returns a copy of the value stored under key, or
// customerrors.ErrKeyNotFound if the key is not present on the page.
func (p *Page) Get(key []byte) ([]byte, error) {
	return p.body.get(key, int(p.header.slotCount()))
}

// Save stores the value under key. An existing key is updated in place,
// which requires the new value to have exactly the stored value's byte
// length (ErrValueSizeMismatch otherwise). A new key is inserted at its
// sorted position, failing with ErrPageFull if the row plus its slot
// entry exceed the free space. A failed Save leaves the page unchanged.
func (p *Page) Save(key, value []byte) error {
	idx, found := p.body.search(key, int(p.header.slotCount()))
	if found {
		return p.body.update(idx, value)
	}

	if err := p.body.insert(key, value, idx); err != nil {
		return err
	}

	// Only a fully applied insert may become visible in the header.
	p.header.increaseSlotCount(1)
	return nil
}

// SlotCount returns the number of rows stored on the page.
func (p *Page) SlotCount() int {
	return int(p.header.slotCount())
}

// FreeSpace returns the number of unused bytes between the row region
// and the slot directory. An insert needs the row length plus
// SlotEntrySize of it.
func (p *Page) FreeSpace() int {
	return p.body.free.size()
}

// RowAt returns copies of the key and value of the row addressed by the
// given logical slot. Slot 0 holds the smallest key.
func (p *Page) RowAt(index int) (key, value []byte, err error) {
	if index < 0 || index >= p.SlotCount() {
		return nil, nil, errors.Errorf("slot index %d out of range [0, %d)", index, p.SlotCount())
	}

	r := row{offset: p.body.slots.get(p.body.data, index)}
	key = append(key, r.key(p.body.data)...)
	value = append(value, r.value(p.body.data)...)
	return key, value, nil
}

func resolveCompare(opts *Options) CompareFunc {
	if opts == nil {
		opts = &defaultOptions
	}
	if opts.Compare == nil {
		return helpers.CompareLE
	}
	return opts.Compare
}
