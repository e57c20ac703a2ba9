// Package customerrors defines the error values shared between the page
// layer and the layers above it (B-Tree, buffer pool).
package customerrors

import (
	"errors"
)

var (
	// ErrKeyNotFound should be returned from lookup operations when the
	// lookup key is not present on the page.
	ErrKeyNotFound = errors.New("key not found")

	// ErrPageFull is returned when an insert needs more row or slot
	// directory space than the page has free. The B-Tree layer recovers
	// by splitting the page; the page itself cannot.
	ErrPageFull = errors.New("page full")

	// ErrValueSizeMismatch is returned when an update's value length
	// differs from the stored value's length. Rows never move or resize
	// within a page.
	ErrValueSizeMismatch = errors.New("value size mismatch")

	// ErrCorruptPage is returned when loaded page bytes violate the page
	// layout. Not recoverable locally; the buffer pool must treat the
	// page as lost.
	ErrCorruptPage = errors.New("corrupt page")
)
