package raz

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the containers and the numeric codec.
var (
	ErrSyntax         = errors.New("invalid syntax")
	ErrRange          = errors.New("value out of range")
	ErrEmptyContainer = errors.New("empty container")
	ErrOutOfBounds    = errors.New("index out of bounds")
)

// ParseError reports numeric text that could not be decoded.
type ParseError struct {
	Func   string // Decoder that failed (e.g., "ParseInt")
	Input  string // Text being decoded
	Offset int    // Byte offset of the offending character, -1 if not tied to one
	Err    error  // ErrSyntax or ErrRange
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("raz.%s: parsing %q: %v at offset %d", e.Func, e.Input, e.Err, e.Offset)
	}
	return fmt.Sprintf("raz.%s: parsing %q: %v", e.Func, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexError reports an index outside the logical length of a container.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d (len=%d)", ErrOutOfBounds, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}
