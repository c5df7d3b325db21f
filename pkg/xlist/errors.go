package xlist

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every IndexError.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports a positional operation that was given an index outside
// the valid bound for that operation. The list is left unchanged.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("xlist: %s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// UnsupportedError is returned by the list operations xlist deliberately
// does not implement. It unwraps to errors.ErrUnsupported.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return "xlist: " + e.Op + " is not supported"
}

func (e *UnsupportedError) Unwrap() error {
	return errors.ErrUnsupported
}
