package mmr3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 is returned when a string key is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("key is not valid UTF-8")

	// ErrUnsupportedBits is returned when a hash width other than 32 or 128 is requested.
	ErrUnsupportedBits = errors.New("bits must be either 32 or 128")

	// ErrInvalidShape is returned when an array shape does not describe its data.
	ErrInvalidShape = errors.New("invalid array shape")

	// ErrNilArray is returned when a batch operation receives a nil array.
	ErrNilArray = errors.New("array is nil")

	// ErrIndexOutOfRange is returned by Array.At for an index outside the shape.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrInvalidBits indicates an unsupported hash width.
//
// It unwraps to ErrUnsupportedBits.
type ErrInvalidBits struct {
	Bits Bits
}

func (e *ErrInvalidBits) Error() string {
	return fmt.Sprintf("invalid bits: %d (must be 32 or 128)", int(e.Bits))
}

func (e *ErrInvalidBits) Unwrap() error { return ErrUnsupportedBits }

// ErrInvalidKey indicates a batch element that failed validation.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidKey struct {
	Index int
	cause error
}

func (e *ErrInvalidKey) Error() string {
	return fmt.Sprintf("invalid key at index %d: %v", e.Index, e.cause)
}

func (e *ErrInvalidKey) Unwrap() error { return e.cause }

// ErrShapeMismatch indicates a shape whose element count differs from the
// data length, or which contains a negative dimension.
//
// It unwraps to ErrInvalidShape.
type ErrShapeMismatch struct {
	Shape []int
	Len   int
	cause error
}

func (e *ErrShapeMismatch) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("shape %v does not match %d elements: %v", e.Shape, e.Len, e.cause)
	}
	return fmt.Sprintf("shape %v does not match %d elements", e.Shape, e.Len)
}

func (e *ErrShapeMismatch) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidShape, e.cause}
	}
	return []error{ErrInvalidShape}
}
