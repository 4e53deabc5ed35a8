package mmr3

import (
	"fmt"
	"slices"

	"github.com/hupe1980/mmr3/internal/conv"
)

// Array is an n-dimensional array stored in row-major order.
//
// A zero-length shape describes a scalar holding exactly one element.
type Array[T any] struct {
	shape []int
	data  []T
}

// NewArray wraps data in an array of the given shape. Without a shape the
// array is one-dimensional; use Scalar for a zero-dimensional array.
// data is not copied.
func NewArray[T any](data []T, shape ...int) (*Array[T], error) {
	if shape == nil {
		shape = []int{len(data)}
	}
	if err := checkShape(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array[T]{shape: slices.Clone(shape), data: data}, nil
}

// Scalar returns a zero-dimensional array holding v.
func Scalar[T any](v T) *Array[T] {
	return &Array[T]{shape: []int{}, data: []T{v}}
}

// Strings builds a one-dimensional array of keys.
func Strings(keys ...string) *Array[string] {
	return &Array[string]{shape: []int{len(keys)}, data: keys}
}

func checkShape(shape []int, n int) error {
	size, err := conv.Product(shape)
	if err != nil {
		return &ErrShapeMismatch{Shape: slices.Clone(shape), Len: n, cause: err}
	}
	if size != n {
		return &ErrShapeMismatch{Shape: slices.Clone(shape), Len: n}
	}
	return nil
}

// Shape returns a copy of the dimensions.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the row-major backing slice.
func (a *Array[T]) Data() []T { return a.data }

// At returns the element at the given multi-dimensional index.
func (a *Array[T]) At(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(a.shape) {
		return zero, fmt.Errorf("%w: got %d indices for %d dimensions", ErrIndexOutOfRange, len(idx), len(a.shape))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return zero, fmt.Errorf("%w: index %d in dimension %d of size %d", ErrIndexOutOfRange, i, d, a.shape[d])
		}
		off = off*a.shape[d] + i
	}
	if off >= len(a.data) {
		return zero, fmt.Errorf("%w: offset %d in %d elements", ErrIndexOutOfRange, off, len(a.data))
	}
	return a.data[off], nil
}

// Reshape returns a view of the same data with a new shape.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if err := checkShape(shape, len(a.data)); err != nil {
		return nil, err
	}
	return &Array[T]{shape: slices.Clone(shape), data: a.data}, nil
}
