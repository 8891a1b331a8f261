// Package grid provides the rectangular row-major containers and views the
// convolution engine operates over.
package grid

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned when a backing slice's length does not equal
// width*height.
var ErrSizeMismatch = errors.New("grid: data length does not match dimensions")

// Grid is the read-only contract for rectangular row-major data.
//
// Implementations guarantee that for every in-range (row, col),
// At(row, col) agrees with Data()[row*Width()+col], index-remapping views
// excepted.
type Grid[T any] interface {
	// Width returns the number of columns. Fixed after construction.
	Width() int

	// Height returns the number of rows. Fixed after construction.
	Height() int

	// Data returns the backing sequence, Width()*Height() elements in
	// row-major order.
	Data() []T

	// At returns the element at (row, col). The second result is false
	// when either index is out of range; there is no wraparound into
	// neighboring rows.
	At(row, col int) (T, bool)
}

// Mutable extends Grid with write access for convolution targets.
type Mutable[T any] interface {
	Grid[T]

	// MutData returns a writable view of the same backing sequence,
	// never a reallocation.
	MutData() []T
}

// Dense is the concrete Grid container: validated dimensions over a flat
// row-major slice.
type Dense[T any] struct {
	width  int
	height int
	data   []T
}

// NewDense creates a grid over the supplied backing slice. The slice is
// adopted, not copied; callers that need isolation should Clone.
//
// Construction fails iff len(data) != width*height, so a 0x0 grid over an
// empty slice is valid.
func NewDense[T any](width, height int, data []T) (*Dense[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrSizeMismatch, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d requires %d elements, but got %d",
			ErrSizeMismatch, width, height, width*height, len(data))
	}
	return &Dense[T]{width: width, height: height, data: data}, nil
}

// Zero creates a grid of the given dimensions with zero-valued elements.
func Zero[T any](width, height int) *Dense[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	return &Dense[T]{width: width, height: height, data: make([]T, width*height)}
}

// Filled creates a grid of the given dimensions with every element set to v.
func Filled[T any](width, height int, v T) *Dense[T] {
	d := Zero[T](width, height)
	for i := range d.data {
		d.data[i] = v
	}
	return d
}

// Width returns the number of columns.
func (d *Dense[T]) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense[T]) Height() int { return d.height }

// Data returns the backing slice in row-major order.
func (d *Dense[T]) Data() []T { return d.data }

// MutData returns the backing slice for writing.
//
// Modifications to the returned slice modify the grid.
func (d *Dense[T]) MutData() []T { return d.data }

// At returns the element at (row, col), or false when out of range.
func (d *Dense[T]) At(row, col int) (T, bool) {
	if row < 0 || row >= d.height || col < 0 || col >= d.width {
		var zero T
		return zero, false
	}
	return d.data[row*d.width+col], true
}

// Set writes v at (row, col) and reports whether the position was in range.
func (d *Dense[T]) Set(row, col int, v T) bool {
	if row < 0 || row >= d.height || col < 0 || col >= d.width {
		return false
	}
	d.data[row*d.width+col] = v
	return true
}

// Clone returns a deep copy with its own backing slice.
func (d *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(d.data))
	copy(data, d.data)
	return &Dense[T]{width: d.width, height: d.height, data: data}
}
