// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for two-dimensional element grids.
//
// Grids are the data structure everything else in gridconv operates on:
// images, kernels, and convolution results are all grids. The package
// defines:
//   - Grid[T]: read access to a rectangle of elements
//   - Mutable[T]: a grid whose backing storage can be written
//   - Dense[T]: the standard row-major container
//   - Flipped[T]: a non-copying 180° rotated view
//
// Example:
//
//	g, err := grid.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, ok := g.At(1, 2) // row 1, column 2 -> 6
package grid

import (
	"github.com/gridconv/gridconv/internal/grid"
)

// Type aliases for public API

// Grid is read access to a rectangle of elements addressed by
// (row, column).
type Grid[T any] = grid.Grid[T]

// Mutable is a Grid with writable backing storage.
type Mutable[T any] = grid.Mutable[T]

// Dense is a row-major grid backed by a flat slice.
type Dense[T any] = grid.Dense[T]

// Flipped is a view that reads its source rotated by 180°.
type Flipped[T any] = grid.Flipped[T]

// ErrSizeMismatch is returned by NewDense when the slice length does not
// equal width times height.
var ErrSizeMismatch = grid.ErrSizeMismatch

// NewDense wraps data in a width×height grid. The slice is adopted, not
// copied, and its length must be exactly width*height.
//
// Example:
//
//	g, err := grid.NewDense(3, 3, make([]int, 9))
func NewDense[T any](width, height int, data []T) (*Dense[T], error) {
	return grid.NewDense[T](width, height, data)
}

// Zero creates a width×height grid of zero values. It panics if either
// dimension is negative.
//
// Example:
//
//	g := grid.Zero[float32](640, 480)
func Zero[T any](width, height int) *Dense[T] {
	return grid.Zero[T](width, height)
}

// Filled creates a width×height grid with every element set to value.
//
// Example:
//
//	g := grid.Filled(3, 3, 1.0)
func Filled[T any](width, height int, value T) *Dense[T] {
	return grid.Filled[T](width, height, value)
}

// Flip returns a 180° rotated view of g. No elements are copied; reads
// through At are remapped while Data still exposes the source order.
//
// Example:
//
//	k := grid.Flip[int](kernel)
func Flip[T any](g Grid[T]) Flipped[T] {
	return grid.Flip[T](g)
}

// Map applies f to every element of g and collects the results in a new
// dense grid of the same dimensions.
//
// Example:
//
//	scaled := grid.Map[uint8](g, func(v uint8) float64 { return float64(v) / 255 })
func Map[T, U any](g Grid[T], f func(T) U) *Dense[U] {
	return grid.Map[T, U](g, f)
}

// Equal reports whether two grids have the same dimensions and elements.
func Equal[T comparable](a, b Grid[T]) bool {
	return grid.Equal[T](a, b)
}
