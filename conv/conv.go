// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conv provides the public API for 2D convolution over grids.
//
// The engine slides a 180°-flipped kernel across an image grid and
// accumulates coefficient-weighted contributions into an output of the
// same dimensions. Regions where the kernel overhangs the image read as
// zero, and output elements start as zero, so edges darken rather than
// error. Element arithmetic is pluggable:
//   - Arithmetic[T, K]: native Go semantics (integer overflow wraps)
//   - SaturatingArithmetic[T, K]: clamps to the element type's range
//
// Elements may be scalars or channel tuples; coefficients are always
// scalars. Type parameters are stated at the call site because they
// cannot be inferred through the Grid interface:
//
//	out := conv.Convolve[float64, float64](img, k, numeric.Wrapping[float64]{})
//
// Large sweeps can be chunked across goroutines; see SetParallelConfig.
package conv

import (
	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/internal/conv"
	"github.com/gridconv/gridconv/internal/parallel"
)

// Type aliases for public API

// Arithmetic supplies the multiply and accumulate steps for element type
// T and coefficient type K. numeric.Wrapping implements it for scalars;
// the pixel Ops adapters implement it for channel tuples.
type Arithmetic[T, K any] = conv.Arithmetic[T, K]

// SaturatingArithmetic is Arithmetic whose operations clamp instead of
// wrapping. numeric.Saturating and the pixel Ops adapters implement it.
type SaturatingArithmetic[T, K any] = conv.SaturatingArithmetic[T, K]

// Config controls how element sweeps are split across goroutines.
type Config = parallel.Config

// DefaultConfig returns the configuration used until SetParallelConfig
// is called: parallelism enabled, one worker per CPU, and small sweeps
// kept sequential.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Convolve convolves image with kernel and returns a freshly allocated
// result of the image's dimensions.
//
// Example:
//
//	img, _ := grid.NewDense(3, 3, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
//	k, _ := grid.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
//	out := conv.Convolve[float64, float64](img, k, numeric.Wrapping[float64]{})
func Convolve[T, K any](image grid.Grid[T], kernel grid.Grid[K], ar Arithmetic[T, K]) *grid.Dense[T] {
	return conv.Convolve[T, K](image, kernel, ar)
}

// ConvolveTo convolves image with kernel, accumulating into dst. dst is
// not cleared first, so contributions add to whatever it already holds;
// zero it for a plain convolution. dst must have the image's dimensions.
func ConvolveTo[T, K any](dst grid.Mutable[T], image grid.Grid[T], kernel grid.Grid[K], ar Arithmetic[T, K]) {
	conv.ConvolveTo[T, K](dst, image, kernel, ar)
}

// ConvolveSaturating is Convolve with clamping element arithmetic.
//
// Example:
//
//	out := conv.ConvolveSaturating[uint8, uint8](img, k, numeric.Saturating[uint8]{})
func ConvolveSaturating[T, K any](image grid.Grid[T], kernel grid.Grid[K], ar SaturatingArithmetic[T, K]) *grid.Dense[T] {
	return conv.ConvolveSaturating[T, K](image, kernel, ar)
}

// ConvolveSaturatingTo is ConvolveTo with clamping element arithmetic.
func ConvolveSaturatingTo[T, K any](dst grid.Mutable[T], image grid.Grid[T], kernel grid.Grid[K], ar SaturatingArithmetic[T, K]) {
	conv.ConvolveSaturatingTo[T, K](dst, image, kernel, ar)
}

// SetParallelConfig replaces the package-wide parallel configuration.
// It may be called concurrently with convolutions; running sweeps keep
// the configuration they started with.
//
// Example:
//
//	conv.SetParallelConfig(conv.Config{Enabled: false})
func SetParallelConfig(cfg Config) {
	conv.SetParallelConfig(cfg)
}

// ParallelConfig returns the current package-wide parallel
// configuration.
func ParallelConfig() Config {
	return conv.ParallelConfig()
}
