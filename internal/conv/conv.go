// Package conv implements the convolution engine.
//
// The engine works per kernel tap rather than per output pixel: every tap
// induces one signed linear shift of the row-major input relative to the
// output, so each tap costs a single scale-and-accumulate sweep over the
// overlap of the two buffers. Elements without a counterpart are never
// combined, which is exactly zero-padding at the boundary.
package conv

import (
	"fmt"

	"github.com/gridconv/gridconv/internal/grid"
	"github.com/gridconv/gridconv/internal/parallel"
)

// Arithmetic is the capability set for wrap-around accumulation. T is the
// grid element type and K the kernel coefficient type; fixed-width integer
// overflow follows the element type's native rule.
type Arithmetic[T, K any] interface {
	// Mul scales an element by a kernel coefficient.
	Mul(v T, coeff K) T

	// Add accumulates two elements.
	Add(a, b T) T
}

// SaturatingArithmetic is the capability set for clamped accumulation:
// results stick to the element type's range instead of wrapping. Required
// whenever kernel coefficients can push intermediate sums outside the
// element type's range, as with 8-bit pixel data.
type SaturatingArithmetic[T, K any] interface {
	// SaturatingMul scales an element by a kernel coefficient, clamping.
	SaturatingMul(v T, coeff K) T

	// SaturatingAdd accumulates two elements, clamping.
	SaturatingAdd(a, b T) T
}

// Convolve returns the convolution of image with kernel in a freshly
// allocated, zero-initialized grid of the image's dimensions.
//
// The kernel is read through a 180° flipped view, per the mathematical
// definition of convolution. Kernels are expected to be narrower than the
// image; a wider kernel makes taps bleed across row boundaries instead of
// being clipped, a known artifact of the linear alignment scheme.
//
// Panics if the kernel fails to produce a value for an in-range position,
// since that indicates a broken kernel implementation rather than bad
// input data.
func Convolve[T, K any](image grid.Grid[T], kernel grid.Grid[K], ar Arithmetic[T, K]) *grid.Dense[T] {
	out := grid.Zero[T](image.Width(), image.Height())
	ConvolveTo[T, K](out, image, kernel, ar)
	return out
}

// ConvolveTo accumulates the convolution of image with kernel into dst,
// for buffer reuse across repeated calls.
//
// dst must have the image's dimensions; that is a caller obligation and is
// not re-validated here. dst is accumulated into as-is, so callers reusing
// a buffer must zero it first to obtain a plain convolution.
//
// Panics under the same kernel contract as Convolve.
func ConvolveTo[T, K any](dst grid.Mutable[T], image grid.Grid[T], kernel grid.Grid[K], ar Arithmetic[T, K]) {
	// Flip the kernel, as is the custom for convolutions.
	flipped := grid.Flip(kernel)

	strideX := flipped.Width() / 2
	strideY := flipped.Height() / 2
	cfg := ParallelConfig()

	for row := 0; row < flipped.Height(); row++ {
		// Rows between the top of the image and the top of the kernel.
		rowsOffCenter := row - strideY

		for col := 0; col < flipped.Width(); col++ {
			// Columns between the left side of the image and the left
			// side of the kernel.
			colsOffCenter := col - strideX

			// The number of elements the image buffer must be shifted to
			// align this tap with the output.
			alignment := rowsOffCenter*image.Width() + colsOffCenter

			coeff, ok := flipped.At(row, col)
			if !ok {
				panic(fmt.Sprintf("conv: kernel produced no value at (%d, %d) despite declaring %dx%d",
					row, col, flipped.Width(), flipped.Height()))
			}
			accumulate(image.Data(), coeff, alignment, dst.MutData(), ar, cfg)
		}
	}
}

// ConvolveSaturating returns the convolution of image with kernel using
// saturating arithmetic, in a freshly allocated zero-initialized grid.
//
// Panics under the same kernel contract as Convolve.
func ConvolveSaturating[T, K any](image grid.Grid[T], kernel grid.Grid[K], ar SaturatingArithmetic[T, K]) *grid.Dense[T] {
	out := grid.Zero[T](image.Width(), image.Height())
	ConvolveSaturatingTo[T, K](out, image, kernel, ar)
	return out
}

// ConvolveSaturatingTo accumulates the saturating convolution of image
// with kernel into dst. The dst obligations match ConvolveTo.
//
// Panics under the same kernel contract as Convolve.
func ConvolveSaturatingTo[T, K any](dst grid.Mutable[T], image grid.Grid[T], kernel grid.Grid[K], ar SaturatingArithmetic[T, K]) {
	flipped := grid.Flip(kernel)

	strideX := flipped.Width() / 2
	strideY := flipped.Height() / 2
	cfg := ParallelConfig()

	for row := 0; row < flipped.Height(); row++ {
		rowsOffCenter := row - strideY

		for col := 0; col < flipped.Width(); col++ {
			colsOffCenter := col - strideX
			alignment := rowsOffCenter*image.Width() + colsOffCenter

			coeff, ok := flipped.At(row, col)
			if !ok {
				panic(fmt.Sprintf("conv: kernel produced no value at (%d, %d) despite declaring %dx%d",
					row, col, flipped.Width(), flipped.Height()))
			}
			accumulateSaturating(image.Data(), coeff, alignment, dst.MutData(), ar, cfg)
		}
	}
}

// splitAlignment converts a signed alignment into discard and pad counts.
// A negative alignment drops leading input elements (the tap lands above
// or left of the output), a positive one skips leading output elements.
func splitAlignment(alignment int) (discard, pad int) {
	if alignment < 0 {
		return -alignment, 0
	}
	return 0, alignment
}

// accumulate adds the coeff-scaled image into buf at the given alignment.
// The overlap length is clipped to both buffers; taps run one at a time,
// with parallelism only inside the element sweep, because consecutive
// taps write overlapping buffer ranges.
func accumulate[T, K any](image []T, coeff K, alignment int, buf []T, ar Arithmetic[T, K], cfg parallel.Config) {
	discard, pad := splitAlignment(alignment)
	n := min(len(image)-discard, len(buf)-pad)
	if n <= 0 {
		return
	}
	src := image[discard : discard+n]
	dst := buf[pad : pad+n]
	parallel.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = ar.Add(dst[i], ar.Mul(src[i], coeff))
		}
	}, cfg)
}

func accumulateSaturating[T, K any](image []T, coeff K, alignment int, buf []T, ar SaturatingArithmetic[T, K], cfg parallel.Config) {
	discard, pad := splitAlignment(alignment)
	n := min(len(image)-discard, len(buf)-pad)
	if n <= 0 {
		return
	}
	src := image[discard : discard+n]
	dst := buf[pad : pad+n]
	parallel.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = ar.SaturatingAdd(dst[i], ar.SaturatingMul(src[i], coeff))
		}
	}, cfg)
}
