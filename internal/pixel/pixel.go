// Package pixel provides fixed-length channel tuples used as grid elements
// for multi-channel convolution.
//
// Instead of splitting color data into one grid per channel, a grid may
// store composite values (for example RGB[float64]) and run a single
// convolution pass over all channels at once. Arithmetic is channel-wise
// with no cross-channel coupling, so the result equals the per-channel
// split, tuple layout aside.
package pixel

import "github.com/gridconv/gridconv/internal/numeric"

// Gray is a single-channel sample.
type Gray[T numeric.Scalar] [1]T

// GrayA is a gray sample with an alpha channel.
type GrayA[T numeric.Scalar] [2]T

// RGB is a three-channel color sample in red, green, blue order.
type RGB[T numeric.Scalar] [3]T

// RGBA is an RGB sample with an alpha channel.
type RGBA[T numeric.Scalar] [4]T
