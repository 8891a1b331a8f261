// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imaging provides the public API for moving pixel data between
// the standard library's image types and gridconv grids.
//
// Decoded images become grids of pixel tuples, convolution results
// become encodable images, and the Normalize/Denormalize pairs wrap the
// usual byte ⇄ float working-range conversions.
//
// Example:
//
//	img, _, err := image.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rgb := imaging.FromImageRGB(img)
//	work := imaging.NormalizeRGB(rgb)
package imaging

import (
	"image"

	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/internal/imaging"
	"github.com/gridconv/gridconv/pixel"
)

// FromImage converts any image into a four-channel grid. *image.RGBA and
// *image.NRGBA are copied directly; other formats go through their color
// model.
func FromImage(img image.Image) *grid.Dense[pixel.RGBA[uint8]] {
	return imaging.FromImage(img)
}

// FromImageRGB converts any image into a three-channel grid, dropping
// alpha.
func FromImageRGB(img image.Image) *grid.Dense[pixel.RGB[uint8]] {
	return imaging.FromImageRGB(img)
}

// FromImageGray converts any image into a single-channel grid, applying
// the standard luma weighting to color sources.
func FromImageGray(img image.Image) *grid.Dense[pixel.Gray[uint8]] {
	return imaging.FromImageGray(img)
}

// FromRGBA copies an *image.RGBA into a four-channel grid.
func FromRGBA(img *image.RGBA) *grid.Dense[pixel.RGBA[uint8]] {
	return imaging.FromRGBA(img)
}

// FromNRGBA copies an *image.NRGBA into a four-channel grid.
func FromNRGBA(img *image.NRGBA) *grid.Dense[pixel.RGBA[uint8]] {
	return imaging.FromNRGBA(img)
}

// FromGray copies an *image.Gray into a single-channel grid.
func FromGray(img *image.Gray) *grid.Dense[pixel.Gray[uint8]] {
	return imaging.FromGray(img)
}

// ToImageRGBA renders a four-channel grid as an *image.RGBA.
func ToImageRGBA(g grid.Grid[pixel.RGBA[uint8]]) *image.RGBA {
	return imaging.ToImageRGBA(g)
}

// ToImageRGB renders a three-channel grid as an *image.RGBA with opaque
// alpha.
func ToImageRGB(g grid.Grid[pixel.RGB[uint8]]) *image.RGBA {
	return imaging.ToImageRGB(g)
}

// ToImageGray renders a single-channel grid as an *image.Gray.
func ToImageGray(g grid.Grid[pixel.Gray[uint8]]) *image.Gray {
	return imaging.ToImageGray(g)
}

// NormalizeRGB maps byte channels onto [0, 1] floats.
func NormalizeRGB(g grid.Grid[pixel.RGB[uint8]]) *grid.Dense[pixel.RGB[float64]] {
	return imaging.NormalizeRGB(g)
}

// DenormalizeRGB maps floats back onto bytes: magnitudes are scaled to
// [0, 255], rounded, and clamped.
func DenormalizeRGB(g grid.Grid[pixel.RGB[float64]]) *grid.Dense[pixel.RGB[uint8]] {
	return imaging.DenormalizeRGB(g)
}

// NormalizeRGB32 is NormalizeRGB in single precision.
func NormalizeRGB32(g grid.Grid[pixel.RGB[uint8]]) *grid.Dense[pixel.RGB[float32]] {
	return imaging.NormalizeRGB32(g)
}

// DenormalizeRGB32 is DenormalizeRGB in single precision.
func DenormalizeRGB32(g grid.Grid[pixel.RGB[float32]]) *grid.Dense[pixel.RGB[uint8]] {
	return imaging.DenormalizeRGB32(g)
}

// GrayToInt widens gray bytes to int32 for signed edge kernels.
func GrayToInt(g grid.Grid[pixel.Gray[uint8]]) *grid.Dense[pixel.Gray[int32]] {
	return imaging.GrayToInt(g)
}

// IntToGray folds signed responses back to bytes by magnitude, clamping
// at 255.
func IntToGray(g grid.Grid[pixel.Gray[int32]]) *grid.Dense[pixel.Gray[uint8]] {
	return imaging.IntToGray(g)
}
