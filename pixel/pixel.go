// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pixel provides the public API for multi-channel grid elements.
//
// A pixel is a fixed-length tuple of channels sharing one scalar type:
//   - Gray[T]: one channel
//   - GrayA[T]: luminance plus alpha
//   - RGB[T]: three color channels
//   - RGBA[T]: three color channels plus alpha
//
// The matching Ops adapters (GrayOps, RGBOps, ...) apply scalar
// arithmetic channel-wise, which is what lets grids of pixels flow
// through the convolution engine.
//
// Example:
//
//	var ops pixel.RGBOps[uint8]
//	p := ops.SaturatingMul(pixel.RGB[uint8]{100, 200, 3}, 2) // {200, 255, 6}
package pixel

import (
	"github.com/gridconv/gridconv/internal/pixel"
	"github.com/gridconv/gridconv/numeric"
)

// Type aliases for public API

// Gray is a single-channel pixel.
type Gray[T numeric.Scalar] = pixel.Gray[T]

// GrayA is a luminance-plus-alpha pixel.
type GrayA[T numeric.Scalar] = pixel.GrayA[T]

// RGB is a three-channel color pixel.
type RGB[T numeric.Scalar] = pixel.RGB[T]

// RGBA is a color pixel with alpha. Alpha is treated as an ordinary
// channel by every operation.
type RGBA[T numeric.Scalar] = pixel.RGBA[T]

// GrayOps applies scalar arithmetic channel-wise to Gray pixels.
type GrayOps[T numeric.Scalar] = pixel.GrayOps[T]

// GrayAOps applies scalar arithmetic channel-wise to GrayA pixels.
type GrayAOps[T numeric.Scalar] = pixel.GrayAOps[T]

// RGBOps applies scalar arithmetic channel-wise to RGB pixels.
type RGBOps[T numeric.Scalar] = pixel.RGBOps[T]

// RGBAOps applies scalar arithmetic channel-wise to RGBA pixels.
type RGBAOps[T numeric.Scalar] = pixel.RGBAOps[T]

// ErrNotRepresentable is returned by the TryConvert functions when a
// channel value does not fit the target type.
var ErrNotRepresentable = pixel.ErrNotRepresentable

// Conversion functions

// ConvertRGB converts every channel with a plain Go conversion, so
// out-of-range values wrap or truncate exactly as T(v) does.
//
// Example:
//
//	wide := pixel.ConvertRGB[float64](pixel.RGB[uint8]{1, 2, 3})
func ConvertRGB[U, T numeric.Scalar](p RGB[T]) RGB[U] {
	return pixel.ConvertRGB[U, T](p)
}

// ConvertGray is ConvertRGB for single-channel pixels.
func ConvertGray[U, T numeric.Scalar](p Gray[T]) Gray[U] {
	return pixel.ConvertGray[U, T](p)
}

// ConvertGrayA is ConvertRGB for luminance-alpha pixels.
func ConvertGrayA[U, T numeric.Scalar](p GrayA[T]) GrayA[U] {
	return pixel.ConvertGrayA[U, T](p)
}

// ConvertRGBA is ConvertRGB for four-channel pixels.
func ConvertRGBA[U, T numeric.Scalar](p RGBA[T]) RGBA[U] {
	return pixel.ConvertRGBA[U, T](p)
}

// TryConvertRGB converts every channel, failing with ErrNotRepresentable
// on the first channel whose value the target type cannot hold.
//
// Example:
//
//	q, err := pixel.TryConvertRGB[uint8](pixel.RGB[float64]{0, 128, 300})
//	// err reports channel 2
func TryConvertRGB[U, T numeric.Scalar](p RGB[T]) (RGB[U], error) {
	return pixel.TryConvertRGB[U, T](p)
}

// TryConvertGray is TryConvertRGB for single-channel pixels.
func TryConvertGray[U, T numeric.Scalar](p Gray[T]) (Gray[U], error) {
	return pixel.TryConvertGray[U, T](p)
}

// TryConvertGrayA is TryConvertRGB for luminance-alpha pixels.
func TryConvertGrayA[U, T numeric.Scalar](p GrayA[T]) (GrayA[U], error) {
	return pixel.TryConvertGrayA[U, T](p)
}

// TryConvertRGBA is TryConvertRGB for four-channel pixels.
func TryConvertRGBA[U, T numeric.Scalar](p RGBA[T]) (RGBA[U], error) {
	return pixel.TryConvertRGBA[U, T](p)
}

// MapRGB applies f to every channel.
//
// Example:
//
//	n := pixel.MapRGB(p, func(v uint8) float64 { return float64(v) / 255 })
func MapRGB[T, U numeric.Scalar](p RGB[T], f func(T) U) RGB[U] {
	return pixel.MapRGB[T, U](p, f)
}

// MapGray applies f to the single channel.
func MapGray[T, U numeric.Scalar](p Gray[T], f func(T) U) Gray[U] {
	return pixel.MapGray[T, U](p, f)
}

// MapGrayA applies f to both channels.
func MapGrayA[T, U numeric.Scalar](p GrayA[T], f func(T) U) GrayA[U] {
	return pixel.MapGrayA[T, U](p, f)
}

// MapRGBA applies f to all four channels.
func MapRGBA[T, U numeric.Scalar](p RGBA[T], f func(T) U) RGBA[U] {
	return pixel.MapRGBA[T, U](p, f)
}
