// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric provides the public API for the scalar arithmetic
// behind convolution: type constraints, wrap-around and saturating
// operation sets, and representability checks for narrowing conversions.
package numeric

import (
	"github.com/gridconv/gridconv/internal/numeric"
)

// Type aliases for public API

// Scalar is the constraint satisfied by every built-in integer and
// floating-point type.
type Scalar = numeric.Scalar

// Integer matches the built-in integer types.
type Integer = numeric.Integer

// Float matches the built-in floating-point types.
type Float = numeric.Float

// Signed matches the signed integer types.
type Signed = numeric.Signed

// Unsigned matches the unsigned integer types.
type Unsigned = numeric.Unsigned

// Wrapping provides native Go arithmetic, where integer overflow wraps
// around.
//
// Example:
//
//	var ar numeric.Wrapping[uint8]
//	ar.Add(250, 10) // 4
type Wrapping[T Scalar] = numeric.Wrapping[T]

// Saturating provides arithmetic that clamps to the type's range instead
// of wrapping. Floating-point operations saturate naturally at ±Inf.
//
// Example:
//
//	var ar numeric.Saturating[uint8]
//	ar.SaturatingAdd(250, 10) // 255
type Saturating[T Scalar] = numeric.Saturating[T]

// Representable reports whether v survives conversion to U without
// wrapping, truncation, or sign change. Conversions to floating-point
// types always succeed; NaN is representable only in floating-point
// targets.
//
// Example:
//
//	numeric.Representable[uint8](255.0) // true
//	numeric.Representable[uint8](256.0) // false
func Representable[U, T Scalar](v T) bool {
	return numeric.Representable[U, T](v)
}
