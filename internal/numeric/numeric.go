// Package numeric defines the scalar capability sets used by grid
// convolution: constraint interfaces over the built-in number types and
// the wrap-around and saturating arithmetic implementations.
package numeric

import "golang.org/x/exp/constraints"

// Scalar is the constraint for grid element and kernel coefficient types.
// It covers all built-in integer and floating-point types.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Re-exported constraint sets.

// Integer covers all built-in integer types.
type Integer = constraints.Integer

// Float covers float32 and float64.
type Float = constraints.Float

// Signed covers the signed integer types.
type Signed = constraints.Signed

// Unsigned covers the unsigned integer types.
type Unsigned = constraints.Unsigned

// Wrapping provides plain machine arithmetic: fixed-width integers
// overflow by wrapping around, floats follow IEEE 754.
//
// The zero value is ready to use:
//
//	var ar numeric.Wrapping[int32]
//	sum := ar.Add(a, ar.Mul(v, coeff))
type Wrapping[T Scalar] struct{}

// Mul returns v * coeff with native overflow behavior.
func (Wrapping[T]) Mul(v, coeff T) T { return v * coeff }

// Add returns a + b with native overflow behavior.
func (Wrapping[T]) Add(a, b T) T { return a + b }
