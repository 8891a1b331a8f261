package pixel

import "github.com/gridconv/gridconv/internal/numeric"

// The Ops adapters bind the scalar arithmetic families to each tuple
// format, channel by channel. Each adapter is stateless; the zero value
// is ready to use as a convolution arithmetic argument.

// GrayOps provides channel-wise arithmetic over Gray[T] with scalar
// coefficients of the same type.
type GrayOps[T numeric.Scalar] struct{}

// Mul multiplies the channel by coeff.
func (GrayOps[T]) Mul(p Gray[T], coeff T) Gray[T] {
	return Gray[T]{p[0] * coeff}
}

// Add adds the channels of a and b.
func (GrayOps[T]) Add(a, b Gray[T]) Gray[T] {
	return Gray[T]{a[0] + b[0]}
}

// SaturatingMul multiplies the channel by coeff, clamping to T's range.
func (GrayOps[T]) SaturatingMul(p Gray[T], coeff T) Gray[T] {
	var sat numeric.Saturating[T]
	return Gray[T]{sat.SaturatingMul(p[0], coeff)}
}

// SaturatingAdd adds the channels of a and b, clamping to T's range.
func (GrayOps[T]) SaturatingAdd(a, b Gray[T]) Gray[T] {
	var sat numeric.Saturating[T]
	return Gray[T]{sat.SaturatingAdd(a[0], b[0])}
}

// GrayAOps provides channel-wise arithmetic over GrayA[T]. The alpha
// channel participates like any other channel.
type GrayAOps[T numeric.Scalar] struct{}

func (GrayAOps[T]) Mul(p GrayA[T], coeff T) GrayA[T] {
	return GrayA[T]{p[0] * coeff, p[1] * coeff}
}

func (GrayAOps[T]) Add(a, b GrayA[T]) GrayA[T] {
	return GrayA[T]{a[0] + b[0], a[1] + b[1]}
}

func (GrayAOps[T]) SaturatingMul(p GrayA[T], coeff T) GrayA[T] {
	var sat numeric.Saturating[T]
	return GrayA[T]{sat.SaturatingMul(p[0], coeff), sat.SaturatingMul(p[1], coeff)}
}

func (GrayAOps[T]) SaturatingAdd(a, b GrayA[T]) GrayA[T] {
	var sat numeric.Saturating[T]
	return GrayA[T]{sat.SaturatingAdd(a[0], b[0]), sat.SaturatingAdd(a[1], b[1])}
}

// RGBOps provides channel-wise arithmetic over RGB[T].
type RGBOps[T numeric.Scalar] struct{}

func (RGBOps[T]) Mul(p RGB[T], coeff T) RGB[T] {
	return RGB[T]{p[0] * coeff, p[1] * coeff, p[2] * coeff}
}

func (RGBOps[T]) Add(a, b RGB[T]) RGB[T] {
	return RGB[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (RGBOps[T]) SaturatingMul(p RGB[T], coeff T) RGB[T] {
	var sat numeric.Saturating[T]
	return RGB[T]{
		sat.SaturatingMul(p[0], coeff),
		sat.SaturatingMul(p[1], coeff),
		sat.SaturatingMul(p[2], coeff),
	}
}

func (RGBOps[T]) SaturatingAdd(a, b RGB[T]) RGB[T] {
	var sat numeric.Saturating[T]
	return RGB[T]{
		sat.SaturatingAdd(a[0], b[0]),
		sat.SaturatingAdd(a[1], b[1]),
		sat.SaturatingAdd(a[2], b[2]),
	}
}

// RGBAOps provides channel-wise arithmetic over RGBA[T]. Alpha is treated
// as a fourth data channel; callers that want alpha preserved should
// convolve RGB grids instead.
type RGBAOps[T numeric.Scalar] struct{}

func (RGBAOps[T]) Mul(p RGBA[T], coeff T) RGBA[T] {
	return RGBA[T]{p[0] * coeff, p[1] * coeff, p[2] * coeff, p[3] * coeff}
}

func (RGBAOps[T]) Add(a, b RGBA[T]) RGBA[T] {
	return RGBA[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (RGBAOps[T]) SaturatingMul(p RGBA[T], coeff T) RGBA[T] {
	var sat numeric.Saturating[T]
	return RGBA[T]{
		sat.SaturatingMul(p[0], coeff),
		sat.SaturatingMul(p[1], coeff),
		sat.SaturatingMul(p[2], coeff),
		sat.SaturatingMul(p[3], coeff),
	}
}

func (RGBAOps[T]) SaturatingAdd(a, b RGBA[T]) RGBA[T] {
	var sat numeric.Saturating[T]
	return RGBA[T]{
		sat.SaturatingAdd(a[0], b[0]),
		sat.SaturatingAdd(a[1], b[1]),
		sat.SaturatingAdd(a[2], b[2]),
		sat.SaturatingAdd(a[3], b[3]),
	}
}
