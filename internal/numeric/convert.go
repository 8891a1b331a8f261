package numeric

import "math"

// Representable reports whether v can be converted to U without changing
// its value. Float targets always accept (IEEE rounding applies, with the
// infinities absorbing out-of-range magnitudes). Integer targets require
// an integral value inside U's range; NaN is never representable in an
// integer.
func Representable[U, T Scalar](v T) bool {
	if isFloat[T]() {
		f := float64(v)
		if math.IsNaN(f) {
			return isFloat[U]()
		}
		if isFloat[U]() {
			return true
		}
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return false
		}
		lo, hi := intRange[U]()
		return f >= lo && f < hi
	}
	if isFloat[U]() {
		return true
	}
	// Integer to integer: the wrapped conversion round-trips exactly when
	// the value fits, except for sign flips at the width boundary, which
	// the sign comparison catches.
	u := U(v)
	if T(u) != v {
		return false
	}
	return (v < 0) == (u < 0)
}

func isFloat[T Scalar]() bool {
	switch any(*new(T)).(type) {
	case float32, float64:
		return true
	}
	return false
}

// intRange returns U's value range as float64 bounds, inclusive low and
// exclusive high. The bounds are powers of two, so they stay exact where
// the max value itself would round.
func intRange[U Scalar]() (lo, hi float64) {
	switch any(*new(U)).(type) {
	case int8:
		return -128, 128
	case int16:
		return -32768, 32768
	case int32:
		return -2147483648, 2147483648
	case int64:
		return -9223372036854775808, 9223372036854775808
	case int:
		lo = float64(math.MinInt)
		return lo, -lo
	case uint8:
		return 0, 256
	case uint16:
		return 0, 65536
	case uint32:
		return 0, 4294967296
	case uint64:
		return 0, 18446744073709551616
	case uint, uintptr:
		return 0, 2 * -float64(math.MinInt)
	}
	return 0, 0
}
