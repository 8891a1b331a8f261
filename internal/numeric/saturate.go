package numeric

import "math"

// This file provides saturating arithmetic. Saturating operations clamp
// results to the type's valid range instead of wrapping.

// Saturating clamps integer results to the type's range instead of
// wrapping. Narrow widths widen before the operation, 64-bit widths use
// overflow pre-checks. Floats keep native IEEE behavior, where the
// infinities already act as saturation bounds.
//
// The zero value is ready to use:
//
//	var ar numeric.Saturating[uint8]
//	v := ar.SaturatingAdd(250, 10) // 255
type Saturating[T Scalar] struct{}

// SaturatingMul returns v * coeff clamped to T's range.
func (Saturating[T]) SaturatingMul(v, coeff T) T { return saturatedMul(v, coeff) }

// SaturatingAdd returns a + b clamped to T's range.
func (Saturating[T]) SaturatingAdd(a, b T) T { return saturatedAdd(a, b) }

func saturatedAdd[T Scalar](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		if sum > math.MaxInt8 {
			return T(int8(math.MaxInt8))
		}
		if sum < math.MinInt8 {
			bound := int8(math.MinInt8)
			return T(bound)
		}
		return T(int8(sum))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		if sum > math.MaxInt16 {
			bound := int16(math.MaxInt16)
			return T(bound)
		}
		if sum < math.MinInt16 {
			bound := int16(math.MinInt16)
			return T(bound)
		}
		return T(int16(sum))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		if sum > math.MaxInt32 {
			bound := int32(math.MaxInt32)
			return T(bound)
		}
		if sum < math.MinInt32 {
			bound := int32(math.MinInt32)
			return T(bound)
		}
		return T(int32(sum))
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			bound := int64(math.MaxInt64)
			return T(bound)
		}
		if bv < 0 && av < math.MinInt64-bv {
			bound := int64(math.MinInt64)
			return T(bound)
		}
		return T(av + bv)
	case int:
		av := any(a).(int)
		bv := any(b).(int)
		if bv > 0 && av > math.MaxInt-bv {
			bound := int(math.MaxInt)
			return T(bound)
		}
		if bv < 0 && av < math.MinInt-bv {
			bound := int(math.MinInt)
			return T(bound)
		}
		return T(av + bv)
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8))
		if sum > math.MaxUint8 {
			bound := uint8(math.MaxUint8)
			return T(bound)
		}
		return T(uint8(sum))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16))
		if sum > math.MaxUint16 {
			bound := uint16(math.MaxUint16)
			return T(bound)
		}
		return T(uint16(sum))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32))
		if sum > math.MaxUint32 {
			bound := uint32(math.MaxUint32)
			return T(bound)
		}
		return T(uint32(sum))
	case uint64:
		av := any(a).(uint64)
		bv := any(b).(uint64)
		if av > math.MaxUint64-bv {
			bound := uint64(math.MaxUint64)
			return T(bound)
		}
		return T(av + bv)
	case uint:
		av := any(a).(uint)
		bv := any(b).(uint)
		if av > math.MaxUint-bv {
			bound := uint(math.MaxUint)
			return T(bound)
		}
		return T(av + bv)
	case uintptr:
		av := any(a).(uintptr)
		bv := any(b).(uintptr)
		if av > ^uintptr(0)-bv {
			bound := ^uintptr(0)
			return T(bound)
		}
		return T(av + bv)
	default:
		// Floats: infinities are the saturation bounds.
		return a + b
	}
}

func saturatedMul[T Scalar](a, b T) T {
	switch any(a).(type) {
	case int8:
		prod := int16(any(a).(int8)) * int16(any(b).(int8))
		if prod > math.MaxInt8 {
			return T(int8(math.MaxInt8))
		}
		if prod < math.MinInt8 {
			bound := int8(math.MinInt8)
			return T(bound)
		}
		return T(int8(prod))
	case int16:
		prod := int32(any(a).(int16)) * int32(any(b).(int16))
		if prod > math.MaxInt16 {
			bound := int16(math.MaxInt16)
			return T(bound)
		}
		if prod < math.MinInt16 {
			bound := int16(math.MinInt16)
			return T(bound)
		}
		return T(int16(prod))
	case int32:
		prod := int64(any(a).(int32)) * int64(any(b).(int32))
		if prod > math.MaxInt32 {
			bound := int32(math.MaxInt32)
			return T(bound)
		}
		if prod < math.MinInt32 {
			bound := int32(math.MinInt32)
			return T(bound)
		}
		return T(int32(prod))
	case int64:
		return T(mulInt64(any(a).(int64), any(b).(int64)))
	case int:
		prod := mulInt64(int64(any(a).(int)), int64(any(b).(int)))
		if prod > math.MaxInt {
			bound := int(math.MaxInt)
			return T(bound)
		}
		if prod < math.MinInt {
			bound := int(math.MinInt)
			return T(bound)
		}
		return T(int(prod))
	case uint8:
		prod := uint16(any(a).(uint8)) * uint16(any(b).(uint8))
		if prod > math.MaxUint8 {
			bound := uint8(math.MaxUint8)
			return T(bound)
		}
		return T(uint8(prod))
	case uint16:
		prod := uint32(any(a).(uint16)) * uint32(any(b).(uint16))
		if prod > math.MaxUint16 {
			bound := uint16(math.MaxUint16)
			return T(bound)
		}
		return T(uint16(prod))
	case uint32:
		prod := uint64(any(a).(uint32)) * uint64(any(b).(uint32))
		if prod > math.MaxUint32 {
			bound := uint32(math.MaxUint32)
			return T(bound)
		}
		return T(uint32(prod))
	case uint64:
		return T(mulUint64(any(a).(uint64), any(b).(uint64)))
	case uint:
		prod := mulUint64(uint64(any(a).(uint)), uint64(any(b).(uint)))
		if prod > math.MaxUint {
			bound := uint(math.MaxUint)
			return T(bound)
		}
		return T(uint(prod))
	case uintptr:
		prod := mulUint64(uint64(any(a).(uintptr)), uint64(any(b).(uintptr)))
		if prod > uint64(^uintptr(0)) {
			bound := ^uintptr(0)
			return T(bound)
		}
		return T(uintptr(prod))
	default:
		return a * b
	}
}

// mulInt64 multiplies with saturation. The MinInt64 * -1 combinations are
// handled up front because the quotient overflow check would itself trap.
func mulInt64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return math.MaxInt64
	}
	prod := a * b
	if prod/b != a {
		if (a < 0) == (b < 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return prod
}

func mulUint64(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	prod := a * b
	if prod/b != a {
		return math.MaxUint64
	}
	return prod
}
