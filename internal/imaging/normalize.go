package imaging

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gridconv/gridconv/internal/grid"
	"github.com/gridconv/gridconv/internal/pixel"
)

// NormalizeRGB maps byte channels onto [0, 1] floats, the working range
// for fractional kernels such as the gaussian.
func NormalizeRGB(g grid.Grid[pixel.RGB[uint8]]) *grid.Dense[pixel.RGB[float64]] {
	return grid.Map[pixel.RGB[uint8]](g, func(p pixel.RGB[uint8]) pixel.RGB[float64] {
		return pixel.MapRGB(p, func(v uint8) float64 { return float64(v) / 255 })
	})
}

// DenormalizeRGB maps convolved floats back onto bytes: the magnitude is
// scaled to [0, 255], rounded, and clamped.
func DenormalizeRGB(g grid.Grid[pixel.RGB[float64]]) *grid.Dense[pixel.RGB[uint8]] {
	return grid.Map[pixel.RGB[float64]](g, func(p pixel.RGB[float64]) pixel.RGB[uint8] {
		return pixel.MapRGB(p, denormChannel)
	})
}

// NormalizeRGB32 is NormalizeRGB in single precision.
func NormalizeRGB32(g grid.Grid[pixel.RGB[uint8]]) *grid.Dense[pixel.RGB[float32]] {
	return grid.Map[pixel.RGB[uint8]](g, func(p pixel.RGB[uint8]) pixel.RGB[float32] {
		return pixel.MapRGB(p, func(v uint8) float32 { return float32(v) / 255 })
	})
}

// DenormalizeRGB32 is DenormalizeRGB in single precision.
func DenormalizeRGB32(g grid.Grid[pixel.RGB[float32]]) *grid.Dense[pixel.RGB[uint8]] {
	return grid.Map[pixel.RGB[float32]](g, func(p pixel.RGB[float32]) pixel.RGB[uint8] {
		return pixel.MapRGB(p, denormChannel32)
	})
}

// GrayToInt widens gray bytes to int32 so signed edge kernels can produce
// negative responses without wrapping.
func GrayToInt(g grid.Grid[pixel.Gray[uint8]]) *grid.Dense[pixel.Gray[int32]] {
	return grid.Map[pixel.Gray[uint8]](g, func(p pixel.Gray[uint8]) pixel.Gray[int32] {
		return pixel.MapGray(p, func(v uint8) int32 { return int32(v) })
	})
}

// IntToGray folds signed responses back to bytes by magnitude, clamping
// at 255.
func IntToGray(g grid.Grid[pixel.Gray[int32]]) *grid.Dense[pixel.Gray[uint8]] {
	return grid.Map[pixel.Gray[int32]](g, func(p pixel.Gray[int32]) pixel.Gray[uint8] {
		return pixel.MapGray(p, absChannel)
	})
}

func denormChannel(v float64) uint8 {
	v = math.Round(math.Abs(v) * 255)
	if v < 255 {
		return uint8(v)
	}
	return 255
}

func denormChannel32(v float32) uint8 {
	v = math32.Round(math32.Abs(v) * 255)
	if v < 255 {
		return uint8(v)
	}
	return 255
}

func absChannel(v int32) uint8 {
	m := int64(v)
	if m < 0 {
		m = -m
	}
	if m > 255 {
		return 255
	}
	return uint8(m)
}
