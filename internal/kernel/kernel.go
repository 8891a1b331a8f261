// Package kernel provides generators for common convolution kernels.
//
// Every generator returns a freshly allocated grid; the engine consumes
// them as ordinary kernels with no knowledge of their construction.
package kernel

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gridconv/gridconv/internal/grid"
)

// Gaussian returns a size×size kernel sampling the 2D Gaussian density
// with the given standard deviation at each offset from the center cell,
// normalized so the coefficients sum to 1.
func Gaussian(size int, stdDev float64) *grid.Dense[float64] {
	stride := float64(size >> 1)
	expCoefficient := -0.5 / (stdDev * stdDev)
	coefficient := 1 / stdDev

	k := grid.Zero[float64](size, size)
	data := k.MutData()
	for i := range data {
		r := float64(i/size) - stride
		c := float64(i%size) - stride
		data[i] = coefficient * math.Exp((r*r+c*c)*expCoefficient)
	}

	// Normalize so the coefficients sum to 1.
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if sum > 0 {
		for i := range data {
			data[i] /= sum
		}
	}
	return k
}

// Gaussian32 is the float32 twin of Gaussian, for pipelines that keep
// image data in float32.
func Gaussian32(size int, stdDev float32) *grid.Dense[float32] {
	stride := float32(size >> 1)
	expCoefficient := -0.5 / (stdDev * stdDev)
	coefficient := 1 / stdDev

	k := grid.Zero[float32](size, size)
	data := k.MutData()
	for i := range data {
		r := float32(i/size) - stride
		c := float32(i%size) - stride
		data[i] = coefficient * math32.Exp((r*r+c*c)*expCoefficient)
	}

	var sum float32
	for _, v := range data {
		sum += v
	}
	if sum > 0 {
		for i := range data {
			data[i] /= sum
		}
	}
	return k
}

// Box returns a size×size kernel of uniform coefficients 1/size².
func Box(size int) *grid.Dense[float64] {
	k := grid.Zero[float64](size, size)
	data := k.MutData()
	v := 1 / float64(size*size)
	for i := range data {
		data[i] = v
	}
	return k
}

// SobelX returns the 3×3 horizontal-gradient Sobel operator.
func SobelX() *grid.Dense[int32] {
	return fixed3x3([]int32{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelY returns the 3×3 vertical-gradient Sobel operator.
func SobelY() *grid.Dense[int32] {
	return fixed3x3([]int32{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// LaplacianCross returns the 3×3 four-neighbor Laplacian operator.
func LaplacianCross() *grid.Dense[int32] {
	return fixed3x3([]int32{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// LaplacianFull returns the 3×3 eight-neighbor Laplacian operator.
func LaplacianFull() *grid.Dense[int32] {
	return fixed3x3([]int32{
		1, 1, 1,
		1, -8, 1,
		1, 1, 1,
	})
}

func fixed3x3(values []int32) *grid.Dense[int32] {
	k := grid.Zero[int32](3, 3)
	copy(k.MutData(), values)
	return k
}
