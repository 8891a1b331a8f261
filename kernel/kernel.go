// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the public API for generating convolution
// kernels: sampled gaussians, box blurs, and the classic edge-detection
// matrices.
//
// Example:
//
//	k := kernel.Gaussian(9, 2.0) // normalized 9×9 blur kernel
package kernel

import (
	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/internal/kernel"
)

// Gaussian returns a size×size kernel sampled from a centered gaussian
// with the given standard deviation, normalized so the coefficients sum
// to one.
//
// Example:
//
//	blur := kernel.Gaussian(5, 1.5)
func Gaussian(size int, stdDev float64) *grid.Dense[float64] {
	return kernel.Gaussian(size, stdDev)
}

// Gaussian32 is Gaussian in single precision.
func Gaussian32(size int, stdDev float32) *grid.Dense[float32] {
	return kernel.Gaussian32(size, stdDev)
}

// Box returns a size×size kernel of uniform coefficients summing to one.
func Box(size int) *grid.Dense[float64] {
	return kernel.Box(size)
}

// SobelX returns the 3×3 horizontal-gradient kernel.
func SobelX() *grid.Dense[int32] {
	return kernel.SobelX()
}

// SobelY returns the 3×3 vertical-gradient kernel.
func SobelY() *grid.Dense[int32] {
	return kernel.SobelY()
}

// LaplacianCross returns the 3×3 four-neighbor laplacian kernel.
func LaplacianCross() *grid.Dense[int32] {
	return kernel.LaplacianCross()
}

// LaplacianFull returns the 3×3 eight-neighbor laplacian kernel.
func LaplacianFull() *grid.Dense[int32] {
	return kernel.LaplacianFull()
}
