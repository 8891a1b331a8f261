// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conv_test

import (
	"fmt"
	"testing"

	"github.com/gridconv/gridconv/conv"
	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/numeric"
	"github.com/gridconv/gridconv/pixel"
)

// TestArithmeticInterfaces verifies the scalar and pixel adapters satisfy
// the public contracts.
func TestArithmeticInterfaces(_ *testing.T) {
	var _ conv.Arithmetic[int32, int32] = numeric.Wrapping[int32]{}
	var _ conv.SaturatingArithmetic[uint8, uint8] = numeric.Saturating[uint8]{}
	var _ conv.Arithmetic[pixel.RGB[float64], float64] = pixel.RGBOps[float64]{}
	var _ conv.SaturatingArithmetic[pixel.RGBA[uint8], uint8] = pixel.RGBAOps[uint8]{}
}

func TestConvolveAPI(t *testing.T) {
	img, err := grid.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	identity, err := grid.NewDense(3, 3, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	out := conv.Convolve[float64, float64](img, identity, numeric.Wrapping[float64]{})

	if !grid.Equal[float64](out, img) {
		t.Errorf("identity convolution = %v, want input back", out.Data())
	}
}

func TestConvolveToAccumulates(t *testing.T) {
	img, _ := grid.NewDense(2, 1, []int{3, 4})
	one, _ := grid.NewDense(1, 1, []int{1})
	dst := grid.Filled(2, 1, 10)

	conv.ConvolveTo[int, int](dst, img, one, numeric.Wrapping[int]{})

	want := []int{13, 14}
	for i, v := range dst.Data() {
		if v != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestParallelConfigAPI(t *testing.T) {
	orig := conv.ParallelConfig()
	defer conv.SetParallelConfig(orig)

	cfg := conv.Config{Enabled: false}
	conv.SetParallelConfig(cfg)

	if got := conv.ParallelConfig(); got.Enabled {
		t.Errorf("ParallelConfig() = %+v, want parallelism disabled", got)
	}
	if def := conv.DefaultConfig(); !def.Enabled {
		t.Errorf("DefaultConfig() = %+v, want parallelism enabled", def)
	}
}

// Example demonstrates a convolution with wrap-around arithmetic.
func Example() {
	img, _ := grid.NewDense(3, 3, []int32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})
	k, _ := grid.NewDense(3, 3, []int32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	out := conv.Convolve[int32, int32](img, k, numeric.Wrapping[int32]{})
	fmt.Println(out.Data())
	// Output: [9 8 7 6 5 4 3 2 1]
}

// Example_saturating brightens bytes without wrap-around.
func Example_saturating() {
	img, _ := grid.NewDense(2, 1, []uint8{100, 200})
	double, _ := grid.NewDense(1, 1, []uint8{2})

	out := conv.ConvolveSaturating[uint8, uint8](img, double, numeric.Saturating[uint8]{})
	fmt.Println(out.Data())
	// Output: [200 255]
}
