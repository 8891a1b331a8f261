// Copyright 2026 The Gridconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package imaging_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gridconv/gridconv/conv"
	"github.com/gridconv/gridconv/grid"
	"github.com/gridconv/gridconv/imaging"
	"github.com/gridconv/gridconv/kernel"
	"github.com/gridconv/gridconv/pixel"
)

func TestFromToRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 11, B: 12, A: 255})

	out := imaging.ToImageRGBA(imaging.FromImage(img))

	for i := range img.Pix {
		if img.Pix[i] != out.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, out.Pix[i], img.Pix[i])
		}
	}
}

// TestBlurPipeline runs the full byte -> float -> convolve -> byte blur
// path over a uniform image: interior pixels keep their value under a
// normalized kernel, border pixels darken where the kernel overhangs.
func TestBlurPipeline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	work := imaging.NormalizeRGB(imaging.FromImageRGB(img))
	blurred := conv.Convolve[pixel.RGB[float64], float64](work, kernel.Gaussian(3, 1), pixel.RGBOps[float64]{})
	out := imaging.DenormalizeRGB(blurred)

	center, ok := out.At(2, 2)
	if !ok || center != (pixel.RGB[uint8]{100, 100, 100}) {
		t.Errorf("blurred center = %v, want {100 100 100}", center)
	}

	corner, _ := out.At(0, 0)
	if corner[0] >= 100 {
		t.Errorf("blurred corner channel = %d, want < 100 (kernel overhang)", corner[0])
	}
}

// TestEdgePipeline runs the gray -> int32 -> sobel -> byte path over a
// vertical step edge and expects a saturated response on the step.
func TestEdgePipeline(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		img.SetGray(2, y, color.Gray{Y: 255})
	}

	wide := imaging.GrayToInt(imaging.FromImageGray(img))
	response := conv.Convolve[pixel.Gray[int32], int32](wide, kernel.SobelX(), pixel.GrayOps[int32]{})
	out := imaging.IntToGray(response)

	center, ok := out.At(1, 1)
	if !ok || center != (pixel.Gray[uint8]{255}) {
		t.Errorf("edge response at center = %v, want {255}", center)
	}
}

func TestNormalizeDenormalize(t *testing.T) {
	g, err := grid.NewDense(1, 1, []pixel.RGB[uint8]{{0, 128, 255}})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	back := imaging.DenormalizeRGB(imaging.NormalizeRGB(g))

	if !grid.Equal[pixel.RGB[uint8]](back, g) {
		t.Errorf("round trip = %v, want %v", back.Data(), g.Data())
	}
}
