// Package imaging bridges the standard library's image types and grids of
// channel tuples, so decoded images can flow through the convolution
// engine and back to an encoder.
//
// Channel values are taken as stored: an *image.RGBA contributes its
// premultiplied bytes, an *image.NRGBA its straight bytes. Convolution
// does not distinguish the two.
package imaging

import (
	"image"
	"image/color"

	"github.com/gridconv/gridconv/internal/grid"
	"github.com/gridconv/gridconv/internal/pixel"
)

// FromRGBA copies an *image.RGBA into a four-channel grid.
func FromRGBA(img *image.RGBA) *grid.Dense[pixel.RGBA[uint8]] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.RGBA[uint8]](width, height)
	data := out.MutData()

	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < width; x++ {
			i := x * 4
			data[y*width+x] = pixel.RGBA[uint8]{row[i], row[i+1], row[i+2], row[i+3]}
		}
	}
	return out
}

// FromNRGBA copies an *image.NRGBA into a four-channel grid.
func FromNRGBA(img *image.NRGBA) *grid.Dense[pixel.RGBA[uint8]] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.RGBA[uint8]](width, height)
	data := out.MutData()

	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < width; x++ {
			i := x * 4
			data[y*width+x] = pixel.RGBA[uint8]{row[i], row[i+1], row[i+2], row[i+3]}
		}
	}
	return out
}

// FromGray copies an *image.Gray into a single-channel grid.
func FromGray(img *image.Gray) *grid.Dense[pixel.Gray[uint8]] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.Gray[uint8]](width, height)
	data := out.MutData()

	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < width; x++ {
			data[y*width+x] = pixel.Gray[uint8]{row[x]}
		}
	}
	return out
}

// FromImage converts any image into a four-channel grid, with direct
// copies for *image.RGBA and *image.NRGBA and a color-model fallback for
// everything else.
func FromImage(img image.Image) *grid.Dense[pixel.RGBA[uint8]] {
	switch src := img.(type) {
	case *image.RGBA:
		return FromRGBA(src)
	case *image.NRGBA:
		return FromNRGBA(src)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.RGBA[uint8]](width, height)
	data := out.MutData()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			data[y*width+x] = pixel.RGBA[uint8]{c.R, c.G, c.B, c.A}
		}
	}
	return out
}

// FromImageRGB converts any image into a three-channel grid, dropping
// alpha.
func FromImageRGB(img image.Image) *grid.Dense[pixel.RGB[uint8]] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.RGB[uint8]](width, height)
	data := out.MutData()

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < width; x++ {
				i := x * 4
				data[y*width+x] = pixel.RGB[uint8]{row[i], row[i+1], row[i+2]}
			}
		}
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < width; x++ {
				i := x * 4
				data[y*width+x] = pixel.RGB[uint8]{row[i], row[i+1], row[i+2]}
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
				data[y*width+x] = pixel.RGB[uint8]{c.R, c.G, c.B}
			}
		}
	}
	return out
}

// FromImageGray converts any image into a single-channel grid using the
// standard luma conversion for non-gray sources.
func FromImageGray(img image.Image) *grid.Dense[pixel.Gray[uint8]] {
	if src, ok := img.(*image.Gray); ok {
		return FromGray(src)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := grid.Zero[pixel.Gray[uint8]](width, height)
	data := out.MutData()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			data[y*width+x] = pixel.Gray[uint8]{c.Y}
		}
	}
	return out
}

// ToImageRGBA renders a four-channel grid as an *image.RGBA anchored at
// the origin.
func ToImageRGBA(g grid.Grid[pixel.RGBA[uint8]]) *image.RGBA {
	width, height := g.Width(), g.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// A fresh RGBA has stride 4*width, so the grid maps flat.
	for i, p := range g.Data() {
		j := i * 4
		img.Pix[j] = p[0]
		img.Pix[j+1] = p[1]
		img.Pix[j+2] = p[2]
		img.Pix[j+3] = p[3]
	}
	return img
}

// ToImageRGB renders a three-channel grid as an *image.RGBA with opaque
// alpha.
func ToImageRGB(g grid.Grid[pixel.RGB[uint8]]) *image.RGBA {
	width, height := g.Width(), g.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, p := range g.Data() {
		j := i * 4
		img.Pix[j] = p[0]
		img.Pix[j+1] = p[1]
		img.Pix[j+2] = p[2]
		img.Pix[j+3] = 255
	}
	return img
}

// ToImageGray renders a single-channel grid as an *image.Gray.
func ToImageGray(g grid.Grid[pixel.Gray[uint8]]) *image.Gray {
	width, height := g.Width(), g.Height()
	img := image.NewGray(image.Rect(0, 0, width, height))

	for i, p := range g.Data() {
		img.Pix[i] = p[0]
	}
	return img
}
