package conv

import (
	"fmt"
	"testing"

	"github.com/gridconv/gridconv/internal/grid"
	"github.com/gridconv/gridconv/internal/numeric"
	"github.com/gridconv/gridconv/internal/parallel"
	"github.com/gridconv/gridconv/internal/pixel"
)

func benchImage(width, height int) *grid.Dense[float64] {
	img := grid.Zero[float64](width, height)
	data := img.MutData()
	for i := range data {
		data[i] = float64(i%251) / 251
	}
	return img
}

func benchKernel(size int) *grid.Dense[float64] {
	k := grid.Zero[float64](size, size)
	data := k.MutData()
	for i := range data {
		data[i] = 1 / float64(size*size)
	}
	return k
}

func BenchmarkConvolve(b *testing.B) {
	for _, size := range []int{64, 256} {
		for _, ksize := range []int{3, 5} {
			img := benchImage(size, size)
			k := benchKernel(ksize)
			b.Run(fmt.Sprintf("%dx%d_k%d", size, size, ksize), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = Convolve[float64, float64](img, k, numeric.Wrapping[float64]{})
				}
			})
		}
	}
}

func BenchmarkConvolveTo(b *testing.B) {
	img := benchImage(256, 256)
	k := benchKernel(3)
	dst := grid.Zero[float64](256, 256)

	b.Run("reused buffer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			clear(dst.MutData())
			ConvolveTo[float64, float64](dst, img, k, numeric.Wrapping[float64]{})
		}
	})
}

func BenchmarkConvolveParallelism(b *testing.B) {
	defer SetParallelConfig(parallel.DefaultConfig())

	img := benchImage(512, 512)
	k := benchKernel(5)

	b.Run("sequential", func(b *testing.B) {
		SetParallelConfig(parallel.Config{Enabled: false})
		for i := 0; i < b.N; i++ {
			_ = Convolve[float64, float64](img, k, numeric.Wrapping[float64]{})
		}
	})

	b.Run("parallel", func(b *testing.B) {
		SetParallelConfig(parallel.DefaultConfig())
		for i := 0; i < b.N; i++ {
			_ = Convolve[float64, float64](img, k, numeric.Wrapping[float64]{})
		}
	})
}

func BenchmarkConvolveComposite(b *testing.B) {
	img := grid.Zero[pixel.RGB[float64]](128, 128)
	data := img.MutData()
	for i := range data {
		v := float64(i%251) / 251
		data[i] = pixel.RGB[float64]{v, v / 2, v / 3}
	}
	k := benchKernel(3)

	b.Run("rgb float64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Convolve[pixel.RGB[float64], float64](img, k, pixel.RGBOps[float64]{})
		}
	})
}
