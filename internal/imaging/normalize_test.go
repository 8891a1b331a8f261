package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridconv/gridconv/internal/grid"
	"github.com/gridconv/gridconv/internal/pixel"
)

func TestNormalizeRGB(t *testing.T) {
	g, err := grid.NewDense(2, 1, []pixel.RGB[uint8]{{0, 51, 255}, {102, 153, 204}})
	require.NoError(t, err)

	n := NormalizeRGB(g)

	assert.Equal(t, pixel.RGB[float64]{0, 0.2, 1}, n.Data()[0])
	assert.Equal(t, pixel.RGB[float64]{0.4, 0.6, 0.8}, n.Data()[1])
}

func TestDenormalizeRGB(t *testing.T) {
	tests := []struct {
		name string
		in   pixel.RGB[float64]
		want pixel.RGB[uint8]
	}{
		{"unit range", pixel.RGB[float64]{0, 0.5, 1}, pixel.RGB[uint8]{0, 128, 255}},
		{"negative magnitudes", pixel.RGB[float64]{-1, -0.2, -0.5}, pixel.RGB[uint8]{255, 51, 128}},
		{"overshoot clamps", pixel.RGB[float64]{1.5, 2, 100}, pixel.RGB[uint8]{255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.NewDense(1, 1, []pixel.RGB[float64]{tt.in})
			require.NoError(t, err)

			d := DenormalizeRGB(g)

			assert.Equal(t, tt.want, d.Data()[0])
		})
	}
}

func TestNormalizeDenormalize_RoundTrip(t *testing.T) {
	data := make([]pixel.RGB[uint8], 256)
	for i := range data {
		v := uint8(i)
		data[i] = pixel.RGB[uint8]{v, v, v}
	}
	g, err := grid.NewDense(16, 16, data)
	require.NoError(t, err)

	back := DenormalizeRGB(NormalizeRGB(g))

	assert.Equal(t, data, back.Data())
}

func TestNormalizeDenormalize32_RoundTrip(t *testing.T) {
	data := make([]pixel.RGB[uint8], 256)
	for i := range data {
		v := uint8(i)
		data[i] = pixel.RGB[uint8]{v, 255 - v, v / 2}
	}
	g, err := grid.NewDense(16, 16, data)
	require.NoError(t, err)

	back := DenormalizeRGB32(NormalizeRGB32(g))

	assert.Equal(t, data, back.Data())
}

func TestGrayToInt(t *testing.T) {
	g, err := grid.NewDense(2, 1, []pixel.Gray[uint8]{{0}, {255}})
	require.NoError(t, err)

	w := GrayToInt(g)

	assert.Equal(t, []pixel.Gray[int32]{{0}, {255}}, w.Data())
}

func TestIntToGray(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want uint8
	}{
		{"in range", 200, 200},
		{"negative magnitude", -42, 42},
		{"clamps high", 300, 255},
		{"clamps negative", -70000, 255},
		{"minimum int32", -2147483648, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.NewDense(1, 1, []pixel.Gray[int32]{{tt.in}})
			require.NoError(t, err)

			b := IntToGray(g)

			assert.Equal(t, pixel.Gray[uint8]{tt.want}, b.Data()[0])
		})
	}
}
