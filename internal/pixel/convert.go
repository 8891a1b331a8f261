package pixel

import (
	"errors"
	"fmt"

	"github.com/gridconv/gridconv/internal/numeric"
)

// ErrNotRepresentable is returned by the TryConvert functions when a
// channel's value cannot be represented in the target type.
var ErrNotRepresentable = errors.New("pixel: value not representable in target type")

// Infallible conversions change the channel type with Go's native
// conversion rules; widening conversions are exact. The fallible variants
// reject any channel whose value would not survive the conversion and
// abort on the first failing channel.

// ConvertGray converts the channel to U.
func ConvertGray[U, T numeric.Scalar](p Gray[T]) Gray[U] {
	return Gray[U]{U(p[0])}
}

// ConvertGrayA converts both channels to U.
func ConvertGrayA[U, T numeric.Scalar](p GrayA[T]) GrayA[U] {
	return GrayA[U]{U(p[0]), U(p[1])}
}

// ConvertRGB converts all channels to U.
func ConvertRGB[U, T numeric.Scalar](p RGB[T]) RGB[U] {
	return RGB[U]{U(p[0]), U(p[1]), U(p[2])}
}

// ConvertRGBA converts all channels to U.
func ConvertRGBA[U, T numeric.Scalar](p RGBA[T]) RGBA[U] {
	return RGBA[U]{U(p[0]), U(p[1]), U(p[2]), U(p[3])}
}

// TryConvertGray converts the channel to U, failing if the value is not
// representable.
func TryConvertGray[U, T numeric.Scalar](p Gray[T]) (Gray[U], error) {
	var out Gray[U]
	for i, v := range p {
		if !numeric.Representable[U](v) {
			return Gray[U]{}, convertErr(i, v)
		}
		out[i] = U(v)
	}
	return out, nil
}

// TryConvertGrayA converts both channels to U, aborting on the first
// channel whose value is not representable.
func TryConvertGrayA[U, T numeric.Scalar](p GrayA[T]) (GrayA[U], error) {
	var out GrayA[U]
	for i, v := range p {
		if !numeric.Representable[U](v) {
			return GrayA[U]{}, convertErr(i, v)
		}
		out[i] = U(v)
	}
	return out, nil
}

// TryConvertRGB converts all channels to U, aborting on the first channel
// whose value is not representable.
func TryConvertRGB[U, T numeric.Scalar](p RGB[T]) (RGB[U], error) {
	var out RGB[U]
	for i, v := range p {
		if !numeric.Representable[U](v) {
			return RGB[U]{}, convertErr(i, v)
		}
		out[i] = U(v)
	}
	return out, nil
}

// TryConvertRGBA converts all channels to U, aborting on the first channel
// whose value is not representable.
func TryConvertRGBA[U, T numeric.Scalar](p RGBA[T]) (RGBA[U], error) {
	var out RGBA[U]
	for i, v := range p {
		if !numeric.Representable[U](v) {
			return RGBA[U]{}, convertErr(i, v)
		}
		out[i] = U(v)
	}
	return out, nil
}

func convertErr[T numeric.Scalar](channel int, v T) error {
	return fmt.Errorf("%w: channel %d value %v", ErrNotRepresentable, channel, v)
}

// MapGray applies f to the channel.
func MapGray[T, U numeric.Scalar](p Gray[T], f func(T) U) Gray[U] {
	return Gray[U]{f(p[0])}
}

// MapGrayA applies f to each channel.
func MapGrayA[T, U numeric.Scalar](p GrayA[T], f func(T) U) GrayA[U] {
	return GrayA[U]{f(p[0]), f(p[1])}
}

// MapRGB applies f to each channel.
func MapRGB[T, U numeric.Scalar](p RGB[T], f func(T) U) RGB[U] {
	return RGB[U]{f(p[0]), f(p[1]), f(p[2])}
}

// MapRGBA applies f to each channel.
func MapRGBA[T, U numeric.Scalar](p RGBA[T], f func(T) U) RGBA[U] {
	return RGBA[U]{f(p[0]), f(p[1]), f(p[2]), f(p[3])}
}
