package raster

import (
	"image"
	"math"
)

// Float is a row-major floating-point raster.
//
// Unlike *image.Gray, samples are unbounded: convolving with a signed
// kernel produces negative and out-of-range responses that must survive
// until magnitude combination.
type Float struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFloat creates a zero-filled float raster of the given dimensions.
func NewFloat(width, height int) *Float {
	return &Float{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the sample at (x, y). No bounds checking is performed.
func (f *Float) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Set stores a sample at (x, y). No bounds checking is performed.
func (f *Float) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

// FromGray converts an 8-bit raster to a float raster.
//
// The source bounds may have a nonzero origin; the result is always
// re-based at (0,0).
func FromGray(img *image.Gray) *Float {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	f := NewFloat(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Pix[y*width+x] = float64(img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
		}
	}
	return f
}

// ToGray quantizes a float raster to 8 bits, rounding each sample and
// clamping to [0, 255].
func (f *Float) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Pix[y*img.Stride+x] = ClampUint8(f.Pix[y*f.Width+x])
		}
	}
	return img
}

// ClampUint8 rounds a float sample and clamps it to the 8-bit range.
func ClampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution and morphology.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
