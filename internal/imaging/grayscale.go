package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// ToGray converts any decoded image to a single-channel 8-bit raster
// re-based at (0,0).
//
// Images that are already *image.Gray are copied (re-based if necessary)
// so callers always own their raster. Color images go through bild's
// luminance-weighted grayscale conversion, then collapse to one channel.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+width], src.Pix[off:off+width])
		}
		return dst
	}

	// effect.Grayscale writes the luminance into all three channels of an
	// RGBA image; lifting the red channel recovers the gray sample.
	rgba := effect.Grayscale(img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Pix[y*dst.Stride+x] = rgba.Pix[y*rgba.Stride+x*4]
		}
	}
	return dst
}
