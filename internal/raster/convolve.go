package raster

import (
	"image"
	"math"
)

// Convolve applies a kernel to a float raster and returns the raw,
// unclamped response raster of identical dimensions.
//
// Out-of-bounds samples are replicated from the nearest edge pixel, so the
// output never shrinks and border pixels get a full kernel footprint.
// The input and kernel are read-only; the result is freshly allocated.
func Convolve(src *Float, k *Kernel) *Float {
	dst := NewFloat(src.Width, src.Height)
	half := k.Size / 2

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var sum float64
			for ky := 0; ky < k.Size; ky++ {
				for kx := 0; kx < k.Size; kx++ {
					sy := clamp(y+ky-half, 0, src.Height-1)
					sx := clamp(x+kx-half, 0, src.Width-1)
					sum += src.Pix[sy*src.Width+sx] * k.Coef[ky*k.Size+kx]
				}
			}
			dst.Pix[y*dst.Width+x] = sum
		}
	}

	return dst
}

// Magnitude combines horizontal and vertical gradient rasters into an
// 8-bit edge map: sqrt(gx^2 + gy^2) per pixel, rounded and clamped to
// [0, 255]. Callers guarantee both rasters share the same dimensions.
func Magnitude(gx, gy *Float) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, gx.Width, gx.Height))
	for y := 0; y < gx.Height; y++ {
		for x := 0; x < gx.Width; x++ {
			i := y*gx.Width + x
			m := math.Sqrt(gx.Pix[i]*gx.Pix[i] + gy.Pix[i]*gy.Pix[i])
			out.Pix[y*out.Stride+x] = ClampUint8(m)
		}
	}
	return out
}
