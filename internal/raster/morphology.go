package raster

import "image"

// Morphology over binary masks (values 0 or 255) using a 3x3 all-ones
// structuring element. Out-of-bounds neighbors are replicated from the
// border, matching the convolution border policy.

// Dilate3x3 grows the foreground: a pixel becomes 255 if any pixel in its
// 3x3 neighborhood is nonzero.
func Dilate3x3(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var hit bool
			for dy := -1; dy <= 1 && !hit; dy++ {
				for dx := -1; dx <= 1 && !hit; dx++ {
					sy := clamp(y+dy, 0, height-1)
					sx := clamp(x+dx, 0, width-1)
					if src.GrayAt(sx+bounds.Min.X, sy+bounds.Min.Y).Y != 0 {
						hit = true
					}
				}
			}
			if hit {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// Erode3x3 shrinks the foreground: a pixel stays 255 only if every pixel
// in its 3x3 neighborhood is nonzero.
func Erode3x3(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			keep := true
			for dy := -1; dy <= 1 && keep; dy++ {
				for dx := -1; dx <= 1 && keep; dx++ {
					sy := clamp(y+dy, 0, height-1)
					sx := clamp(x+dx, 0, width-1)
					if src.GrayAt(sx+bounds.Min.X, sy+bounds.Min.Y).Y == 0 {
						keep = false
					}
				}
			}
			if keep {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// Close3x3 performs a morphological closing: dilate then erode, one
// iteration each. Closing fills single-pixel gaps left by hysteresis
// without growing the overall edge footprint.
func Close3x3(src *image.Gray) *image.Gray {
	return Erode3x3(Dilate3x3(src))
}
