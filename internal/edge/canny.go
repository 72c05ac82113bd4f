package edge

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/edge-metrics-mcp/internal/raster"
)

// CannyConfig holds the tunable parameters of the Canny pipeline. These
// are the module's only externally tunable options; Sobel and Prewitt are
// parameterless.
type CannyConfig struct {
	// LowThreshold is the weak-edge gradient threshold. Pixels below it
	// are always suppressed.
	LowThreshold int `json:"low_threshold"`

	// HighThreshold is the strong-edge gradient threshold. Pixels at or
	// above it are always kept.
	HighThreshold int `json:"high_threshold"`

	// BlurKernelSize is the side of the square Gaussian blur kernel
	// applied before gradient computation. Must be a positive odd number.
	BlurKernelSize int `json:"blur_kernel_size"`
}

// DefaultCannyConfig returns the standard parameters: thresholds 100/200
// with a 7x7 blur.
func DefaultCannyConfig() CannyConfig {
	return CannyConfig{
		LowThreshold:   100,
		HighThreshold:  200,
		BlurKernelSize: 7,
	}
}

// Validate checks the configuration preconditions. It is called at the
// entry of Canny, before any computation.
func (c CannyConfig) Validate() error {
	if c.LowThreshold < 0 || c.HighThreshold < 0 {
		return fmt.Errorf("%w: thresholds must be non-negative, got low=%d high=%d",
			ErrInvalidConfig, c.LowThreshold, c.HighThreshold)
	}
	if c.HighThreshold < c.LowThreshold {
		return fmt.Errorf("%w: high threshold %d below low threshold %d",
			ErrInvalidConfig, c.HighThreshold, c.LowThreshold)
	}
	if c.BlurKernelSize < 1 || c.BlurKernelSize%2 == 0 {
		return fmt.Errorf("%w: blur kernel size must be a positive odd number, got %d",
			ErrInvalidConfig, c.BlurKernelSize)
	}
	return nil
}

// Canny runs the full Canny pipeline on a grayscale raster:
//
//  1. Gaussian blur with the configured kernel size
//  2. Sobel gradients (magnitude and direction)
//  3. Non-maximum suppression along the gradient direction
//  4. Double-threshold hysteresis (8-connected weak edge tracking)
//  5. Morphological closing (3x3 dilate then erode, one iteration each)
//
// The result is a binary map: every pixel is exactly 0 or 255. Thresholds
// apply to the raw gradient magnitude in the 8-bit sample domain, so the
// defaults match the common 100/200 convention.
//
// Returns ErrInvalidConfig for parameter violations and ErrInvalidInput
// for rasters smaller than the blur kernel footprint; both are detected
// before any pixel is processed.
func Canny(img *image.Gray, cfg CannyConfig) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	minSize := cfg.BlurKernelSize
	if minSize < 3 {
		minSize = 3
	}
	if err := validateInput(img, minSize); err != nil {
		return nil, err
	}

	blurKernel, err := raster.NewGaussianKernel(cfg.BlurKernelSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	blurred := raster.Convolve(raster.FromGray(img), blurKernel)

	gx := raster.Convolve(blurred, raster.SobelX)
	gy := raster.Convolve(blurred, raster.SobelY)

	width, height := blurred.Width, blurred.Height
	magnitude := raster.NewFloat(width, height)
	direction := raster.NewFloat(width, height)
	for i := range magnitude.Pix {
		magnitude.Pix[i] = math.Sqrt(gx.Pix[i]*gx.Pix[i] + gy.Pix[i]*gy.Pix[i])
		direction.Pix[i] = math.Atan2(gy.Pix[i], gx.Pix[i])
	}

	suppressed := nonMaxSuppression(magnitude, direction)
	binary := hysteresis(suppressed, float64(cfg.LowThreshold), float64(cfg.HighThreshold))
	closed := raster.Close3x3(binary)

	return &Map{
		Method: MethodCanny,
		Gray:   closed,
		Binary: true,
	}, nil
}

// nonMaxSuppression thins the gradient magnitude raster to one-pixel-wide
// ridges. The gradient angle is quantized into four directions at pi/8
// boundaries (horizontal, vertical, and the two diagonals); a pixel
// survives only if its magnitude is at least that of both neighbors along
// its quantized direction. Border pixels are suppressed outright since
// they lack a full neighborhood.
func nonMaxSuppression(magnitude, direction *raster.Float) *raster.Float {
	width, height := magnitude.Width, magnitude.Height
	out := raster.NewFloat(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := direction.At(x, y)
			mag := magnitude.At(x, y)

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude.At(x-1, y)
				n2 = magnitude.At(x+1, y)
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude.At(x+1, y-1)
				n2 = magnitude.At(x-1, y+1)
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude.At(x, y-1)
				n2 = magnitude.At(x, y+1)
			default:
				n1 = magnitude.At(x-1, y-1)
				n2 = magnitude.At(x+1, y+1)
			}

			if mag >= n1 && mag >= n2 {
				out.Set(x, y, mag)
			}
		}
	}
	return out
}

// hysteresis applies double-threshold edge tracking. Pixels at or above
// high become strong edges; pixels in [low, high) are weak edges kept
// only when reachable from a strong edge through an 8-connected chain of
// weak pixels. The search floods out from the strong seeds, visiting
// each pixel once.
func hysteresis(suppressed *raster.Float, low, high float64) *image.Gray {
	width, height := suppressed.Width, suppressed.Height
	out := image.NewGray(image.Rect(0, 0, width, height))

	queue := make([]image.Point, 0, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if suppressed.At(x, y) >= high {
				out.Pix[y*out.Stride+x] = 255
				queue = append(queue, image.Point{X: x, Y: y})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if out.Pix[ny*out.Stride+nx] != 0 {
					continue
				}
				if v := suppressed.At(nx, ny); v >= low && v < high {
					out.Pix[ny*out.Stride+nx] = 255
					queue = append(queue, image.Point{X: nx, Y: ny})
				}
			}
		}
	}

	return out
}
