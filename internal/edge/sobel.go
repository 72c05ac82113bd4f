package edge

import (
	"image"

	"github.com/ironsheep/edge-metrics-mcp/internal/raster"
)

// Sobel runs the 3x3 Sobel operator on a grayscale raster.
//
// The input is convolved with the fixed horizontal and vertical Sobel
// kernels and the two responses are combined into a per-pixel Euclidean
// magnitude, quantized to [0, 255]. The output has the same dimensions as
// the input; border pixels use replicated samples.
//
// Returns ErrInvalidInput if the raster is nil, empty, or smaller than
// the 3x3 kernel.
func Sobel(img *image.Gray) (*Map, error) {
	if err := validateInput(img, 3); err != nil {
		return nil, err
	}

	src := raster.FromGray(img)
	gx := raster.Convolve(src, raster.SobelX)
	gy := raster.Convolve(src, raster.SobelY)

	return &Map{
		Method: MethodSobel,
		Gray:   raster.Magnitude(gx, gy),
	}, nil
}
