package edge

import (
	"image"

	"github.com/ironsheep/edge-metrics-mcp/internal/raster"
)

// Prewitt runs the 3x3 Prewitt operator on a grayscale raster.
//
// Identical in shape to Sobel but with unweighted kernels, so it responds
// slightly less strongly to gradients aligned with the kernel axis.
//
// Returns ErrInvalidInput if the raster is nil, empty, or smaller than
// the 3x3 kernel.
func Prewitt(img *image.Gray) (*Map, error) {
	if err := validateInput(img, 3); err != nil {
		return nil, err
	}

	src := raster.FromGray(img)
	gx := raster.Convolve(src, raster.PrewittX)
	gy := raster.Convolve(src, raster.PrewittY)

	return &Map{
		Method: MethodPrewitt,
		Gray:   raster.Magnitude(gx, gy),
	}, nil
}
