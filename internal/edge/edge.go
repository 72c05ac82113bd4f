package edge

import (
	"errors"
	"fmt"
	"image"
)

// Method identifies which operator produced an edge map.
//
// Using a typed tag (rather than a display string) lets downstream
// consumers branch on the producing operator without string matching:
// in particular, only binary Canny maps support contour counting.
type Method int

const (
	MethodSobel Method = iota
	MethodPrewitt
	MethodCanny
)

// String returns the canonical lowercase method name used in tool
// arguments and JSON results.
func (m Method) String() string {
	switch m {
	case MethodSobel:
		return "sobel"
	case MethodPrewitt:
		return "prewitt"
	case MethodCanny:
		return "canny"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to its Method tag.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "sobel":
		return MethodSobel, nil
	case "prewitt":
		return MethodPrewitt, nil
	case "canny":
		return MethodCanny, nil
	default:
		return 0, fmt.Errorf("unknown edge detection method: %q", name)
	}
}

// Map is the result of running an operator on a grayscale raster.
type Map struct {
	// Method is the operator that produced this map.
	Method Method

	// Gray holds the edge map. Dimensions always match the operator's
	// input raster.
	Gray *image.Gray

	// Binary reports whether every pixel is exactly 0 or 255. Only binary
	// maps have well-defined connected boundary contours.
	Binary bool
}

// Sentinel errors for the operator error taxonomy. Wrapped errors carry
// the offending dimensions or parameter values.
var (
	ErrInvalidInput  = errors.New("invalid input raster")
	ErrInvalidConfig = errors.New("invalid canny configuration")
)

// validateInput rejects rasters an operator cannot process: nil, empty,
// or smaller than the operator's kernel footprint. Validation happens
// before any computation so failures never yield partial results.
func validateInput(img *image.Gray, minSize int) error {
	if img == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidInput)
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: empty raster (%dx%d)", ErrInvalidInput, width, height)
	}
	if width < minSize || height < minSize {
		return fmt.Errorf("%w: raster %dx%d smaller than %dx%d kernel footprint",
			ErrInvalidInput, width, height, minSize, minSize)
	}
	return nil
}
