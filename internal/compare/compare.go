// Package compare runs the three edge detection operators on one raster
// and assembles their metric tuples into a single comparison result for
// an external presentation layer.
package compare

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/edge-metrics-mcp/internal/edge"
	"github.com/ironsheep/edge-metrics-mcp/internal/metrics"
)

// MethodResult pairs one operator's metric tuple with its edge map.
type MethodResult struct {
	// Method is the canonical operator name ("sobel", "prewitt", "canny").
	Method string `json:"method"`

	// Metrics is the metric tuple computed from this operator's edge map.
	Metrics *metrics.Report `json:"metrics"`

	// ImageBase64 is the edge map encoded as base64 PNG. Empty when the
	// caller requested metrics only.
	ImageBase64 string `json:"image_base64,omitempty"`

	// MimeType is "image/png" when ImageBase64 is present.
	MimeType string `json:"mime_type,omitempty"`
}

// Result is the full three-method comparison for one input raster.
type Result struct {
	// Width and Height of the input raster; every edge map shares them.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Methods holds one entry per operator, in the fixed order
	// sobel, prewitt, canny.
	Methods []MethodResult `json:"methods"`
}

// Run executes Sobel, Prewitt, and Canny on the same grayscale raster and
// evaluates metrics for each edge map. The operators share no mutable
// state and run sequentially in a fixed order, so results are
// deterministic. When includeImages is true, each entry also carries its
// edge map as base64 PNG.
//
// The first operator or evaluator failure aborts the comparison; no
// partial result is returned.
func Run(img *image.Gray, cfg edge.CannyConfig, includeImages bool) (*Result, error) {
	sobelMap, err := edge.Sobel(img)
	if err != nil {
		return nil, err
	}
	prewittMap, err := edge.Prewitt(img)
	if err != nil {
		return nil, err
	}
	cannyMap, err := edge.Canny(img, cfg)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	result := &Result{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	for _, m := range []*edge.Map{sobelMap, prewittMap, cannyMap} {
		report, err := metrics.Evaluate(img, m)
		if err != nil {
			return nil, err
		}

		entry := MethodResult{
			Method:  m.Method.String(),
			Metrics: report,
		}
		if includeImages {
			encoded, err := EncodePNG(m.Gray)
			if err != nil {
				return nil, err
			}
			entry.ImageBase64 = encoded
			entry.MimeType = "image/png"
		}
		result.Methods = append(result.Methods, entry)
	}

	return result, nil
}

// EncodePNG encodes an edge map as a base64 PNG payload.
func EncodePNG(img *image.Gray) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode edge map: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
