package metrics

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/edge-metrics-mcp/internal/edge"
)

// Report is the metric tuple computed for one edge map.
type Report struct {
	// Method is the canonical name of the operator that produced the map.
	Method string `json:"method"`

	// EdgeDensity is the percentage of edge pixels relative to the total
	// pixel count of the source raster, in [0, 100].
	EdgeDensity float64 `json:"edge_density"`

	// EdgeStrength is the mean value of the nonzero edge pixels, or 0
	// when the map has no edge pixels.
	EdgeStrength float64 `json:"edge_strength"`

	// EdgeContinuity is the number of connected boundary contours in a
	// binary edge map. Nil for continuous (Sobel/Prewitt) maps, where
	// contours are not well-defined.
	EdgeContinuity *int `json:"edge_continuity,omitempty"`
}

// Evaluate computes the metric tuple for an edge map.
//
// The source raster contributes only its total pixel count to the density
// denominator. Continuity is computed only for binary maps; the producing
// operator decides eligibility through Map.Binary, never a name match.
// Neither input is mutated.
func Evaluate(src *image.Gray, m *edge.Map) (*Report, error) {
	if src == nil || m == nil || m.Gray == nil {
		return nil, fmt.Errorf("%w: nil raster or edge map", edge.ErrInvalidInput)
	}
	srcBounds := src.Bounds()
	mapBounds := m.Gray.Bounds()
	if srcBounds.Dx() != mapBounds.Dx() || srcBounds.Dy() != mapBounds.Dy() {
		return nil, fmt.Errorf("%w: edge map %dx%d does not match source %dx%d",
			edge.ErrInvalidInput, mapBounds.Dx(), mapBounds.Dy(), srcBounds.Dx(), srcBounds.Dy())
	}

	totalPixels := srcBounds.Dx() * srcBounds.Dy()
	if totalPixels == 0 {
		return nil, fmt.Errorf("%w: empty raster", edge.ErrInvalidInput)
	}

	edgePixels := 0
	var sum float64
	for y := mapBounds.Min.Y; y < mapBounds.Max.Y; y++ {
		for x := mapBounds.Min.X; x < mapBounds.Max.X; x++ {
			if v := m.Gray.GrayAt(x, y).Y; v != 0 {
				edgePixels++
				sum += float64(v)
			}
		}
	}

	density := float64(edgePixels) / float64(totalPixels) * 100
	strength := 0.0
	if edgePixels > 0 {
		strength = sum / float64(edgePixels)
	}

	report := &Report{
		Method:       m.Method.String(),
		EdgeDensity:  math.Round(density*100) / 100,
		EdgeStrength: math.Round(strength*100) / 100,
	}

	if m.Binary {
		count := countContours(m.Gray)
		report.EdgeContinuity = &count
	}

	return report, nil
}
