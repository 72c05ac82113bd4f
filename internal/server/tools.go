package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool that takes an
// image path.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// cannyProperties are the schema fragments for Canny's tunable
// parameters, shared by the edge tools.
func cannyProperties() map[string]interface{} {
	return map[string]interface{}{
		"low_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Weak-edge gradient threshold for Canny. Default 100",
			"default":     100,
		},
		"high_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Strong-edge gradient threshold for Canny. Must be >= low_threshold. Default 200",
			"default":     200,
		},
		"blur_kernel_size": map[string]interface{}{
			"type":        "integer",
			"description": "Side of the square Gaussian blur kernel for Canny. Must be odd. Default 7",
			"default":     7,
		},
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	methodProperty := map[string]interface{}{
		"type":        "string",
		"enum":        []string{"sobel", "prewitt", "canny"},
		"description": "Edge detection method to run",
	}

	edgeToolProperties := map[string]interface{}{
		"path":   pathProperty(),
		"method": methodProperty,
	}
	for name, prop := range cannyProperties() {
		edgeToolProperties[name] = prop
	}

	compareProperties := map[string]interface{}{
		"path": pathProperty(),
		"include_images": map[string]interface{}{
			"type":        "boolean",
			"description": "Include each edge map as base64 PNG in the result. Default false",
			"default":     false,
		},
	}
	for name, prop := range cannyProperties() {
		compareProperties[name] = prop
	}

	return []Tool{
		// Image Access
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and whether it is already grayscale. Caches the image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to limit edge analysis to a region of interest.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Edge Analysis
		{
			Name:        "edge_detect",
			Description: "Run one edge detection method (sobel, prewitt, or canny) on an image. Returns the edge map as base64 PNG together with its metrics (edge density, edge strength, and for canny the contour count).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": edgeToolProperties,
				"required":   []string{"path", "method"},
			},
		},
		{
			Name:        "edge_metrics",
			Description: "Compute edge metrics for one method without returning the edge map image. Edge density is the percentage of edge pixels, edge strength the mean edge pixel value, and edge continuity (canny only) the number of connected contours.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": edgeToolProperties,
				"required":   []string{"path", "method"},
			},
		},
		{
			Name:        "edge_compare",
			Description: "Run sobel, prewitt, and canny on the same image and return the per-method metrics side by side. Set include_images to also get each edge map as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": compareProperties,
				"required":   []string{"path"},
			},
		},
	}
}
