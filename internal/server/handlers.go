package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/edge-metrics-mcp/internal/compare"
	"github.com/ironsheep/edge-metrics-mcp/internal/edge"
	"github.com/ironsheep/edge-metrics-mcp/internal/imaging"
	"github.com/ironsheep/edge-metrics-mcp/internal/metrics"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "edge_detect", "edge_compare").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Access
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_crop":
		return s.handleImageCrop(args)

	// Edge Analysis
	case "edge_detect":
		return s.handleEdgeDetect(args)
	case "edge_metrics":
		return s.handleEdgeMetrics(args)
	case "edge_compare":
		return s.handleEdgeCompare(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Access Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

// === Edge Analysis Handlers ===

// cannyArgs are the Canny tunables shared by the edge tools. Zero values
// take the defaults (100/200 thresholds, 7x7 blur).
type cannyArgs struct {
	LowThreshold   int `json:"low_threshold"`
	HighThreshold  int `json:"high_threshold"`
	BlurKernelSize int `json:"blur_kernel_size"`
}

func (a cannyArgs) config() edge.CannyConfig {
	cfg := edge.DefaultCannyConfig()
	if a.LowThreshold != 0 {
		cfg.LowThreshold = a.LowThreshold
	}
	if a.HighThreshold != 0 {
		cfg.HighThreshold = a.HighThreshold
	}
	if a.BlurKernelSize != 0 {
		cfg.BlurKernelSize = a.BlurKernelSize
	}
	return cfg
}

type edgeDetectArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	cannyArgs
}

// EdgeDetectResult contains one operator's edge map and its metric tuple.
type EdgeDetectResult struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Method      string          `json:"method"`
	Metrics     *metrics.Report `json:"metrics"`
	ImageBase64 string          `json:"image_base64"`
	MimeType    string          `json:"mime_type"`
}

func (s *Server) handleEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}

	edgeMap, err := runMethod(gray, a.Method, a.config())
	if err != nil {
		return nil, err
	}
	report, err := metrics.Evaluate(gray, edgeMap)
	if err != nil {
		return nil, err
	}
	encoded, err := compare.EncodePNG(edgeMap.Gray)
	if err != nil {
		return nil, err
	}

	bounds := edgeMap.Gray.Bounds()
	return &EdgeDetectResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Method:      edgeMap.Method.String(),
		Metrics:     report,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

func (s *Server) handleEdgeMetrics(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}

	edgeMap, err := runMethod(gray, a.Method, a.config())
	if err != nil {
		return nil, err
	}
	return metrics.Evaluate(gray, edgeMap)
}

type edgeCompareArgs struct {
	Path          string `json:"path"`
	IncludeImages bool   `json:"include_images"`
	cannyArgs
}

func (s *Server) handleEdgeCompare(args json.RawMessage) (interface{}, error) {
	var a edgeCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}
	return compare.Run(gray, a.config(), a.IncludeImages)
}

// runMethod executes the named operator on a grayscale raster.
func runMethod(gray *image.Gray, method string, cfg edge.CannyConfig) (*edge.Map, error) {
	m, err := edge.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	switch m {
	case edge.MethodSobel:
		return edge.Sobel(gray)
	case edge.MethodPrewitt:
		return edge.Prewitt(gray)
	default:
		return edge.Canny(gray, cfg)
	}
}
