package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/edge-metrics-mcp/internal/compare"
	"github.com/ironsheep/edge-metrics-mcp/internal/imaging"
	"github.com/ironsheep/edge-metrics-mcp/internal/metrics"
)

// writeSquarePNG writes a grayscale PNG with a centered contrast square
// and returns its path.
func writeSquarePNG(t *testing.T, size int) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, size, size))
	quarter := size / 4
	for y := quarter; y < size-quarter; y++ {
		for x := quarter; x < size-quarter; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "square.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestExecuteToolImageLoad(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 32)

	result, err := s.executeTool("image_load", rawArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("image_load failed: %v", err)
	}

	info, ok := result.(*imaging.Info)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if info.Width != 32 || info.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 32x32", info.Width, info.Height)
	}
	if !info.Grayscale {
		t.Error("grayscale PNG must report grayscale")
	}
}

func TestExecuteToolImageDimensions(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 24)

	result, err := s.executeTool("image_dimensions", rawArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("image_dimensions failed: %v", err)
	}

	dims, ok := result.(*imaging.Dimensions)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if dims.Width != 24 || dims.Height != 24 {
		t.Errorf("dimensions: got %dx%d, want 24x24", dims.Width, dims.Height)
	}
}

func TestExecuteToolImageCrop(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 40)

	result, err := s.executeTool("image_crop", rawArgs(t, map[string]interface{}{
		"path": path, "x1": 5, "y1": 5, "x2": 25, "y2": 30,
	}))
	if err != nil {
		t.Fatalf("image_crop failed: %v", err)
	}

	crop, ok := result.(*imaging.CropResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if crop.Width != 20 || crop.Height != 25 {
		t.Errorf("dimensions: got %dx%d, want 20x25", crop.Width, crop.Height)
	}
}

func TestExecuteToolEdgeDetect(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 48)

	for _, method := range []string{"sobel", "prewitt", "canny"} {
		t.Run(method, func(t *testing.T) {
			result, err := s.executeTool("edge_detect", rawArgs(t, map[string]interface{}{
				"path": path, "method": method,
			}))
			if err != nil {
				t.Fatalf("edge_detect failed: %v", err)
			}

			detect, ok := result.(*EdgeDetectResult)
			if !ok {
				t.Fatalf("result has unexpected type %T", result)
			}
			if detect.Width != 48 || detect.Height != 48 {
				t.Errorf("dimensions: got %dx%d, want 48x48", detect.Width, detect.Height)
			}
			if detect.Method != method {
				t.Errorf("method: got %q, want %q", detect.Method, method)
			}
			if detect.Metrics == nil {
				t.Fatal("missing metrics")
			}
			if detect.ImageBase64 == "" {
				t.Error("missing edge map payload")
			}

			hasContinuity := detect.Metrics.EdgeContinuity != nil
			if method == "canny" && !hasContinuity {
				t.Error("canny metrics must carry continuity")
			}
			if method != "canny" && hasContinuity {
				t.Error("non-canny metrics must not carry continuity")
			}
		})
	}
}

func TestExecuteToolEdgeDetectUnknownMethod(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 32)

	_, err := s.executeTool("edge_detect", rawArgs(t, map[string]interface{}{
		"path": path, "method": "laplacian",
	}))
	if err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestExecuteToolEdgeMetrics(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 64)

	result, err := s.executeTool("edge_metrics", rawArgs(t, map[string]interface{}{
		"path": path, "method": "canny",
	}))
	if err != nil {
		t.Fatalf("edge_metrics failed: %v", err)
	}

	report, ok := result.(*metrics.Report)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if report.Method != "canny" {
		t.Errorf("method: got %q, want canny", report.Method)
	}
	if report.EdgeContinuity == nil {
		t.Fatal("canny metrics must carry continuity")
	}
	if *report.EdgeContinuity != 1 {
		t.Errorf("continuity: got %d, want 1 for a single square", *report.EdgeContinuity)
	}
}

func TestExecuteToolEdgeMetricsInvalidConfig(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 32)

	_, err := s.executeTool("edge_metrics", rawArgs(t, map[string]interface{}{
		"path": path, "method": "canny", "blur_kernel_size": 4,
	}))
	if err == nil {
		t.Error("expected error for even blur kernel size")
	}
}

func TestExecuteToolEdgeCompare(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 48)

	result, err := s.executeTool("edge_compare", rawArgs(t, map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("edge_compare failed: %v", err)
	}

	comparison, ok := result.(*compare.Result)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if len(comparison.Methods) != 3 {
		t.Fatalf("methods: got %d, want 3", len(comparison.Methods))
	}
	for _, entry := range comparison.Methods {
		if entry.ImageBase64 != "" {
			t.Errorf("%s: unexpected image payload without include_images", entry.Method)
		}
	}
}

func TestExecuteToolEdgeCompareCustomThresholds(t *testing.T) {
	s := newTestServer()
	path := writeSquarePNG(t, 48)

	result, err := s.executeTool("edge_compare", rawArgs(t, map[string]interface{}{
		"path":           path,
		"low_threshold":  50,
		"high_threshold": 120,
		"include_images": true,
	}))
	if err != nil {
		t.Fatalf("edge_compare failed: %v", err)
	}

	comparison := result.(*compare.Result)
	for _, entry := range comparison.Methods {
		if entry.ImageBase64 == "" {
			t.Errorf("%s: missing image payload with include_images", entry.Method)
		}
	}
}

func TestExecuteToolUnknown(t *testing.T) {
	s := newTestServer()

	_, err := s.executeTool("image_teleport", rawArgs(t, map[string]interface{}{}))
	if err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestExecuteToolMissingFile(t *testing.T) {
	s := newTestServer()

	for _, tool := range []string{"image_load", "edge_detect", "edge_metrics", "edge_compare"} {
		args := map[string]interface{}{"path": "/nonexistent/image.png", "method": "sobel"}
		if _, err := s.executeTool(tool, rawArgs(t, args)); err == nil {
			t.Errorf("%s: expected error for missing file", tool)
		}
	}
}

func rawArgs(t *testing.T, args map[string]interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}
	return b
}

func TestMustMarshalJSON(t *testing.T) {
	got := mustMarshalJSON(map[string]int{"a": 1})
	want := fmt.Sprintf("{\n  %q: 1\n}", "a")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
