package edge

import "testing"

func TestPrewittUniformInputIsAllZero(t *testing.T) {
	for _, value := range []uint8{0, 128, 255} {
		m, err := Prewitt(uniformRaster(9, 6, value))
		if err != nil {
			t.Fatalf("value %d: %v", value, err)
		}
		if !allZero(m.Gray) {
			t.Errorf("value %d: expected all-zero output on uniform input", value)
		}
	}
}

func TestPrewittMapProperties(t *testing.T) {
	m, err := Prewitt(squareRaster(16, 16, 40, 210, 5, 5, 11, 11))
	if err != nil {
		t.Fatalf("Prewitt failed: %v", err)
	}

	if m.Method != MethodPrewitt {
		t.Errorf("method: got %v, want MethodPrewitt", m.Method)
	}
	if m.Binary {
		t.Error("prewitt maps are continuous, not binary")
	}
	if allZero(m.Gray) {
		t.Error("expected nonzero response on a contrast square")
	}
}

func TestPrewittVerticalEdgeResponse(t *testing.T) {
	// Left half 0, right half 240: the vertical boundary runs between
	// columns 3 and 4. An unweighted Prewitt column sum over a clean
	// step is 3 * 240 = 720, clamped to 255.
	img := uniformRaster(8, 8, 0)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.Pix[y*img.Stride+x] = 240
		}
	}

	m, err := Prewitt(img)
	if err != nil {
		t.Fatalf("Prewitt failed: %v", err)
	}

	for y := 1; y < 7; y++ {
		if got := m.Gray.GrayAt(3, y).Y; got != 255 {
			t.Errorf("boundary pixel (3,%d): got %d, want 255", y, got)
		}
		if got := m.Gray.GrayAt(1, y).Y; got != 0 {
			t.Errorf("flat pixel (1,%d): got %d, want 0", y, got)
		}
		if got := m.Gray.GrayAt(6, y).Y; got != 0 {
			t.Errorf("flat pixel (6,%d): got %d, want 0", y, got)
		}
	}
}

func TestPrewittWeakerThanSobelOnAxisStep(t *testing.T) {
	// With a small step the Sobel center weighting yields a larger raw
	// response: 4*d vs Prewitt's 3*d across a vertical step of height d.
	img := uniformRaster(8, 8, 100)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.Pix[y*img.Stride+x] = 130
		}
	}

	sobelMap, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel failed: %v", err)
	}
	prewittMap, err := Prewitt(img)
	if err != nil {
		t.Fatalf("Prewitt failed: %v", err)
	}

	s := sobelMap.Gray.GrayAt(3, 4).Y
	p := prewittMap.Gray.GrayAt(3, 4).Y
	if p >= s {
		t.Errorf("expected prewitt response (%d) below sobel response (%d)", p, s)
	}
}
