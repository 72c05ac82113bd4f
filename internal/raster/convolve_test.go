package raster

import (
	"image"
	"image/color"
	"testing"
)

func floatFromRows(rows [][]float64) *Float {
	height := len(rows)
	width := len(rows[0])
	f := NewFloat(width, height)
	for y, row := range rows {
		for x, v := range row {
			f.Set(x, y, v)
		}
	}
	return f
}

func TestConvolveIdentityKernel(t *testing.T) {
	src := floatFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	identity := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	dst := Convolve(src, identity)

	if dst.Width != src.Width || dst.Height != src.Height {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", dst.Width, dst.Height, src.Width, src.Height)
	}
	for i, v := range dst.Pix {
		if v != src.Pix[i] {
			t.Errorf("pixel %d: got %v, want %v", i, v, src.Pix[i])
		}
	}
}

func TestConvolveBorderReplication(t *testing.T) {
	// A box filter over a uniform raster must return the same uniform
	// value everywhere, including corners: border replication gives
	// every pixel a full kernel footprint.
	src := NewFloat(4, 4)
	for i := range src.Pix {
		src.Pix[i] = 10
	}
	box := NewKernel([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	dst := Convolve(src, box)

	for i, v := range dst.Pix {
		if v != 90 {
			t.Errorf("pixel %d: got %v, want 90", i, v)
		}
	}
}

func TestConvolveUnclampedOutput(t *testing.T) {
	// Signed kernels must produce negative responses; premature clipping
	// would destroy gradient information.
	src := floatFromRows([][]float64{
		{200, 0, 0},
		{200, 0, 0},
		{200, 0, 0},
	})

	dst := Convolve(src, SobelX)

	found := false
	for _, v := range dst.Pix {
		if v < 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected negative responses from SobelX on a falling step")
	}
}

func TestMagnitude(t *testing.T) {
	gx := floatFromRows([][]float64{{3, 0, -300}})
	gy := floatFromRows([][]float64{{4, 0, 400}})

	out := Magnitude(gx, gy)

	if got := out.GrayAt(0, 0).Y; got != 5 {
		t.Errorf("pixel 0: got %d, want 5", got)
	}
	if got := out.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("pixel 1: got %d, want 0", got)
	}
	// sqrt(300^2+400^2) = 500, clamped to 255
	if got := out.GrayAt(2, 0).Y; got != 255 {
		t.Errorf("pixel 2: got %d, want 255 after clamping", got)
	}
}

func TestMagnitudeRounding(t *testing.T) {
	gx := floatFromRows([][]float64{{1, 1}})
	gy := floatFromRows([][]float64{{1, 2}})

	out := Magnitude(gx, gy)

	// sqrt(2) = 1.414 rounds to 1, sqrt(5) = 2.236 rounds to 2
	if got := out.GrayAt(0, 0).Y; got != 1 {
		t.Errorf("sqrt(2): got %d, want 1", got)
	}
	if got := out.GrayAt(1, 0).Y; got != 2 {
		t.Errorf("sqrt(5): got %d, want 2", got)
	}
}

func TestFromGrayToGrayRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(40 * i)
	}

	back := FromGray(img).ToGray()

	if !back.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds: got %v, want %v", back.Bounds(), img.Bounds())
	}
	for i := range img.Pix {
		if back.Pix[i] != img.Pix[i] {
			t.Errorf("pixel %d: got %d, want %d", i, back.Pix[i], img.Pix[i])
		}
	}
}

func TestFromGrayRebasesOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(5, 7, 8, 9))
	img.SetGray(6, 8, color.Gray{Y: 123})

	f := FromGray(img)

	if f.Width != 3 || f.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", f.Width, f.Height)
	}
	if got := f.At(1, 1); got != 123 {
		t.Errorf("sample (1,1): got %v, want 123", got)
	}
}
