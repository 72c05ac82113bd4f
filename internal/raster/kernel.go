package raster

import (
	"fmt"
	"math"
)

// Kernel is an immutable odd-sized square convolution kernel.
//
// Coefficients are stored row-major. The named operator kernels below are
// package-level constants in spirit: they are built once and never mutated.
type Kernel struct {
	Size int
	Coef []float64
}

// NewKernel builds a kernel from a square 2D coefficient grid.
// The grid must be odd-sized; operator kernels satisfy this by construction.
func NewKernel(values [][]float64) *Kernel {
	size := len(values)
	coef := make([]float64, 0, size*size)
	for _, row := range values {
		coef = append(coef, row...)
	}
	return &Kernel{Size: size, Coef: coef}
}

// Standard 3x3 gradient kernels. Sobel weights the center row/column,
// Prewitt weights all taps equally.
var (
	SobelX = NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	SobelY = NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
	PrewittX = NewKernel([][]float64{
		{1, 0, -1},
		{1, 0, -1},
		{1, 0, -1},
	})
	PrewittY = NewKernel([][]float64{
		{1, 1, 1},
		{0, 0, 0},
		{-1, -1, -1},
	})
)

// NewGaussianKernel builds a normalized size x size Gaussian blur kernel.
//
// Sigma is derived from the kernel size using OpenCV's rule for an
// unspecified sigma:
//
//	sigma = 0.3*((size-1)*0.5 - 1) + 0.8
//
// so a 7x7 kernel gets sigma = 1.4. Coefficients sum to 1, which keeps a
// uniform raster exactly uniform after blurring.
func NewGaussianKernel(size int) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("gaussian kernel size must be a positive odd number, got %d", size)
	}

	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	half := size / 2

	coef := make([]float64, size*size)
	sum := 0.0
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			v := math.Exp(-float64(x*x+y*y) / (2 * sigma * sigma))
			coef[(y+half)*size+(x+half)] = v
			sum += v
		}
	}
	for i := range coef {
		coef[i] /= sum
	}

	return &Kernel{Size: size, Coef: coef}, nil
}
