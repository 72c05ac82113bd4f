// Package edge implements the three edge detection operators compared by
// this module: Sobel, Prewitt, and Canny.
//
// All operators take a single-channel 8-bit raster and return a Map of
// identical dimensions. Sobel and Prewitt produce continuous edge maps
// (gradient magnitude quantized to [0, 255]); Canny produces a binary map
// whose pixels are exactly 0 or 255.
//
// # Algorithm Overview
//
// Sobel and Prewitt convolve the input with their fixed 3x3 horizontal and
// vertical kernels and combine the responses into a per-pixel Euclidean
// magnitude. Canny runs the full pipeline: Gaussian blur, Sobel gradients,
// non-maximum suppression, double-threshold hysteresis, and a 3x3
// morphological closing that heals single-pixel gaps.
//
// # Error Handling
//
// Operators validate their input at entry and never return a partially
// computed raster. Two error classes exist:
//
//   - ErrInvalidInput: nil, empty, or undersized input raster
//   - ErrInvalidConfig: Canny parameters that violate preconditions
//
// Both are sentinel errors suitable for errors.Is checks; messages carry
// the offending values.
//
// # Determinism
//
// Every operator is a pure function of its input: rerunning an operator on
// the same raster yields byte-identical output. There is no shared state
// between operators, so the three may run concurrently on the same input.
package edge
