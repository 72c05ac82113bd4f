// Package raster provides the low-level grid types and numeric primitives
// shared by the edge detection operators.
//
// Two sample domains are used throughout the module:
//
//   - Float: an unbounded floating-point raster, produced by convolution.
//     Gradient responses live here so that no precision is lost before the
//     final quantization step.
//   - *image.Gray: the standard library 8-bit raster, used for operator
//     inputs and for display-ready edge maps. Binary masks use only the
//     values 0 and 255.
//
// # Coordinate System
//
// All rasters are addressed row-major with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Border Policy
//
// Convolution and morphology handle out-of-bounds samples by border
// replication: reads outside the raster are clamped to the nearest edge
// pixel. This matches OpenCV's default border behavior and applies
// consistently to every operator built on this package.
package raster
