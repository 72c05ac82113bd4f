// Package imaging supplies the decoded rasters the edge detection core
// operates on. It is the module's image-acquisition collaborator: loading
// and caching image files, converting them to single-channel grayscale
// rasters, and cropping regions for localized analysis.
//
// The edge detection core itself never touches the filesystem; everything
// it consumes arrives through this package as an *image.Gray re-based at
// (0,0).
//
// # Thread Safety
//
// Cache is safe for concurrent use. The conversion and crop functions are
// stateless and may be called concurrently on different images.
//
// # Error Handling
//
// Functions return errors for missing or undecodable files and for crop
// regions outside the image bounds. Errors are wrapped with %w so callers
// can inspect the cause.
package imaging
