// Package sobel computes edge-gradient maps from raw pixel buffers using the
// Sobel operator.
//
// The package works on flat, row-major, interleaved 8-bit buffers and never
// decodes or encodes image files. Decoding, grayscale conversion and output
// encoding belong to the imaging package.
//
// # Coordinate System
//
// Coordinates follow the way a monitor draws graphics:
//   - (0, 0) is the top-left pixel
//   - X increases rightward
//   - Y increases downward
//
// # Channels
//
// The input buffer may hold 1, 2, 3 or 4 interleaved samples per pixel. Only
// the first sample (channel 0) of each pixel is read; the remaining channels
// occupy the stride and are otherwise ignored. Callers are expected to supply
// grayscale data.
//
// # Boundaries
//
// Neighbors outside the image read as 0 (implicit zero padding), so border
// pixels usually report strong gradients.
//
// # Invalid Input
//
// Apply never panics or returns an error for the documented invalid inputs.
// It emits exactly one warning through the configured Warner and returns an
// empty Result.
//
// # Thread Safety
//
// A Service holds no mutable state and can be shared between goroutines.
package sobel
