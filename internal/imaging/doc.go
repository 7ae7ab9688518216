// Package imaging connects image files to the Sobel gradient engine.
//
// It loads and caches decoded images, converts them to grayscale raw pixel
// buffers for the sobel package, and turns the engine's RGBA output back into
// images: magnitude maps, direction maps and summary statistics. All
// operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Raw Buffers
//
// ToRaw always places the gray sample first in each pixel because the Sobel
// pass reads only channel 0. Layouts with 2 and 4 channels carry the source
// alpha; 3 and 4 channels repeat the gray sample.
//
// # Supported Formats
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP. Results are returned
// as base64 PNG.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid regions (x1 >= x2 or y1 >= y2)
//   - Channel counts other than 1, 2, 3 or 4
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
