package sobel

// PixelLookup returns the channel-0 sample of the pixel at (x, y).
//
// Coordinates outside [0, width) x [0, height) return 0, which gives the
// convolution its zero-padding boundary condition. The buffer is treated as
// row-major with a pixel stride of channel samples.
//
// The caller must ensure that data is long enough for width, height and
// channel; Apply checks this before any lookup happens.
func PixelLookup(x, y, width, height int, data []uint8, channel int) int {
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0
	}
	return int(data[(width*y+x)*channel])
}
