package sobel

// kernel is a 3x3 convolution matrix. Row 0 applies to y-1 and column 0 to x-1.
type kernel [3][3]int

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// ConvolveX applies the horizontal Sobel kernel at (x, y).
//
// The result lies in [-1020, 1020] for 8-bit input. Positive values mean
// intensity increases to the right.
func ConvolveX(x, y, width, height int, data []uint8, channel int) int {
	return convolve(&kernelX, x, y, width, height, data, channel)
}

// ConvolveY applies the vertical Sobel kernel at (x, y).
//
// The result lies in [-1020, 1020] for 8-bit input. Positive values mean
// intensity increases downward.
func ConvolveY(x, y, width, height int, data []uint8, channel int) int {
	return convolve(&kernelY, x, y, width, height, data, channel)
}

// convolve sums the weighted neighborhood of (x, y). Zero-weight taps are
// skipped, so the center sample is never read.
func convolve(k *kernel, x, y, width, height int, data []uint8, channel int) int {
	var sum int
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			w := k[ky+1][kx+1]
			if w == 0 {
				continue
			}
			sum += w * PixelLookup(x+kx, y+ky, width, height, data, channel)
		}
	}
	return sum
}
