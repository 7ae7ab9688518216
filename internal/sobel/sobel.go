package sobel

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/anthonynsimon/bild/parallel"
)

// ThetaMetadata holds the gradient direction of a single pixel.
//
// X and Y use monitor coordinates (origin top-left, Y downward). Theta is
// atan2(gY, gX) in radians, in the range (-Pi, Pi].
type ThetaMetadata struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Theta float64 `json:"theta"`
}

// Result is the output of a Sobel pass.
//
// ImageData is always RGBA: four samples per pixel with the clamped gradient
// magnitude broadcast to R, G and B and alpha fixed at 255. Thetas holds one
// entry per pixel in row-major order, so pixel i of ImageData corresponds to
// Thetas[i].
type Result struct {
	ImageData []uint8
	Thetas    []ThetaMetadata
}

// emptyResult returns a fresh zero-length result for rejected input.
func emptyResult() Result {
	return Result{
		ImageData: []uint8{},
		Thetas:    []ThetaMetadata{},
	}
}

// Service applies the Sobel operator to raw pixel buffers.
type Service struct {
	warner   Warner
	parallel bool
}

// Option configures a Service.
type Option func(*Service)

// WithWarner sets the sink for invalid-input diagnostics. A nil Warner keeps
// the default, which writes through the standard logger.
func WithWarner(w Warner) Option {
	return func(s *Service) {
		if w != nil {
			s.warner = w
		}
	}
}

// WithParallel spreads rows across goroutines. The returned Result is
// identical to the sequential one.
func WithParallel(enabled bool) Option {
	return func(s *Service) {
		s.parallel = enabled
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{warner: logWarner{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultService = New()

// Apply runs the Sobel operator with the default Service.
func Apply(data []uint8, width, height, channel int) Result {
	return defaultService.Apply(data, width, height, channel)
}

// Apply runs the Sobel operator over every pixel of data.
//
// Parameters:
//   - data: grayscale raw image data, row-major, channel samples per pixel.
//     A nil slice means no data was provided.
//   - width, height: image dimensions in pixels (not zero indexed).
//   - channel: samples per pixel, one of 1, 2, 3 or 4.
//
// Input is checked in this order and the first failure wins:
//
//  1. data is nil
//  2. width or height is not positive
//  3. channel is not 1, 2, 3 or 4
//  4. data is too short to address every pixel
//
// A failed check emits one warning and returns an empty Result.
//
// For each pixel the magnitude is floor(sqrt(gX² + gY²)) clamped to 255 and
// theta is atan2(gY, gX).
func (s *Service) Apply(data []uint8, width, height, channel int) Result {
	if msg, ok := validate(data, width, height, channel); !ok {
		s.warner.Warn(msg)
		return emptyResult()
	}

	pixels := width * height
	res := Result{
		ImageData: make([]uint8, pixels*4),
		Thetas:    make([]ThetaMetadata, pixels),
	}

	rows := func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				i := y*width + x
				gX := ConvolveX(x, y, width, height, data, channel)
				gY := ConvolveY(x, y, width, height, data, channel)
				m := clampSample(magnitude(gX, gY))

				res.ImageData[i*4] = m
				res.ImageData[i*4+1] = m
				res.ImageData[i*4+2] = m
				res.ImageData[i*4+3] = 255
				res.Thetas[i] = ThetaMetadata{X: x, Y: y, Theta: math.Atan2(float64(gY), float64(gX))}
			}
		}
	}

	if s.parallel && height > 1 {
		parallel.Line(height, rows)
	} else {
		rows(0, height)
	}

	return res
}

// validate reports the diagnostic for the first failed input check.
func validate(data []uint8, width, height, channel int) (string, bool) {
	switch {
	case data == nil:
		return "Provide ImageData. Received: nil.", false
	case width <= 0 || height <= 0:
		return fmt.Sprintf("Provide valid ImageData containing valid width and height. Received width: %d height: %d.", width, height), false
	case channel < 1 || channel > 4:
		return fmt.Sprintf("Provide channel, either 1, 2, 3 or 4. Received channel: %d.", channel), false
	}

	if need := requiredLength(width, height, channel); len(data) < need {
		return fmt.Sprintf("Provide ImageData large enough for width, height and channel. Received length: %d expected at least: %d.", len(data), need), false
	}
	return "", true
}

// requiredLength returns the buffer length needed to read channel 0 of the
// last pixel, (width*height-1)*channel+1, saturating at math.MaxInt. All
// arguments must be positive.
func requiredLength(width, height, channel int) int {
	hi, pixels := bits.Mul(uint(width), uint(height))
	if hi != 0 || pixels > math.MaxInt {
		return math.MaxInt
	}
	hi, last := bits.Mul(pixels-1, uint(channel))
	if hi != 0 || last >= math.MaxInt {
		return math.MaxInt
	}
	return int(last) + 1
}

// magnitude returns floor(sqrt(gX² + gY²)).
func magnitude(gX, gY int) int {
	return int(math.Floor(math.Sqrt(float64(gX*gX + gY*gY))))
}

// clampSample saturates v into the 8-bit range.
func clampSample(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Magnitudes extracts the per-pixel magnitude (the R sample) from an RGBA
// result buffer.
func Magnitudes(imageData []uint8) []uint8 {
	out := make([]uint8, len(imageData)/4)
	for i := range out {
		out[i] = imageData[i*4]
	}
	return out
}
