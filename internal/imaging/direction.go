package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sobel-edge-mcp/internal/sobel"
)

// DirectionMapResult contains a direction visualization encoded as base64 PNG.
type DirectionMapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DirectionMap renders gradient direction as hue and magnitude as brightness.
//
// Hue follows theta counter-clockwise from -Pi (0°) to Pi (360°), so
// opposite edge orientations get complementary colors. Flat regions are black.
func DirectionMap(res sobel.Result, width, height int) (*image.NRGBA, error) {
	if len(res.Thetas) != width*height || len(res.ImageData) != width*height*4 {
		return nil, fmt.Errorf("result does not match %dx%d image", width, height)
	}

	mags := sobel.Magnitudes(res.ImageData)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, th := range res.Thetas {
		img.SetNRGBA(th.X, th.Y, directionColor(th.Theta, mags[i]))
	}
	return img, nil
}

// directionColor maps a theta and 8-bit magnitude to an opaque color.
func directionColor(theta float64, mag uint8) color.NRGBA {
	hue := (theta + math.Pi) / (2 * math.Pi) * 360
	c := colorful.Hsv(math.Mod(hue, 360), 1, float64(mag)/255).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// DirectionDetect runs the Sobel pass and returns the direction map as PNG.
func DirectionDetect(img image.Image, opts EdgeOptions) (*DirectionMapResult, error) {
	res, raw, err := Gradient(img, opts)
	if err != nil {
		return nil, err
	}

	out, err := DirectionMap(res, raw.Width, raw.Height)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNGBase64(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode direction image: %w", err)
	}

	return &DirectionMapResult{
		Width:       raw.Width,
		Height:      raw.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
