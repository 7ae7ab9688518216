package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/sobel-edge-mcp/internal/sobel"
)

// EdgeOptions controls how an image is prepared for the Sobel pass.
type EdgeOptions struct {
	// Channels is the raw buffer layout handed to the Sobel pass (1-4).
	// Zero means 1.
	Channels int

	// IncludeThetas attaches the per-pixel direction records to the result.
	IncludeThetas bool

	// Service runs the Sobel pass. Nil uses the package default.
	Service *sobel.Service
}

// EdgeDetectResult contains a Sobel gradient image encoded as base64 PNG.
//
// The image is grayscale stored as RGBA: brighter pixels have stronger
// gradients, saturating at 255.
type EdgeDetectResult struct {
	// Width of the output image in pixels (same as input).
	Width int `json:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height"`

	// Channels is the raw layout the gradients were computed from.
	Channels int `json:"channels"`

	// ImageBase64 is the gradient magnitude image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// Thetas holds one direction record per pixel when requested.
	Thetas []sobel.ThetaMetadata `json:"thetas,omitempty"`
}

// Gradient runs the Sobel pass over an image and returns the raw result.
//
// The image is converted to a grayscale raw buffer first. The returned
// Result holds RGBA magnitude data and per-pixel thetas.
func Gradient(img image.Image, opts EdgeOptions) (sobel.Result, *RawImage, error) {
	channels := opts.Channels
	if channels == 0 {
		channels = 1
	}

	raw, err := ToRaw(img, channels)
	if err != nil {
		return sobel.Result{}, nil, err
	}
	if raw.Width == 0 || raw.Height == 0 {
		return sobel.Result{}, nil, fmt.Errorf("image is empty (%dx%d)", raw.Width, raw.Height)
	}

	svc := opts.Service
	if svc == nil {
		svc = sobel.New()
	}

	res := svc.Apply(raw.Pix, raw.Width, raw.Height, raw.Channels)
	if len(res.Thetas) != raw.Width*raw.Height {
		return sobel.Result{}, nil, fmt.Errorf("sobel rejected %dx%d image with %d channels", raw.Width, raw.Height, raw.Channels)
	}
	return res, raw, nil
}

// EdgeDetect computes the Sobel gradient magnitude image of img.
//
// Parameters:
//   - img: Source image (color or grayscale). Color images are converted
//     to grayscale with ITU-R BT.601 weights before the pass.
//   - opts: Channel layout and whether to include direction records.
//
// Returns:
//   - *EdgeDetectResult: Magnitude image as base64 PNG, plus thetas if requested.
//   - error: Non-nil if the image is empty, the channel count is invalid or
//     PNG encoding fails.
//
// # Algorithm
//
// Every pixel is convolved with the 3x3 Sobel kernels:
//
//	Kx = [-1 0 1; -2 0 2; -1 0 1]
//	Ky = [-1 -2 -1; 0 0 0; 1 2 1]
//
// magnitude = floor(sqrt(Gx² + Gy²)), clamped to 255, and
// direction = atan2(Gy, Gx). Pixels outside the image read as 0, so the
// border of an image usually shows up as an edge.
func EdgeDetect(img image.Image, opts EdgeOptions) (*EdgeDetectResult, error) {
	res, raw, err := Gradient(img, opts)
	if err != nil {
		return nil, err
	}

	out, err := FromRGBA(res.ImageData, raw.Width, raw.Height)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNGBase64(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode edge image: %w", err)
	}

	result := &EdgeDetectResult{
		Width:       raw.Width,
		Height:      raw.Height,
		Channels:    raw.Channels,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}
	if opts.IncludeThetas {
		result.Thetas = res.Thetas
	}
	return result, nil
}

// encodePNGBase64 encodes img as PNG and returns it base64 encoded.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
