package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// RawImage is an 8-bit interleaved pixel buffer with its geometry.
//
// Pix is row-major with Channels samples per pixel, origin at the top-left.
type RawImage struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// ToRaw converts an image to a grayscale raw buffer with the given channel layout.
//
// The image is first converted to grayscale, then packed as:
//   - 1: gray
//   - 2: gray, alpha
//   - 3: gray, gray, gray
//   - 4: gray, gray, gray, alpha
//
// Gray always occupies the first sample of each pixel, which is the only
// sample the Sobel pass reads.
func ToRaw(img image.Image, channels int) (*RawImage, error) {
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("unsupported channel count %d: must be 1, 2, 3 or 4", channels)
	}

	gray := imaging.Grayscale(img)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()

	raw := &RawImage{
		Pix:      make([]uint8, w*h*channels),
		Width:    w,
		Height:   h,
		Channels: channels,
	}

	for y := 0; y < h; y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+w*4]
		for x := 0; x < w; x++ {
			g, a := src[x*4], src[x*4+3]
			dst := raw.Pix[(y*w+x)*channels:]
			switch channels {
			case 1:
				dst[0] = g
			case 2:
				dst[0], dst[1] = g, a
			case 3:
				dst[0], dst[1], dst[2] = g, g, g
			case 4:
				dst[0], dst[1], dst[2], dst[3] = g, g, g, a
			}
		}
	}

	return raw, nil
}

// FromRGBA wraps a 4-channel buffer as an image.
//
// Returns an error if pix does not hold exactly width*height RGBA pixels.
func FromRGBA(pix []uint8, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%d RGBA", len(pix), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img, nil
}
