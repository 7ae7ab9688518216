package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded images so repeated gradient requests on the same
// file skip decoding.
//
// Entries are keyed by absolute path and remember the file's size and
// modification time. A file that changed on disk since it was decoded is
// decoded again on the next Load.
//
// ImageCache is safe for concurrent use.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cacheEntry
}

type cacheEntry struct {
	img     image.Image
	format  string
	size    int64
	modTime time.Time
}

func (e *cacheEntry) matches(fi os.FileInfo) bool {
	return e.size == fi.Size() && e.modTime.Equal(fi.ModTime())
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cacheEntry),
	}
}

// Load returns the decoded image at path, from the cache when the file is
// unchanged.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The concrete
// image type depends on the format and color model (e.g. *image.Gray for a
// grayscale PNG, *image.YCbCr for most JPEGs).
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

func (c *ImageCache) load(path string) (*cacheEntry, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid image path %q: %w", path, err)
	}

	fi, err := os.Stat(key)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	e, ok := c.images[key]
	c.mu.RUnlock()
	if ok && e.matches(fi) {
		return e, nil
	}

	f, err := os.Open(key)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	e = &cacheEntry{
		img:     img,
		format:  format,
		size:    fi.Size(),
		modTime: fi.ModTime(),
	}
	c.mu.Lock()
	c.images[key] = e
	c.mu.Unlock()

	return e, nil
}

// ImageInfo describes an image file as the Sobel pass will see it.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the name of the decoder that read the file ("png", "jpeg",
	// "gif", "bmp", "tiff" or "webp"), whatever the file extension says.
	Format string `json:"format"`

	// ColorDepth is "8-bit" or "16-bit" per channel. Sobel input is always
	// reduced to 8 bits.
	ColorDepth string `json:"color_depth"`

	HasAlpha bool `json:"has_alpha"`

	// Grayscale indicates the image is stored without color, so the Sobel
	// pass sees its samples unchanged.
	Grayscale bool `json:"grayscale"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	info := &ImageInfo{
		Width:         e.img.Bounds().Dx(),
		Height:        e.img.Bounds().Dy(),
		Format:        e.format,
		ColorDepth:    "8-bit",
		FileSizeBytes: e.size,
	}
	switch e.img.(type) {
	case *image.RGBA, *image.NRGBA:
		info.HasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		info.HasAlpha = true
		info.ColorDepth = "16-bit"
	case *image.Gray:
		info.Grayscale = true
	case *image.Gray16:
		info.Grayscale = true
		info.ColorDepth = "16-bit"
	}
	return info, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads an image through cache and returns its size.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
