package imaging

import (
	"image/color"
	"testing"
)

func TestCropRegion(t *testing.T) {
	img := createInMemoryImage(100, 80, color.White)

	tests := []struct {
		name                  string
		x1, y1, x2, y2        int
		scale                 float64
		wantWidth, wantHeight int
	}{
		{"full image", 0, 0, 100, 80, 1.0, 100, 80},
		{"top-left", 0, 0, 50, 40, 1.0, 50, 40},
		{"scaled up", 10, 10, 30, 30, 2.0, 40, 40},
		{"scaled down", 0, 0, 100, 80, 0.5, 50, 40},
		{"zero scale is ignored", 0, 0, 20, 20, 0, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CropRegion(img, tt.x1, tt.y1, tt.x2, tt.y2, tt.scale)
			if err != nil {
				t.Fatalf("CropRegion failed: %v", err)
			}
			if got.Bounds().Dx() != tt.wantWidth || got.Bounds().Dy() != tt.wantHeight {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCropRegion_Invalid(t *testing.T) {
	img := createInMemoryImage(100, 80, color.White)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		scale          float64
	}{
		{"outside right", 50, 0, 101, 10, 1.0},
		{"outside top", 0, -1, 10, 10, 1.0},
		{"inverted x", 30, 0, 10, 10, 1.0},
		{"empty y", 0, 10, 10, 10, 1.0},
		{"scale collapses region", 0, 0, 2, 2, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.x1, tt.y1, tt.x2, tt.y2, tt.scale); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCropQuadrant(t *testing.T) {
	img := createInMemoryImage(100, 80, color.White)

	tests := []struct {
		region                string
		wantWidth, wantHeight int
	}{
		{"top-left", 50, 40},
		{"top-right", 50, 40},
		{"bottom-left", 50, 40},
		{"bottom-right", 50, 40},
		{"top-half", 100, 40},
		{"bottom-half", 100, 40},
		{"left-half", 50, 80},
		{"right-half", 50, 80},
		{"center", 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, err := CropQuadrant(img, tt.region, 1.0)
			if err != nil {
				t.Fatalf("CropQuadrant failed: %v", err)
			}
			if got.Bounds().Dx() != tt.wantWidth || got.Bounds().Dy() != tt.wantHeight {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCropQuadrant_Unknown(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)
	if _, err := CropQuadrant(img, "middle-ish", 1.0); err == nil {
		t.Error("expected error for unknown region")
	}
}
