package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToRaw_Layouts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{100, 100, 100, 200})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})

	tests := []struct {
		channels int
		want     []uint8
	}{
		{1, []uint8{100, 255}},
		{2, []uint8{100, 200, 255, 255}},
		{3, []uint8{100, 100, 100, 255, 255, 255}},
		{4, []uint8{100, 100, 100, 200, 255, 255, 255, 255}},
	}

	for _, tt := range tests {
		raw, err := ToRaw(img, tt.channels)
		if err != nil {
			t.Fatalf("channels %d: ToRaw failed: %v", tt.channels, err)
		}
		if raw.Width != 2 || raw.Height != 1 || raw.Channels != tt.channels {
			t.Errorf("channels %d: got %dx%d/%d", tt.channels, raw.Width, raw.Height, raw.Channels)
		}
		if string(raw.Pix) != string(tt.want) {
			t.Errorf("channels %d: Pix got %v, want %v", tt.channels, raw.Pix, tt.want)
		}
	}
}

func TestToRaw_ConvertsColor(t *testing.T) {
	img := createInMemoryImage(3, 3, color.RGBA{255, 0, 0, 255})

	raw, err := ToRaw(img, 1)
	if err != nil {
		t.Fatalf("ToRaw failed: %v", err)
	}

	// BT.601 luma of pure red.
	for i, v := range raw.Pix {
		if v != 76 {
			t.Errorf("Pix[%d]: got %d, want 76", i, v)
		}
	}
}

func TestToRaw_InvalidChannels(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	for _, ch := range []int{0, 5, -3} {
		if _, err := ToRaw(img, ch); err == nil {
			t.Errorf("channels %d: expected error", ch)
		}
	}
}

func TestFromRGBA(t *testing.T) {
	pix := []uint8{
		10, 10, 10, 255, 20, 20, 20, 255,
		30, 30, 30, 255, 40, 40, 40, 255,
	}

	img, err := FromRGBA(pix, 2, 2)
	if err != nil {
		t.Fatalf("FromRGBA failed: %v", err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{40, 40, 40, 255}) {
		t.Errorf("pixel (1,1): got %v", got)
	}

	// The image owns a copy.
	pix[0] = 99
	if img.Pix[0] != 10 {
		t.Error("FromRGBA aliased the input buffer")
	}
}

func TestFromRGBA_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		pix           []uint8
		width, height int
	}{
		{"short", make([]uint8, 15), 2, 2},
		{"long", make([]uint8, 17), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRGBA(tt.pix, tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}
