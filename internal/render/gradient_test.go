package render

import (
	"image/color"
	"testing"
)

func TestGradientEndpoints(t *testing.T) {
	top := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bottom := color.RGBA{R: 0x4A, G: 0xDE, B: 0x80, A: 255}

	c := New(40, 280, top)
	c.FillVerticalGradient(top, bottom)

	if got := c.Image().RGBAAt(0, 0); got != top {
		t.Errorf("row 0 = %v, want exact top color %v", got, top)
	}

	// The last row is one step short of t=1, so it approximates the bottom
	// color within rounding of a single step.
	last := c.Image().RGBAAt(0, 279)
	if diff(last.R, bottom.R) > 2 || diff(last.G, bottom.G) > 2 || diff(last.B, bottom.B) > 2 {
		t.Errorf("row 279 = %v, want ~%v", last, bottom)
	}
}

func TestGradientRowsUniformAndMonotonic(t *testing.T) {
	top := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bottom := color.RGBA{R: 0x4A, G: 0xDE, B: 0x80, A: 255}

	c := New(30, 100, top)
	c.FillVerticalGradient(top, bottom)
	img := c.Image()

	prev := img.RGBAAt(0, 0)
	for y := 0; y < 100; y++ {
		row := img.RGBAAt(0, y)
		for x := 1; x < 30; x++ {
			if img.RGBAAt(x, y) != row {
				t.Fatalf("row %d is not uniform: %v vs %v at x=%d", y, img.RGBAAt(x, y), row, x)
			}
		}
		// White fades toward the darker green: every channel descends.
		if row.R > prev.R || row.G > prev.G || row.B > prev.B {
			t.Fatalf("row %d = %v brighter than previous row %v", y, row, prev)
		}
		prev = row
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
