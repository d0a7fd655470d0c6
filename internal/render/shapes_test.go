package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFillPolygonSolid(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c := New(100, 100, bg)

	fill := color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 255}
	c.FillPolygon(LeafPoints(50, 50, 30), fill)

	if got := c.Image().RGBAAt(50, 50); got != fill {
		t.Errorf("leaf center = %v, want %v", got, fill)
	}
	// Far corner stays background.
	if got := c.Image().RGBAAt(2, 95); got != bg {
		t.Errorf("outside = %v, want background %v", got, bg)
	}
}

func TestFillPolygonBlendsPartialAlpha(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c := New(100, 100, bg)

	c.FillPolygon(LeafPoints(50, 50, 30), color.NRGBA{A: 128})

	got := c.Image().RGBAAt(50, 50)
	// Black at half alpha over white lands near mid-gray, not at either end.
	if got.R < 100 || got.R > 160 {
		t.Errorf("blended pixel = %v, want mid-gray channel values", got)
	}
	if got == bg {
		t.Error("semi-transparent fill left the background untouched")
	}
}

func TestFillPolygonIgnoresDegenerateInput(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c := New(20, 20, bg)
	c.FillPolygon([]image.Point{{5, 5}, {15, 15}}, color.RGBA{R: 255, A: 255})

	if got := c.Image().RGBAAt(10, 10); got != bg {
		t.Errorf("two-point polygon painted %v", got)
	}
}

func TestFillPolygonClipsOffCanvas(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c := New(40, 40, bg)

	// Leaf mostly hangs off the right edge; drawing must not panic.
	fill := color.RGBA{G: 255, A: 255}
	c.FillPolygon(LeafPoints(45, 20, 15), fill)

	if got := c.Image().RGBAAt(5, 20); got != bg {
		t.Errorf("far-left pixel = %v, want background", got)
	}
}

func TestLeafPointsGeometry(t *testing.T) {
	pts := LeafPoints(220, 200, 20)
	want := []image.Point{
		{220, 180}, {240, 190}, {230, 205}, {220, 220}, {210, 205}, {200, 190},
	}
	if len(pts) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], want[i])
		}
	}
}
