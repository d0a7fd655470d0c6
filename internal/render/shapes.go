package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// FillPolygon fills the closed polygon described by pts with col, composited
// over the canvas. The rasterizer goes through an alpha mask, so colors with
// partial alpha genuinely blend with what is already on the canvas.
// Geometry outside the canvas clips silently.
func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	width, height := c.Size()
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Over
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// LeafPoints returns the six vertices of the stylized leaf mark centered at
// (cx, cy). size is the vertical half-extent; the silhouette narrows toward
// the tip at the top.
func LeafPoints(cx, cy, size int) []image.Point {
	return []image.Point{
		{X: cx, Y: cy - size},
		{X: cx + size, Y: cy - size/2},
		{X: cx + size/2, Y: cy + size/4},
		{X: cx, Y: cy + size},
		{X: cx - size/2, Y: cy + size/4},
		{X: cx - size, Y: cy - size/2},
	}
}
