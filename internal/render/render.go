package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an offscreen RGBA surface that one asset composer owns from
// creation until it is encoded to disk. Dimensions are fixed at creation.
type Canvas struct {
	img *image.RGBA
}

// New returns a canvas of the given size filled with the background color.
func New(width, height int, background color.Color) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Fill(background)
	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width int, height int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// Image exposes the underlying surface for encoding and scaling.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill paints the whole canvas with a uniform color.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillRect paints the given rectangle, clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, rect.Intersect(c.img.Bounds()), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// StrokeRect draws a border of the given width just inside rect.
func (c *Canvas) StrokeRect(rect image.Rectangle, col color.Color, width int) {
	if width <= 0 {
		return
	}
	top := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width)
	bottom := image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y)
	left := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y)
	right := image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		c.FillRect(edge, col)
	}
}
