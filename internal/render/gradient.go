package render

import "image/color"

// FillVerticalGradient paints a top-to-bottom linear gradient between two
// colors. Each row is uniform: for row y the factor t = y/height selects
// round(top*(1-t) + bottom*t) per channel, so row 0 is exactly the top color
// and the last row lands on the bottom color within rounding.
func (c *Canvas) FillVerticalGradient(top, bottom color.RGBA) {
	width, height := c.Size()
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		row := color.RGBA{
			R: lerpChannel(top.R, bottom.R, t),
			G: lerpChannel(top.G, bottom.G, t),
			B: lerpChannel(top.B, bottom.B, t),
			A: 0xFF,
		}
		for x := 0; x < width; x++ {
			c.img.SetRGBA(x, y, row)
		}
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from)*(1-t) + float64(to)*t
	return uint8(v + 0.5)
}
