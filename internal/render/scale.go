package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples src into a fresh surface of the given size using
// Catmull-Rom interpolation, the highest-quality scaler x/image ships.
func Downscale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
