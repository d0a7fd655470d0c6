package assets

import (
	"image"
	"image/color"

	"github.com/qarbonquery/storegen/internal/brand"
	"github.com/qarbonquery/storegen/internal/render"
	"github.com/qarbonquery/storegen/internal/render/layout"
)

// Marquee banner.
const (
	BannerWidth  = 1400
	BannerHeight = 560
	BannerFile   = "marquee-banner-1400x560.png"

	// Max runes per headline line before wrapping.
	headlineWrapLimit = 25
	headlineAdvance   = 80
)

// MarqueeBanner renders the 1400x560 hero banner: wrapped headline,
// subtitle, feature lines in two columns, and three translucent leaves.
func MarqueeBanner(fonts *render.FontSource) *render.Canvas {
	c := render.New(BannerWidth, BannerHeight, brand.White)
	c.FillVerticalGradient(brand.White, brand.GreenPrimary)

	hero := render.TextStyle{Face: fonts.Face(72), Color: brand.White}
	subtitle := render.TextStyle{Face: fonts.Face(32), Color: brand.White}
	feature := render.TextStyle{Face: fonts.Face(24), Color: brand.White}

	y := 100
	for _, line := range render.WrapWords(brand.BannerHeadline, headlineWrapLimit) {
		c.DrawTextCentered(line, y, hero)
		y += headlineAdvance
	}
	c.DrawTextCentered(brand.BannerSubtitle, y+20, subtitle)

	// Feature lines, two per column, rows 35px apart.
	y += 80
	left, right := layout.SplitVertical(image.Rect(0, 0, BannerWidth, BannerHeight), BannerWidth/2)
	for i, line := range brand.BannerFeatures {
		column := left
		if i >= 2 {
			column = right
		}
		w := c.MeasureText(line, feature).Width
		x := column.Min.X + (column.Dx()-w)/2
		c.DrawText(line, x, y+(i%2)*35, feature)
	}

	// Decorative leaves shrink and fade toward the right. The fills carry
	// partial alpha and blend over the gradient.
	for i := 0; i < 3; i++ {
		size := 60 - i*10
		fill := color.NRGBA{
			R: brand.GreenSecondary.R,
			G: brand.GreenSecondary.G,
			B: brand.GreenSecondary.B,
			A: uint8(100 - i*20),
		}
		c.FillPolygon(render.LeafPoints(200+i*400, 400, size), fill)
	}

	return c
}
