// Package assets composes the individual store listing images. Each composer
// builds and returns one finished canvas; encoding and placement on disk are
// the pipeline's job.
package assets

import (
	"github.com/qarbonquery/storegen/internal/brand"
	"github.com/qarbonquery/storegen/internal/render"
)

// Large promotional tile.
const (
	TileWidth  = 440
	TileHeight = 280
	TileFile   = "large-tile-440x280.png"
)

// LargeTile renders the 440x280 promotional tile: brand gradient, centered
// name and tagline, three feature bullets, and the leaf mark.
func LargeTile(fonts *render.FontSource) *render.Canvas {
	c := render.New(TileWidth, TileHeight, brand.White)
	c.FillVerticalGradient(brand.White, brand.GreenPrimary)

	title := render.TextStyle{Face: fonts.Face(42), Color: brand.White}
	tagline := render.TextStyle{Face: fonts.Face(18), Color: brand.White}
	small := render.TextStyle{Face: fonts.Face(16), Color: brand.White}

	c.DrawTextCentered(brand.Name, 40, title)
	c.DrawTextCentered(brand.Tagline, 95, tagline)

	y := 140
	for _, feature := range brand.TileFeatures {
		c.DrawTextCentered(feature, y, small)
		y += 25
	}

	// Leaf mark with the CO₂ label centered on it.
	const leafCX, leafCY, leafSize = 220, 200, 20
	c.FillPolygon(render.LeafPoints(leafCX, leafCY, leafSize), brand.GreenDark)
	co2 := "CO₂"
	m := c.MeasureText(co2, small)
	c.DrawText(co2, leafCX-m.Width/2, leafCY-m.Height/2, small)

	return c
}
