// Package brand centralizes the QarbonQuery palette and listing copy so the
// asset composers share one source of truth instead of scattered literals.
package brand

import "image/color"

// Product identity.
const (
	Name    = "QarbonQuery"
	Tagline = "Carbon Footprint Tracker"
)

// Palette, derived from the extension icon SVG.
var (
	GreenPrimary   = color.RGBA{R: 0x4A, G: 0xDE, B: 0x80, A: 0xFF} // #4ade80
	GreenSecondary = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF} // #22c55e
	GreenDark      = color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF} // #16a34a

	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Neutral grays used by the screenshot mockup chrome.
	PageBackground = color.RGBA{R: 0xF8, G: 0xF9, B: 0xFA, A: 0xFF} // #f8f9fa
	ChromeDark     = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF} // #e5e7eb
	ChromeLight    = color.RGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF} // #f3f4f6
	Border         = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF} // #d1d5db
	TextPrimary    = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF} // #374151
	TextMuted      = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF} // #6b7280
	GreenTint      = color.RGBA{R: 0xDC, G: 0xFC, B: 0xE7, A: 0xFF} // #dcfce7
)

// TileFeatures are the bullet lines on the large tile.
var TileFeatures = []string{
	"• Real-time carbon tracking",
	"• AI-powered insights",
	"• Privacy-focused design",
}

// Banner copy.
const (
	BannerHeadline = "Track Your Digital Carbon Footprint"
	BannerSubtitle = "Real-time monitoring of your AI interactions and web browsing"
)

// BannerFeatures are laid out in two columns on the marquee banner.
var BannerFeatures = []string{
	"Real-time carbon tracking",
	"AI-powered insights",
	"Privacy-focused design",
	"Detailed analytics",
}
