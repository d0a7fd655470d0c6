package assets

import (
	"image"

	"github.com/qarbonquery/storegen/internal/brand"
	"github.com/qarbonquery/storegen/internal/render"
	"github.com/qarbonquery/storegen/internal/render/layout"
)

// Screenshot mockup and its downscaled variant.
const (
	ScreenshotWidth  = 1280
	ScreenshotHeight = 800
	ScreenshotFile   = "screenshot-1-1280x800.png"

	ScreenshotSmallWidth  = 640
	ScreenshotSmallHeight = 400
	ScreenshotSmallFile   = "screenshot-2-640x400.png"
)

// ScreenshotMockup renders a 1280x800 illustration of the extension in use:
// browser chrome, a chat page, and the extension popup with usage stats and
// a seven-day chart. It is a drawn approximation, not a capture of the real
// product UI.
func ScreenshotMockup(fonts *render.FontSource) *render.Canvas {
	c := render.New(ScreenshotWidth, ScreenshotHeight, brand.PageBackground)

	title := render.TextStyle{Face: fonts.Face(24), Color: brand.TextPrimary}
	body := render.TextStyle{Face: fonts.Face(16), Color: brand.TextPrimary}
	small := render.TextStyle{Face: fonts.Face(12), Color: brand.TextMuted}

	drawBrowserChrome(c, body)
	drawPopup(c, fonts, title, body)
	drawChatPage(c, title, body, small)

	return c
}

func drawBrowserChrome(c *render.Canvas, body render.TextStyle) {
	c.FillRect(image.Rect(0, 0, ScreenshotWidth, 60), brand.ChromeDark)
	c.FillRect(image.Rect(0, 60, ScreenshotWidth, 100), brand.ChromeLight)

	addressBar := image.Rect(100, 70, 1000, 90)
	c.FillRect(addressBar, brand.White)
	c.StrokeRect(addressBar, brand.Border, 1)
	c.DrawText("https://chatgpt.com", 110, 75, body)
}

func drawPopup(c *render.Canvas, fonts *render.FontSource, title, body render.TextStyle) {
	popup := image.Rect(1000, 100, 1260, 500)
	c.FillRect(popup, brand.White)
	c.StrokeRect(popup, brand.Border, 2)

	headerTitle := render.TextStyle{Face: title.Face, Color: brand.White}
	headerSmall := render.TextStyle{Face: fonts.Face(12), Color: brand.White}
	accent := render.TextStyle{Face: title.Face, Color: brand.GreenPrimary}
	muted := render.TextStyle{Face: fonts.Face(12), Color: brand.TextMuted}

	header, _ := layout.SplitHorizontal(popup, 60)
	c.FillRect(header, brand.GreenPrimary)
	c.DrawText(brand.Name, header.Min.X+10, header.Min.Y+10, headerTitle)
	c.DrawText(brand.Tagline, header.Min.X+10, header.Min.Y+35, headerSmall)

	x := popup.Min.X + 10
	c.DrawText("Today's Usage:", x, popup.Min.Y+80, body)
	c.DrawText("2.34 g CO₂e", x, popup.Min.Y+110, accent)

	c.DrawText("Breakdown:", x, popup.Min.Y+150, body)
	c.DrawText("• ChatGPT: 1.2 g", x, popup.Min.Y+175, muted)
	c.DrawText("• Web browsing: 0.8 g", x, popup.Min.Y+195, muted)
	c.DrawText("• Background: 0.34 g", x, popup.Min.Y+215, muted)

	drawUsageChart(c, image.Rect(x, popup.Min.Y+250, x+240, popup.Min.Y+330))
}

// drawUsageChart draws the chart panel with seven bottom-anchored bars of
// increasing height.
func drawUsageChart(c *render.Canvas, chart image.Rectangle) {
	c.FillRect(chart, brand.PageBackground)
	c.StrokeRect(chart, brand.ChromeDark, 1)

	inner := layout.Inset(chart, 5)
	for i := 0; i < 7; i++ {
		barX := chart.Min.X + 10 + i*30
		barHeight := 20 + i*5
		bar := image.Rect(barX, inner.Max.Y-barHeight, barX+20, inner.Max.Y)
		c.FillRect(bar, brand.GreenPrimary)
	}
}

func drawChatPage(c *render.Canvas, title, body, small render.TextStyle) {
	content := image.Rect(50, 120, 950, 750)
	c.FillRect(content, brand.White)

	c.DrawText("ChatGPT", 70, content.Min.Y+20, title)
	c.DrawText("User: What's the carbon footprint of AI?", 70, content.Min.Y+60, body)

	response := image.Rect(70, content.Min.Y+100, 930, content.Min.Y+300)
	c.FillRect(response, brand.PageBackground)
	c.DrawText("The carbon footprint of AI depends on several factors...", 80, content.Min.Y+110, body)

	// Tracking strip under the response.
	strip := image.Rect(70, content.Min.Y+320, 400, content.Min.Y+350)
	c.FillRect(strip, brand.GreenTint)
	c.StrokeRect(strip, brand.GreenPrimary, 1)
	status := render.TextStyle{Face: small.Face, Color: brand.GreenDark}
	c.DrawText("Carbon tracking active - 0.15g CO₂e this query", 80, content.Min.Y+330, status)
}
