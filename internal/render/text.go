package render

import (
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFontPaths is the resolution order for a usable TTF. The Linux
// entries cover the usual distro locations for CI and headless runs; the
// macOS entries cover developer machines.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// FontSource is a parsed font from which faces are minted at the point sizes
// each asset needs. The zero value (no parsed font) falls back to basicfont,
// so text rendering never fails; typography just degrades.
type FontSource struct {
	tt   *truetype.Font
	path string
}

// ResolveFont tries each candidate path in order and keeps the first file
// that exists and parses as TrueType. It never returns an error; when no
// candidate resolves the source mints basicfont faces.
func ResolveFont(paths []string) *FontSource {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		tt, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return &FontSource{tt: tt, path: p}
	}
	return &FontSource{}
}

// Path reports which font file resolved, or "" for the built-in fallback.
func (s *FontSource) Path() string { return s.path }

// Face returns a face at the given point size. Fallback faces ignore the
// size; basicfont only comes in 7x13.
func (s *FontSource) Face(points float64) font.Face {
	if s.tt == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(s.tt, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// TextStyle describes how to render a string.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// MeasureText returns the pixel extents of text in the style's face.
func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	drawer := &font.Drawer{Face: style.Face}
	width := drawer.MeasureString(text).Ceil()
	m := style.Face.Metrics()
	return TextMetrics{
		Width:      width,
		Height:     m.Ascent.Ceil() + m.Descent.Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}

// DrawText renders text with its top-left corner at (x, y). The baseline
// offset is handled internally via the face ascent.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	metrics := c.MeasureText(text, style)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color),
		Face: style.Face,
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

// DrawTextCentered renders text horizontally centered on the canvas with its
// top edge at y, and returns the left origin it computed.
func (c *Canvas) DrawTextCentered(text string, y int, style TextStyle) int {
	x := c.CenteredX(text, style)
	c.DrawText(text, x, y, style)
	return x
}

// CenteredX computes the left origin that centers text on the canvas.
func (c *Canvas) CenteredX(text string, style TextStyle) int {
	width, _ := c.Size()
	return (width - c.MeasureText(text, style).Width) / 2
}

// WrapWords greedily wraps s into lines of at most limit runes, breaking on
// word boundaries. A single word longer than limit gets its own line rather
// than being split.
func WrapWords(s string, limit int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) <= limit {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
