package image

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

var defaultTextColor = color.RGBA{A: 255}

// TextStyle holds the optional knobs of DrawText. The zero value draws opaque black text
// at the font's natural line height with no shadow.
type TextStyle struct {
	Color       color.Color
	ShadowColor color.Color

	// LineHeight of 0 means the font's own ascent plus descent.
	LineHeight int
	LineGap    int

	HorizontalCenter bool
	VerticalCenter   bool
}

type textLayout struct {
	X, Y  float64
	Pitch int
	Lines []string
}

func layoutText(x, y float64, text string, f *Font, style TextStyle) textLayout {
	defaultLineHeight := f.LineHeight()
	lineHeight := style.LineHeight
	if lineHeight == 0 {
		lineHeight = defaultLineHeight
	}
	y += float64(lineHeight-defaultLineHeight) / 2

	glyphHeight := f.GlyphHeight("A")
	spacing := lineHeight + style.LineGap - glyphHeight

	if style.HorizontalCenter {
		x -= f.TextWidth(text) / 2
	}
	if style.VerticalCenter {
		y -= float64(lineHeight) / 2
	}

	return textLayout{
		X:     x,
		Y:     y,
		Pitch: glyphHeight + spacing,
		Lines: strings.Split(text, "\n"),
	}
}

// DrawText draws text with its line box top-left at (x, y), or centred on it when the style asks.
func DrawText(canvas *image.RGBA, x, y float64, text string, f *Font, style TextStyle) {
	l := layoutText(x, y, text, f, style)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(f.Face)

	if style.ShadowColor != nil {
		drawLines(dc, l.X+1, l.Y+1, l, f, style.ShadowColor)
	}

	textColor := style.Color
	if textColor == nil {
		textColor = defaultTextColor
	}
	drawLines(dc, l.X, l.Y, l, f, textColor)
}

func drawLines(dc *gg.Context, x, y float64, l textLayout, f *Font, c color.Color) {
	dc.SetColor(c)
	baseline := y + float64(f.Ascent())
	for i, line := range l.Lines {
		dc.DrawString(line, x, baseline+float64(i*l.Pitch))
	}
}
