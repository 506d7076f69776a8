package image

import (
	"strings"

	"golang.org/x/image/font"
)

// Font is a face already rasterised at its pixel size. Renderers only read from it.
type Font struct {
	Face font.Face
	Size int
}

func NewFont(face font.Face, size int) *Font {
	return &Font{Face: face, Size: size}
}

func (f *Font) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

func (f *Font) Descent() int {
	return f.Face.Metrics().Descent.Ceil()
}

// LineHeight is the natural line height, ascent plus descent.
func (f *Font) LineHeight() int {
	return f.Ascent() + f.Descent()
}

// GlyphHeight measures s from the top of the ascent down to the lowest ink.
func (f *Font) GlyphHeight(s string) int {
	bounds, _ := font.BoundString(f.Face, s)
	return f.Ascent() + bounds.Max.Y.Ceil()
}

// TextWidth returns the advance of the widest line.
func (f *Font) TextWidth(text string) float64 {
	var widest float64
	for _, line := range strings.Split(text, "\n") {
		adv := font.MeasureString(f.Face, line)
		widest = max(widest, float64(adv)/64)
	}
	return widest
}
