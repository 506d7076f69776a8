package image

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/fogleman/gg"
)

// firstIdeograph is U+4E00, the start of the CJK Unified Ideographs block.
const firstIdeograph = 0x4E00

type tile struct {
	X, Y  float64
	Glyph string
}

func alphabetStart(alphabet []string) int {
	start := 0
	for i, c := range alphabet {
		r, _ := utf8.DecodeRuneInString(c)
		if r >= firstIdeograph {
			start = i
			break
		}
	}
	return start
}

func gridCount(size, boxSize int) int {
	return (size + boxSize - 1) / boxSize
}

func layoutTiles(width, height int, alphabet []string, step, boxSize int, f *Font) []tile {
	if len(alphabet) == 0 {
		return nil
	}

	xCount := gridCount(width, boxSize)
	yCount := gridCount(height, boxSize)
	xOffset := float64(width-xCount*boxSize)/2 + float64(boxSize-f.Size)/2
	yOffset := float64(height-yCount*boxSize)/2 + float64(boxSize-f.LineHeight())/2

	tiles := make([]tile, 0, xCount*yCount)
	index := alphabetStart(alphabet)
	for y := 0; y < yCount; y++ {
		for x := 0; x < xCount; x++ {
			tiles = append(tiles, tile{
				X:     xOffset + float64(x*boxSize),
				Y:     yOffset + float64(y*boxSize),
				Glyph: alphabet[index],
			})
			index = (index + step) % len(alphabet)
		}
	}
	return tiles
}

// DrawTextBackground covers the canvas with a centred grid of boxSize cells, one character per
// cell. It starts at the first CJK ideograph of the alphabet and walks it by step, wrapping around.
func DrawTextBackground(canvas *image.RGBA, alphabet []string, step, boxSize int, f *Font, c color.Color) {
	b := canvas.Bounds()
	tiles := layoutTiles(b.Dx(), b.Dy(), alphabet, step, boxSize, f)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(f.Face)
	dc.SetColor(c)

	ascent := float64(f.Ascent())
	for _, t := range tiles {
		dc.DrawString(t.Glyph, t.X, t.Y+ascent)
	}
}
