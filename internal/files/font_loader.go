package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"pixelbanner/internal/config"
	"pixelbanner/internal/image"
)

type FontLoader struct {
	fontsDir string
	ext      string
}

func NewFontLoader(fontsDir, ext string) *FontLoader {
	return &FontLoader{
		fontsDir: fontsDir,
		ext:      strings.TrimPrefix(ext, "."),
	}
}

// Load opens the font for the given width mode and language flavor at fc.Size*scale pixels.
func (l *FontLoader) Load(fc config.FontConfig, widthMode, languageFlavor string, scale int) (*image.Font, error) {
	size := fc.Size * scale
	path := filepath.Join(l.fontsDir, fc.FontFileName(widthMode, languageFlavor, l.ext))

	face, err := loadFace(path, size)
	if err != nil {
		return nil, fmt.Errorf("load font %s at %dpx: %w", path, size, err)
	}
	return image.NewFont(face, size), nil
}

func loadFace(path string, size int) (font.Face, error) {
	if strings.EqualFold(filepath.Ext(path), ".ttf") {
		return gg.LoadFontFace(path, float64(size))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFace(data, size)
}

// ParseFace builds a face from OpenType or TrueType data at size pixels.
func ParseFace(data []byte, size int) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
