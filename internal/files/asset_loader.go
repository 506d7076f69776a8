package files

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

type AssetLoader struct {
	imagesDir string
}

func NewAssetLoader(imagesDir string) *AssetLoader {
	return &AssetLoader{imagesDir: imagesDir}
}

func (l *AssetLoader) Background(name string) (image.Image, error) {
	path := filepath.Join(l.imagesDir, name)
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load background %s: %w", path, err)
	}
	return img, nil
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create dir %s: %w", dir, err)
	}
	return nil
}
