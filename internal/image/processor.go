package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

type Processor struct{}

func (p *Processor) NewCanvas(width, height int, fill color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return canvas
}

// CanvasFrom copies img into a fresh canvas anchored at the origin.
func (p *Processor) CanvasFrom(img image.Image) *image.RGBA {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return canvas
}

// Paste composites src over dst at the origin, using src's own alpha as the mask.
func (p *Processor) Paste(dst *image.RGBA, src image.Image) {
	b := src.Bounds()
	draw.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), src, b.Min, draw.Over)
}

// Upscale enlarges img by an integer factor without smoothing, keeping pixel edges hard.
func (p *Processor) Upscale(img image.Image, factor int) image.Image {
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}
