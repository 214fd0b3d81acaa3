package micon

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Glow renders the soft halo layer composited beneath the sharp glyph:
// the glyph contour filled directly with a low-alpha warm tint, then
// blurred with a Gaussian kernel proportional to the canvas size.
// The blur expands the non-zero alpha footprint isotropically, so the
// halo reaches past the exact glyph boundary.
func Glow(size int, poly []Point) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, size, size))
	cov := FillPolygon(size, poly)
	draw.DrawMask(layer, layer.Bounds(), image.NewUniform(glowColor), image.Point{}, cov, image.Point{}, draw.Over)

	return imaging.Blur(layer, float64(size)*glowSigmaFrac)
}
