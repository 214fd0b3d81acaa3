package micon

import (
	"image"

	"golang.org/x/image/vector"
)

// Point is a 2D vertex of the glyph contour.
type Point struct {
	X, Y float64
}

// glyphExtent returns the vertical span of the glyph on the canvas.
func glyphExtent(size int) (top, bottom int) {
	top = int(float64(size) * marginYFrac)
	return top, size - top
}

// GlyphPolygon traces the "M" glyph as a single 12-vertex contour:
// both outer legs, the central V dip and the inner leg walls are carved
// by the point ordering alone, so the shape renders identically under the
// non-zero and the even-odd fill rule. The inner dip sits deeper than the
// outer one by a stroke-derived offset, which is what gives the diagonals
// their visible width without drawing two separate V shapes.
func GlyphPolygon(size int) []Point {
	var (
		left   = float64(int(float64(size) * marginXFrac))
		right  = float64(size) - left
		stroke = float64(int(float64(size) * strokeFrac))
		vDepth = float64(int(float64(size) * vDepthFrac))
		cx     = float64(size / 2)
	)
	top, bottom := glyphExtent(size)
	ty, by := float64(top), float64(bottom)

	return []Point{
		// Left leg outer
		{left, by},
		{left, ty},
		// Left diagonal down to the center
		{left + stroke*1.1, ty},
		{cx, ty + vDepth},
		// Right diagonal up from the center
		{right - stroke*1.1, ty},
		// Right leg outer
		{right, ty},
		{right, by},
		// Right leg inner
		{right - stroke, by},
		{right - stroke, ty + stroke*0.8},
		// Inner dip, shallower walls than the outer one
		{cx, ty + vDepth + stroke*0.7},
		{left + stroke, ty + stroke*0.8},
		// Left leg inner
		{left + stroke, by},
	}
}

// FillPolygon rasterizes the closed contour into a single-channel
// coverage mask of the given canvas size.
func FillPolygon(size int, poly []Point) *image.Alpha {
	ras := vector.NewRasterizer(size, size)
	ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}
