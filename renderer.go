package micon

import (
	"fmt"
	"image"

	"github.com/mcpcontrol/micon/imop"
)

// Renderer options
type Renderer struct {
	// Size is the master icon dimension in pixels.
	Size int
}

// Render runs the full rasterization pipeline and returns the flattened
// master image: the radial backdrop clipped to the rounded square, the
// blurred glow and the gradient glyph alpha-composited over it in strict
// order, then the rounded mask multiplied into the alpha channel a second
// time so no blurred pixel survives outside the rounded-square silhouette.
// Every layer shares the same dimensions throughout the pass.
func (r *Renderer) Render() (*image.NRGBA, error) {
	if r.Size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", r.Size)
	}
	size := r.Size

	rounded := RoundedMask(size, float64(size)*cornerFrac)
	bg := PaintBackground(size)
	SetAlpha(bg, rounded)

	poly := GlyphPolygon(size)
	glyph := GradientFill(size, FillPolygon(size, poly))
	glow := Glow(size, poly)

	op := imop.InitOp()
	op.Set(imop.SrcOver)

	base := imop.NewBitmap(bg.Bounds())
	op.Draw(base, glow, bg)

	final := imop.NewBitmap(bg.Bounds())
	op.Draw(final, glyph, base.Img)

	MulAlpha(final.Img, rounded)

	return final.Img, nil
}
