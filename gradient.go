package micon

import (
	"image"
	"image/color"

	"github.com/mcpcontrol/micon/utils"
)

// GradientFill paints the three-stop vertical gradient of the glyph and
// applies the polygon coverage as the resulting layer's alpha channel.
// The color varies only by row: t runs from 0 at the glyph top to 1 at the
// glyph bottom, interpolating top to mid over the first half and mid to
// bottom over the second one. Rows outside the glyph extent are clamped
// to the nearest stop, the coverage mask hides them anyway.
func GradientFill(size int, mask *image.Alpha) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	top, bottom := glyphExtent(size)

	for y := 0; y < size; y++ {
		t := utils.Clamp(float64(y-top)/float64(bottom-top), 0.0, 1.0)

		var c color.NRGBA
		if t < 0.5 {
			c = lerpColor(gradTop, gradMid, t*2)
		} else {
			c = lerpColor(gradMid, gradBottom, (t-0.5)*2)
		}

		i := img.PixOffset(0, y)
		mi := y * mask.Stride

		for x := 0; x < size; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = mask.Pix[mi+x]
			i += 4
		}
	}
	return img
}
