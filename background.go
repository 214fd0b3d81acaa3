package micon

import (
	"image"
	"math"

	"github.com/mcpcontrol/micon/utils"
)

// PaintBackground renders the fully opaque backdrop of the icon:
// a subtle radial gradient, lighter towards the canvas center and
// falling off to the darker tone with the distance from it.
func PaintBackground(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2

	for y := 0; y < size; y++ {
		i := img.PixOffset(0, y)
		dy := (float64(y) - half) / half

		for x := 0; x < size; x++ {
			dx := (float64(x) - half) / half
			dist := math.Sqrt(dx*dx + dy*dy)
			t := utils.Min(1.0, dist*0.7)

			c := lerpColor(bgLighter, bgDark, t)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
			i += 4
		}
	}
	return img
}
