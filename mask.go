package micon

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control point distance approximating a quarter circle.
const kappa = 0.5522847498

// RoundedMask generates the single-channel coverage mask of a rounded
// rectangle spanning the full canvas. It is used twice during a render pass:
// once to clip the backdrop to the macOS rounded-square convention and once
// at the very end, after the glow blur could have pushed partial opacity
// over the canvas corners.
func RoundedMask(size int, radius float64) *image.Alpha {
	var (
		s = float32(size)
		r = float32(radius)
		k = float32(kappa) * float32(radius)
	)

	ras := vector.NewRasterizer(size, size)
	ras.MoveTo(r, 0)
	ras.LineTo(s-r, 0)
	ras.CubeTo(s-r+k, 0, s, r-k, s, r)
	ras.LineTo(s, s-r)
	ras.CubeTo(s, s-r+k, s-r+k, s, s-r, s)
	ras.LineTo(r, s)
	ras.CubeTo(r-k, s, 0, s-r+k, 0, s-r)
	ras.LineTo(0, r)
	ras.CubeTo(0, r-k, r-k, 0, r, 0)
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// SetAlpha replaces the alpha channel of the image with the mask coverage.
// The image and the mask must share the same dimensions.
func SetAlpha(img *image.NRGBA, mask *image.Alpha) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	for y := 0; y < dy; y++ {
		i := img.PixOffset(0, y)
		mi := y * mask.Stride

		for x := 0; x < dx; x++ {
			img.Pix[i+3] = mask.Pix[mi+x]
			i += 4
		}
	}
}

// MulAlpha scales the alpha channel of the image by the mask coverage.
// The image and the mask must share the same dimensions.
func MulAlpha(img *image.NRGBA, mask *image.Alpha) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	for y := 0; y < dy; y++ {
		i := img.PixOffset(0, y)
		mi := y * mask.Stride

		for x := 0; x < dx; x++ {
			a := uint32(img.Pix[i+3]) * uint32(mask.Pix[mi+x])
			img.Pix[i+3] = uint8(a / 255)
			i += 4
		}
	}
}
