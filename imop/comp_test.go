package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	op.Set(DstIn)
	assert.Equal(DstIn, op.Get())

	// An unsupported operation leaves the current one untouched.
	op.Set("unsupported_composite_operation")
	assert.Equal(DstIn, op.Get())
}

func TestComp_Ops(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()

	transparent := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	bmp := NewBitmap(rect)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Pick three representative pixels from the generated image output.
	// Depending on the applied composition operation they resolve to the
	// source color, the backdrop color or transparent.
	pick := func() (topRight, bottomLeft, center color.Color) {
		return bmp.Img.At(9, 0), bmp.Img.At(0, 9), bmp.Img.At(5, 5)
	}

	// SrcOver is the default operation.
	op.Draw(bmp, source, backdrop)
	topRight, bottomLeft, center := pick()

	assert.EqualValues(magenta, topRight)
	assert.EqualValues(cyan, bottomLeft)
	assert.EqualValues(cyan, center)

	op.Set(Copy)
	op.Draw(bmp, source, backdrop)
	topRight, bottomLeft, center = pick()

	assert.EqualValues(transparent, topRight)
	assert.EqualValues(cyan, bottomLeft)
	assert.EqualValues(cyan, center)

	op.Set(DstOver)
	op.Draw(bmp, source, backdrop)
	topRight, bottomLeft, center = pick()

	assert.EqualValues(magenta, topRight)
	assert.EqualValues(cyan, bottomLeft)
	assert.EqualValues(magenta, center)

	op.Set(SrcIn)
	op.Draw(bmp, source, backdrop)
	topRight, bottomLeft, center = pick()

	assert.EqualValues(transparent, topRight)
	assert.EqualValues(transparent, bottomLeft)
	assert.EqualValues(cyan, center)

	op.Set(DstIn)
	op.Draw(bmp, source, backdrop)
	topRight, bottomLeft, center = pick()

	assert.EqualValues(transparent, topRight)
	assert.EqualValues(transparent, bottomLeft)
	assert.EqualValues(magenta, center)
}

func TestComp_PartialAlpha(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()

	rect := image.Rect(0, 0, 1, 1)
	bmp := NewBitmap(rect)

	source := image.NewNRGBA(rect)
	source.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	backdrop := image.NewNRGBA(rect)
	backdrop.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	op.Draw(bmp, source, backdrop)
	res := bmp.Img.NRGBAAt(0, 0)

	// A half-transparent source over an opaque backdrop stays opaque and
	// mixes the two colors at roughly equal weight.
	assert.EqualValues(255, res.A)
	assert.InDelta(128, res.R, 1)
	assert.InDelta(127, res.B, 1)
	assert.EqualValues(0, res.G)
}
