// Package imop implements the Porter-Duff composition operations
// used for merging the icon layers with their backdrop.
// The image/draw core package implements only the source-over-destination
// and source operators; the renderer also needs the in/out family when
// a layer has to be constrained to the footprint of another one.
package imop

import (
	"image"

	"github.com/mcpcontrol/micon/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
)

// Bitmap holds the destination image of a composition operation.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new composition target of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes the supported composition operations,
// with source-over-destination as the default one.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw applies the active composition operation over the source and
// destination image and writes the result into the bitmap.
// Both images must share the bitmap dimensions.
func (op *Composite) Draw(bmp *Bitmap, src, dst *image.NRGBA) {
	dx, dy := bmp.Img.Bounds().Dx(), bmp.Img.Bounds().Dy()

	for y := 0; y < dy; y++ {
		si := src.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		bi := bmp.Img.PixOffset(0, y)

		for x := 0; x < dx; x++ {
			rs := float64(src.Pix[si+0]) / 255
			gs := float64(src.Pix[si+1]) / 255
			bs := float64(src.Pix[si+2]) / 255
			as := float64(src.Pix[si+3]) / 255

			rb := float64(dst.Pix[di+0]) / 255
			gb := float64(dst.Pix[di+1]) / 255
			bb := float64(dst.Pix[di+2]) / 255
			ab := float64(dst.Pix[di+3]) / 255

			var rn, gn, bn, an float64

			// applying the alpha composition formula over premultiplied components
			switch op.current {
			case Copy:
				rn = as * rs
				gn = as * gs
				bn = as * bs
				an = as
			case SrcOver:
				rn = as*rs + ab*rb*(1-as)
				gn = as*gs + ab*gb*(1-as)
				bn = as*bs + ab*bb*(1-as)
				an = as + ab*(1-as)
			case DstOver:
				rn = as*rs*(1-ab) + ab*rb
				gn = as*gs*(1-ab) + ab*gb
				bn = as*bs*(1-ab) + ab*bb
				an = as*(1-ab) + ab
			case SrcIn:
				rn = as * rs * ab
				gn = as * gs * ab
				bn = as * bs * ab
				an = as * ab
			case DstIn:
				rn = ab * rb * as
				gn = ab * gb * as
				bn = ab * bb * as
				an = ab * as
			}

			// The bitmap stores non-premultiplied colors,
			// so the composed components are divided back by the alpha.
			if an > 0 {
				rn /= an
				gn /= an
				bn /= an
			}

			bmp.Img.Pix[bi+0] = uint8(rn*255 + 0.5)
			bmp.Img.Pix[bi+1] = uint8(gn*255 + 0.5)
			bmp.Img.Pix[bi+2] = uint8(bn*255 + 0.5)
			bmp.Img.Pix[bi+3] = uint8(an*255 + 0.5)

			si += 4
			di += 4
			bi += 4
		}
	}
}
