package micon

import (
	"image/color"

	"github.com/mcpcontrol/micon/utils"
)

// DefaultSize is the master icon dimension the appiconset is rendered at.
const DefaultSize = 1024

// Geometry constants expressed as fractions of the master dimension.
const (
	cornerFrac    = 0.22  // rounded-square corner radius
	marginXFrac   = 0.18  // horizontal glyph margin
	marginYFrac   = 0.22  // top and bottom glyph margin
	strokeFrac    = 0.125 // glyph stroke width
	vDepthFrac    = 0.28  // depth of the central V dip
	glowSigmaFrac = 0.04  // Gaussian sigma of the glow halo
)

// Background colors, near black with a slightly warm tint.
var (
	bgDark    = color.NRGBA{R: 24, G: 24, B: 27, A: 0xff}
	bgLighter = color.NRGBA{R: 39, G: 39, B: 42, A: 0xff}
)

// Gradient stops of the glyph, top to bottom.
var (
	gradTop    = color.NRGBA{R: 255, G: 120, B: 100, A: 0xff}
	gradMid    = color.NRGBA{R: 255, G: 65, B: 55, A: 0xff}
	gradBottom = color.NRGBA{R: 200, G: 30, B: 25, A: 0xff}
)

// glowColor is the translucent warm tint blurred into the halo behind the glyph.
var glowColor = color.NRGBA{R: 255, G: 80, B: 60, A: 60}

// lerpColor interpolates component-wise between two opaque colors.
func lerpColor(c0, c1 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(utils.Lerp(float64(c0.R), float64(c1.R), t)),
		G: uint8(utils.Lerp(float64(c0.G), float64(c1.G), t)),
		B: uint8(utils.Lerp(float64(c0.B), float64(c1.B), t)),
		A: 0xff,
	}
}
