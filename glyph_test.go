package micon

import (
	"testing"
)

func TestGlyphPolygon_Contour(t *testing.T) {
	size := 256
	poly := GlyphPolygon(size)

	if len(poly) != 12 {
		t.Fatalf("Glyph contour expected to have 12 vertices. Got %v", len(poly))
	}

	top, bottom := glyphExtent(size)

	// Both outer legs start and end on the glyph baseline.
	if poly[0].Y != float64(bottom) || poly[6].Y != float64(bottom) {
		t.Errorf("Outer legs expected to reach the baseline %v. Got %v and %v",
			bottom, poly[0].Y, poly[6].Y)
	}
	if poly[1].Y != float64(top) || poly[5].Y != float64(top) {
		t.Errorf("Outer legs expected to start at the glyph top %v. Got %v and %v",
			top, poly[1].Y, poly[5].Y)
	}

	// Both dips sit on the horizontal center.
	cx := float64(size / 2)
	if poly[3].X != cx || poly[9].X != cx {
		t.Errorf("Dips expected at the center column %v. Got %v and %v", cx, poly[3].X, poly[9].X)
	}

	// The inner dip is deeper than the outer one, which carves the stroke.
	if poly[9].Y <= poly[3].Y {
		t.Errorf("Inner dip expected to be deeper than the outer one. Got %v and %v",
			poly[9].Y, poly[3].Y)
	}
}

func TestFillPolygon_Coverage(t *testing.T) {
	size := 256
	mask := FillPolygon(size, GlyphPolygon(size))

	var (
		left   = int(float64(size) * marginXFrac)
		stroke = int(float64(size) * strokeFrac)
	)
	top, _ := glyphExtent(size)
	vDepth := int(float64(size) * vDepthFrac)

	at := func(x, y int) uint8 {
		return mask.Pix[y*mask.Stride+x]
	}

	// Deep inside the left leg.
	if v := at(left+stroke/2, size/2); v != 0xff {
		t.Errorf("Left leg interior expected full coverage. Got %d", v)
	}
	// Outside the horizontal margin.
	if v := at(10, size/2); v != 0 {
		t.Errorf("Left margin expected zero coverage. Got %d", v)
	}
	// In the V opening, above the outer dip.
	if v := at(size/2, top+vDepth/2); v != 0 {
		t.Errorf("V opening expected zero coverage. Got %d", v)
	}
	// Inside the diagonal stroke, between the two dips.
	if v := at(size/2, top+vDepth+stroke/3); v != 0xff {
		t.Errorf("Diagonal stroke expected full coverage. Got %d", v)
	}
	// In the notch, between the legs and below the inner dip.
	if v := at(size/2, size-top-10); v != 0 {
		t.Errorf("Inner notch expected zero coverage. Got %d", v)
	}
}
