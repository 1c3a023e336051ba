package tui

import "testing"

func TestRegionWriteWithinBoundsReturnsNaturalWidth(t *testing.T) {
	p := NewPage(1, 10, 0)
	rg := p.Full()
	total := rg.Write(0, 2, 1, "abc")
	if total != 5 {
		t.Errorf("Write returned %d, want 5 (2 + len(abc))", total)
	}
	normalizeRow(p.rows[0], 10, p.measure)
	glyphs := glyphScan(p.rows[0].data, p.measure)
	var found bool
	for _, g := range glyphs {
		if g.X == 2 && g.HFB == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("no glyph at X=2 HFB=1 in %+v", glyphs)
	}
}

func TestRegionWriteClipsAtRightEdge(t *testing.T) {
	p := NewPage(1, 10, 0)
	rg := p.Region(0, 0, 1, 5)
	total := rg.Write(0, 3, 1, "abcde")
	if total != 8 {
		t.Errorf("Write returned %d, want 8 (3 + len(abcde))", total)
	}
	normalizeRow(p.rows[0], 10, p.measure)
	glyphs := glyphScan(p.rows[0].data, p.measure)
	for _, g := range glyphs {
		if g.X >= 5 && g.HFB == 1 {
			t.Errorf("glyph %+v painted past the region's right clip edge (cx1=5)", g)
		}
	}
}

// wide2Measure gives 'A' a natural width of 2 cells so a write can straddle
// a region's left clip edge mid-glyph, exercising Write's shift path.
func wide2Measure(r rune) int {
	if r == 'A' {
		return 2
	}
	return 1
}

func TestRegionWriteLeftStraddleAppliesShift(t *testing.T) {
	p := NewPageWithMeasure(1, 10, 0, wide2Measure)
	rg := p.Region(0, 3, 1, 5) // cx0=3, cx1=8
	total := rg.Write(0, -1, 1, "AB")
	if total != 2 {
		t.Errorf("Write returned %d, want 2 (-1 + width(AB)=3)", total)
	}
	normalizeRow(p.rows[0], 10, wide2Measure)
	glyphs := glyphScan(p.rows[0].data, wide2Measure)
	var g0 *Glyph
	for i := range glyphs {
		if glyphs[i].X == 3 {
			g0 = &glyphs[i]
		}
	}
	if g0 == nil {
		t.Fatalf("no glyph at X=3 in %+v", glyphs)
	}
	if g0.Shift != 1 {
		t.Errorf("glyph at clip boundary has Shift=%d, want 1", g0.Shift)
	}
}

func TestRegionWriteFullyLeftOfClipIsInvisible(t *testing.T) {
	p := NewPage(1, 10, 0)
	rg := p.Region(0, 5, 1, 3) // cx0=5, cx1=8
	rg.Write(0, -3, 1, "XY")  // both glyphs land entirely in [0,5) < cx0
	normalizeRow(p.rows[0], 10, p.measure)
	glyphs := glyphScan(p.rows[0].data, p.measure)
	for _, g := range glyphs {
		if g.HFB == 1 {
			t.Errorf("glyph %+v with HFB=1 should not be visible; both source glyphs were entirely left of cx0", g)
		}
	}
}

func TestRegionWriteOutsideRowIsNoOp(t *testing.T) {
	p := NewPage(3, 10, 0)
	rg := p.Full()
	total := rg.Write(-1, 2, 1, "abc")
	if total != 5 {
		t.Errorf("Write returned %d, want 5 even when the row is out of bounds", total)
	}
	for y, row := range p.rows {
		normalizeRow(row, 10, p.measure)
		for _, g := range glyphScan(row.data, p.measure) {
			if g.HFB == 1 {
				t.Errorf("row %d: unexpected HFB=1 glyph from an out-of-bounds write: %+v", y, g)
			}
		}
	}
}

func TestRegionSubRegionClampsToParent(t *testing.T) {
	p := NewPage(10, 10, 0)
	rg := p.Region(2, 2, 5, 5) // cy0..cy1 = [2,7), cx0..cx1 = [2,7)
	sub := rg.SubRegion(-3, -3, 4, 4)
	if sub.cy0 != 2 || sub.cx0 != 2 {
		t.Errorf("sub-region origin = (%d, %d), want clamped to (2, 2)", sub.cy0, sub.cx0)
	}
	sub2 := rg.SubRegion(3, 3, 10, 10)
	if sub2.cy1 != 7 || sub2.cx1 != 7 {
		t.Errorf("sub-region extent = (%d, %d), want clamped to (7, 7)", sub2.cy1, sub2.cx1)
	}
}

func TestRegionClearFullWidthFastPath(t *testing.T) {
	p := NewPage(1, 5, 1)
	rg := p.Full()
	rg.Clear(2)
	normalizeRow(p.rows[0], 5, p.measure)
	glyphs := glyphScan(p.rows[0].data, p.measure)
	for _, g := range glyphs {
		if g.HFB != 2 {
			t.Errorf("glyph %+v not repainted to HFB=2 by full-width Clear", g)
		}
	}
}

func TestRegionClearPartialWidth(t *testing.T) {
	p := NewPage(1, 10, 1)
	rg := p.Region(0, 3, 1, 4) // cx0=3, cx1=7
	rg.Clear(2)
	normalizeRow(p.rows[0], 10, p.measure)
	glyphs := glyphScan(p.rows[0].data, p.measure)
	for _, g := range glyphs {
		inClear := g.X >= 3 && g.X < 7
		if inClear && g.HFB != 2 {
			t.Errorf("glyph %+v inside cleared range should have HFB=2", g)
		}
		if !inClear && g.HFB != 1 {
			t.Errorf("glyph %+v outside cleared range should keep HFB=1", g)
		}
	}
}
