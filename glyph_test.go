package tui

import "testing"

func TestCopyGlyphRangeWholeGlyphs(t *testing.T) {
	items := []Glyph{
		{X: 0, SX: 2, Wid: 2, HFB: 1},
		{X: 2, SX: 3, Wid: 3, HFB: 2},
	}
	q := newGlyphQueue(items)
	var out []Glyph
	copyGlyphRange(0, 5, q, &out)
	if len(out) != 2 {
		t.Fatalf("got %d glyphs, want 2: %+v", len(out), out)
	}
	if out[0] != items[0] || out[1] != items[1] {
		t.Errorf("out = %+v, want unchanged %+v", out, items)
	}
}

func TestCopyGlyphRangeTrimsLeadingEdge(t *testing.T) {
	items := []Glyph{{X: 0, SX: 5, Wid: 5, HFB: 1, Len: 1}}
	q := newGlyphQueue(items)
	var out []Glyph
	copyGlyphRange(2, 5, q, &out)
	if len(out) != 1 {
		t.Fatalf("got %d glyphs, want 1: %+v", len(out), out)
	}
	g := out[0]
	if g.X != 2 || g.SX != 3 || g.Shift != 2 {
		t.Errorf("trimmed glyph = %+v, want X=2 SX=3 Shift=2", g)
	}
}

func TestCopyGlyphRangeTrimsTrailingEdgeAndPushesBack(t *testing.T) {
	items := []Glyph{
		{X: 0, SX: 5, Wid: 5, HFB: 1},
		{X: 5, SX: 1, Wid: 1, HFB: 2},
	}
	q := newGlyphQueue(items)
	var out []Glyph
	copyGlyphRange(0, 3, q, &out)
	if len(out) != 1 || out[0].X != 0 || out[0].SX != 3 {
		t.Fatalf("first call out = %+v", out)
	}
	copyGlyphRange(3, 6, q, &out)
	if len(out) != 3 {
		t.Fatalf("got %d glyphs after second call, want 3: %+v", len(out), out)
	}
	if out[1].X != 3 || out[1].SX != 2 {
		t.Errorf("pushed-back remainder = %+v, want X=3 SX=2", out[1])
	}
	if out[2].X != 5 || out[2].SX != 1 {
		t.Errorf("trailing glyph = %+v, want X=5 SX=1", out[2])
	}
}

func TestCopyGlyphRangeSkipsFullyConsumedGlyph(t *testing.T) {
	items := []Glyph{
		{X: 0, SX: 1, Wid: 1, HFB: 1},
		{X: 1, SX: 1, Wid: 1, HFB: 1},
		{X: 2, SX: 1, Wid: 1, HFB: 1},
	}
	q := newGlyphQueue(items)
	var out []Glyph
	copyGlyphRange(0, 2, q, &out) // consumes X=0,1
	copyGlyphRange(2, 3, q, &out)
	if len(out) != 3 {
		t.Fatalf("got %d glyphs, want 3: %+v", len(out), out)
	}
	if out[2].X != 2 {
		t.Errorf("out[2] = %+v, want X=2", out[2])
	}
}
