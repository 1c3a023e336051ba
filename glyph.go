package tui

// Glyph describes one displayed cell-run produced by scanning a Row's
// span log. It is the normalisation intermediate: Page.Normalize builds a
// sequence of these for each row, then re-serialises them back into a
// canonical span log.
type Glyph struct {
	X     int // display column
	SX    int // visible width in cells, after any clipping
	Shift int // cells trimmed from the glyph's left edge
	HFB   HFB
	Off   int // byte offset of the glyph's text in its owning Row.data
	Len   int // byte length of the glyph's text; 0 marks a padding cell
	Wid   int // natural (unclipped) width of the glyph
}

func (g Glyph) padding() bool {
	return g.Len == 0
}

// fullWidth reports whether g shows its entire natural glyph with no
// clipping on either edge: only such glyphs may continue a coalesced run.
func (g Glyph) fullWidth() bool {
	return !g.padding() && g.Wid+g.Shift == g.SX
}

// glyphQueue is a front-consuming cursor over a glyph slice that supports
// un-consuming the most recently read item once, mirroring the single
// pending-item reuse that copyGlyphRange needs at a splice boundary.
type glyphQueue struct {
	items []Glyph
	i     int
}

func newGlyphQueue(items []Glyph) *glyphQueue {
	return &glyphQueue{items: items}
}

func (q *glyphQueue) next() Glyph {
	g := q.items[q.i]
	q.i++
	return g
}

func (q *glyphQueue) pushBack() {
	q.i--
}

// copyGlyphRange splices the background range [x0, x1) out of from's front
// and appends it to *to, trimming the first and last glyphs it touches.
// A glyph partially consumed at x1 is pushed back onto from so a later
// call can still consume its remainder.
func copyGlyphRange(x0, x1 int, from *glyphQueue, to *[]Glyph) {
	x := x0
	for x < x1 {
		g := from.next()
		if g.X+g.SX <= x {
			// Entirely behind the fill position: a prior range already
			// consumed or superseded it.
			continue
		}
		if g.X < x {
			adj := x - g.X
			g.X += adj
			g.SX -= adj
			if !g.padding() {
				g.Shift += adj
			}
		}
		if g.X+g.SX > x1 {
			g.SX = x1 - g.X
			from.pushBack()
		}
		x = g.X + g.SX
		if g.SX > 0 {
			*to = append(*to, g)
		}
	}
}

func sentinelGlyph(sx int) Glyph {
	return Glyph{X: 0, SX: sx, Shift: 0, HFB: HFBUnknown, Off: 0, Len: 0, Wid: 0}
}
