package tui

// CellSX is the fixed width, in terminal columns, of one monospaced cell.
// It is exported so callers sizing Pages against a known terminal width
// don't need to hardcode it.
const CellSX = 1

// Page is a grid of Rows that accumulates clipped draw operations and
// collapses them into a canonical, diffable representation on demand.
type Page struct {
	sy, sx  int
	measure Measure
	rows    []*Row
}

// CellSX reports the fixed horizontal width, in terminal columns, of one
// cell on this Page. It is always CellSX: the page's sx dimension counts
// cells, and any glyph wider than one cell (via a custom Measure) spans
// multiple cells rather than changing the cell's own width.
func (p *Page) CellSX() int { return CellSX }

// NewPage builds a Page of sy rows by sx columns, every cell initialised
// to a space painted with hfb, using the default one-cell-per-codepoint
// Measure.
func NewPage(sy, sx int, hfb HFB) *Page {
	return NewPageWithMeasure(sy, sx, hfb, DefaultMeasure)
}

// NewPageWithMeasure is NewPage with an explicit glyph-width function.
func NewPageWithMeasure(sy, sx int, hfb HFB, measure Measure) *Page {
	p := &Page{sy: sy, sx: sx, measure: measure, rows: make([]*Row, sy)}
	for y := range p.rows {
		p.rows[y] = newRow(sx, hfb)
	}
	return p
}

func (p *Page) Size() (sy, sx int) { return p.sy, p.sx }

// Measure reports the total cell width of s under the page's width rule,
// ignoring embedded attribute markers.
func (p *Page) Measure(s string) int {
	toks := scanText([]byte(s), p.measure)
	return measureRestTok(toks, 0)
}

// Full returns a Region covering the entire page.
func (p *Page) Full() Region {
	return Region{page: p, oy: 0, ox: 0, cy0: 0, cx0: 0, cy1: p.sy, cx1: p.sx}
}

// Region returns a Region covering the sub-rectangle [y, y+sy) x [x, x+sx)
// of the page, clipped to the page's own bounds.
func (p *Page) Region(y, x, sy, sx int) Region {
	cy0, cx0 := y, x
	cy1, cx1 := y+sy, x+sx
	if cy0 < 0 {
		cy0 = 0
	}
	if cx0 < 0 {
		cx0 = 0
	}
	if cy1 > p.sy {
		cy1 = p.sy
	}
	if cx1 > p.sx {
		cx1 = p.sx
	}
	return Region{page: p, oy: y, ox: x, cy0: cy0, cx0: cx0, cy1: cy1, cx1: cx1}
}

// Normalize collapses every row's append log into a single canonical
// left-to-right pass. It is idempotent: normalizing an already-normal
// page is a no-op.
func (p *Page) Normalize() {
	for _, row := range p.rows {
		normalizeRow(row, p.sx, p.measure)
	}
}

// DiffPages normalizes both pages and reports, row by row, the minimal
// set of changes needed to redraw old's previously-displayed content as
// new's content. Both pages must share the same dimensions.
func DiffPages(old, new *Page, emit func(y int, c Change)) {
	old.Normalize()
	new.Normalize()
	for y := 0; y < new.sy; y++ {
		rowDifference(old.rows[y], new.rows[y], new.sx, new.measure, func(c Change) {
			emit(y, c)
		})
	}
}
