package tui

// Pos is a (row, column) location within a Region's own coordinate space.
type Pos struct {
	Y, X int
}

// Field lays text out across the region row by row, wrapping at the
// region's width, clipping to its height. When shift > 0, a "<" marker is
// written at (0,0) in ovHfb and whole glyphs are consumed from the front of
// text until their cumulative natural width reaches shift, so a field can
// be horizontally scrolled without re-slicing its source string.
//
// If cursor is >= 0, Field reports the on-screen position of the
// cursor-th glyph of text (0-based from the start of text, so glyphs
// consumed by shift are counted; embedded attribute markers are not), or
// the position just after the last drawn glyph of a row when cursor equals
// the number of glyphs placed so far. Any cell not covered by text is
// painted with bgHfb. If text has glyphs left over once the region is
// full, the region's final cell is overwritten with a ">" marker in ovHfb.
//
// When more than one layout candidate could report the cursor position
// (the end of one row and the start of the next share a glyph index), the
// latest-computed candidate wins: callers scanning left-to-right, top to
// bottom get the rightmost, bottommost match.
func (rg Region) Field(shift, cursor int, hfb, bgHfb, ovHfb HFB, text string) (Pos, bool) {
	rows := rg.cy1 - rg.cy0
	cols := rg.cx1 - rg.cx0
	if rows <= 0 || cols <= 0 {
		return Pos{}, false
	}

	toks := scanText([]byte(text), rg.page.measure)

	ti := 0
	glyphIdx := 0
	curHFB := hfb
	startCol := 0
	if shift > 0 {
		rg.Write(0, 0, ovHfb, "<")
		startCol = 1
		consumed := 0
		for ti < len(toks) && consumed < shift {
			if toks[ti].isAttr {
				curHFB = toks[ti].hfb
				ti++
				continue
			}
			consumed += toks[ti].wid
			ti++
			glyphIdx++
		}
	}

	var cursorPos Pos
	cursorFound := false
	markCursor := func(y, x int) {
		if cursor == glyphIdx {
			cursorPos = Pos{Y: y, X: x}
			cursorFound = true
		}
	}

	for row := 0; row < rows; row++ {
		x := 0
		if row == 0 {
			x = startCol
		}
		rowCols := cols
		lastRow := row == rows-1
		reserve := lastRow && overflowsRemaining(toks, ti, cols-x)
		if reserve {
			rowCols--
		}
		for x < rowCols && ti < len(toks) {
			t := toks[ti]
			if t.isAttr {
				curHFB = t.hfb
				ti++
				continue
			}
			if t.wid > rowCols-x {
				break
			}
			markCursor(row, x)
			rg.Write(row, x, curHFB, text[t.off:t.off+t.size])
			x += t.wid
			glyphIdx++
			ti++
		}
		markCursor(row, x)
		if x < cols {
			rg.SubRegion(row, x, 1, cols-x).Clear(bgHfb)
		}
		if reserve && ti < len(toks) {
			rg.Write(row, cols-1, ovHfb, ">")
		}
	}

	return cursorPos, cursorFound
}

// overflowsRemaining reports whether toks[from:] still has glyphs left
// after consuming at most budget cells.
func overflowsRemaining(toks []textTok, from, budget int) bool {
	used := 0
	for _, t := range toks[from:] {
		if t.isAttr {
			continue
		}
		used += t.wid
		if used > budget {
			return true
		}
	}
	return false
}
