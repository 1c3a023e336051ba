package tui

import "unicode/utf8"

// Region is a clipped view onto a Page: draws are expressed in the
// region's own coordinate space (oy, ox is the region's origin on the
// page) and clamped to [cy0, cy1) x [cx0, cx1).
type Region struct {
	page           *Page
	oy, ox         int
	cy0, cx0       int
	cy1, cx1       int
}

// SubRegion narrows the region further to [y, y+sy) x [x, x+sx), measured
// in the region's own coordinates, clipped to the region's existing
// bounds.
func (rg Region) SubRegion(y, x, sy, sx int) Region {
	oy, ox := rg.oy+y, rg.ox+x
	cy0, cx0 := oy, ox
	cy1, cx1 := oy+sy, ox+sx
	if cy0 < rg.cy0 {
		cy0 = rg.cy0
	}
	if cx0 < rg.cx0 {
		cx0 = rg.cx0
	}
	if cy1 > rg.cy1 {
		cy1 = rg.cy1
	}
	if cx1 > rg.cx1 {
		cx1 = rg.cx1
	}
	return Region{page: rg.page, oy: oy, ox: ox, cy0: cy0, cx0: cx0, cy1: cy1, cx1: cx1}
}

// Clear paints every cell in the region with a space in hfb.
func (rg Region) Clear(hfb HFB) {
	for py := rg.cy0; py < rg.cy1; py++ {
		row := rg.page.rows[py]
		sx := rg.cx1 - rg.cx0
		if rg.cx0 == 0 && rg.cx1 == rg.page.sx {
			row.replaceAll()
			row.appendAdjacent(0, sx, hfb, spacesUTF8(sx))
			continue
		}
		row.appendSpan(rg.cx0, 0, sx, hfb, spacesUTF8(sx))
	}
}

// textTok is one decoded element of a write/field source string: either a
// measured glyph or an embedded attribute-change marker.
type textTok struct {
	isAttr bool
	hfb    HFB
	wid    int
	off    int
	size   int
}

func scanText(text []byte, measure Measure) []textTok {
	var toks []textTok
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		if attr, ok := decodeAttrRune(r); ok {
			toks = append(toks, textTok{isAttr: true, hfb: attr, off: i, size: size})
		} else {
			toks = append(toks, textTok{wid: measure(r), off: i, size: size})
		}
		i += size
	}
	return toks
}

func measureRestTok(toks []textTok, from int) int {
	w := 0
	for _, t := range toks[from:] {
		if !t.isAttr {
			w += t.wid
		}
	}
	return w
}

// Write draws text at (y, x) in the region's coordinate space, painted
// with hfb until an embedded attribute marker changes it. It returns the
// x-coordinate, in the region's coordinate space, that follows the last
// glyph of text, measured at full natural width regardless of clipping:
// callers use it to lay out the next field without needing to know how
// much of this one was actually visible.
func (rg Region) Write(y, x int, hfb HFB, text string) int {
	raw := []byte(text)
	toks := scanText(raw, rg.page.measure)
	total := x + measureRestTok(toks, 0)

	py := y + rg.oy
	px := x + rg.ox
	if py < rg.cy0 || py >= rg.cy1 {
		return total
	}

	i := 0
	for i < len(toks) && px < rg.cx0 {
		t := toks[i]
		if t.isAttr {
			hfb = t.hfb
			i++
			continue
		}
		if px+t.wid > rg.cx0 {
			break
		}
		px += t.wid
		i++
	}
	if px >= rg.cx1 {
		return total
	}

	x0 := px
	shift := 0
	if x0 < rg.cx0 {
		shift = rg.cx0 - x0
		x0 = rg.cx0
	}

	startIdx := i
	// curX tracks natural positions: a left-straddling first glyph starts
	// at px, shift cells before x0, and only its visible part counts.
	curX := px
	for i < len(toks) {
		t := toks[i]
		if t.isAttr {
			i++
			continue
		}
		if curX+t.wid > rg.cx1 {
			i++
			curX = rg.cx1
			break
		}
		curX += t.wid
		i++
	}
	if curX < x0 {
		curX = x0
	}

	payloadStart := len(raw)
	if startIdx < len(toks) {
		payloadStart = toks[startIdx].off
	}
	payloadEnd := payloadStart
	if i > 0 && i <= len(toks) {
		last := toks[i-1]
		payloadEnd = last.off + last.size
	}

	row := rg.page.rows[py]
	row.appendSpan(x0, shift, curX-x0, hfb, raw[payloadStart:payloadEnd])
	return total
}
