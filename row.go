package tui

import (
	"fmt"
	"unicode/utf8"
)

// Row opcodes. Each header is followed immediately by the span's payload:
// an optional attribute-change marker (see hfb.go) and then raw UTF-8
// text. x, when present, is an explicit column; when absent it is taken
// to be the position immediately following the previous span.
const (
	opSX        byte = 0xFC // sx
	opShiftSX   byte = 0xFD // shift, sx
	opXSX       byte = 0xFE // x, sx
	opShiftXSX  byte = 0xFF // shift, x, sx
)

// Row is one line of a Page: an append-only log of span records. A fresh
// Row, or one just produced by Normalize, is "normal": its log is a single
// left-to-right pass with no backward jumps, covering [0, sx) exactly once.
type Row struct {
	normal bool
	pos    int
	data   []byte
}

func newRow(sx int, hfb HFB) *Row {
	r := &Row{normal: true}
	r.appendAdjacent(0, sx, hfb, spacesUTF8(sx))
	return r
}

func spacesUTF8(n int) []byte {
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return b
}

// replaceAll discards the row's log and resets it to the empty, normal
// state, ready for a single full-width append.
func (r *Row) replaceAll() {
	r.data = r.data[:0]
	r.pos = 0
	r.normal = true
}

func (r *Row) appendAdjacent(shift, sx int, hfb HFB, payload []byte) {
	if shift == 0 {
		r.data = append(r.data, opSX)
		r.data = appendVarint(r.data, sx)
	} else {
		r.data = append(r.data, opShiftSX)
		r.data = appendVarint(r.data, shift)
		r.data = appendVarint(r.data, sx)
	}
	r.data = appendAttrRune(r.data, hfb)
	r.data = append(r.data, payload...)
	r.pos += sx
}

func (r *Row) appendAt(x, shift, sx int, hfb HFB, payload []byte) {
	if x != r.pos {
		r.normal = false
	}
	if shift == 0 {
		r.data = append(r.data, opXSX)
		r.data = appendVarint(r.data, x)
		r.data = appendVarint(r.data, sx)
	} else {
		r.data = append(r.data, opShiftXSX)
		r.data = appendVarint(r.data, shift)
		r.data = appendVarint(r.data, x)
		r.data = appendVarint(r.data, sx)
	}
	r.data = appendAttrRune(r.data, hfb)
	r.data = append(r.data, payload...)
	r.pos = x + sx
}

// appendSpan appends a span at x, choosing the implicit-x form when x
// continues directly from the row's current write position.
func (r *Row) appendSpan(x, shift, sx int, hfb HFB, payload []byte) {
	if x == r.pos {
		r.appendAdjacent(shift, sx, hfb, payload)
		return
	}
	r.appendAt(x, shift, sx, hfb, payload)
}

func appendAttrRune(buf []byte, hfb HFB) []byte {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], encodeAttrRune(hfb))
	return append(buf, tmp[:n]...)
}

// glyphScan decodes a row's span log into a flat, x-ordered sequence of
// glyphs, resolving embedded attribute markers and clipping each
// character's visible width against its span's declared extent.
func glyphScan(data []byte, measure Measure) []Glyph {
	var out []Glyph
	pos := 0
	i := 0
	hfb := HFBUnknown
	for i < len(data) {
		op := data[i]
		i++
		var x, shift, sx int
		explicitX := false
		switch op {
		case opSX:
			sx, i = readVarint(data, i)
		case opShiftSX:
			shift, i = readVarint(data, i)
			sx, i = readVarint(data, i)
		case opXSX:
			x, i = readVarint(data, i)
			explicitX = true
			sx, i = readVarint(data, i)
		case opShiftXSX:
			shift, i = readVarint(data, i)
			x, i = readVarint(data, i)
			explicitX = true
			sx, i = readVarint(data, i)
		default:
			panic(fmt.Sprintf("tui: corrupt row log: unexpected opcode 0x%02X", op))
		}
		if !explicitX {
			x = pos
		}
		xEnd := x + sx
		pos = xEnd
		curX := x
		curShift := shift
		for i < len(data) && data[i] < opSX {
			r, size := utf8.DecodeRune(data[i:])
			if attr, ok := decodeAttrRune(r); ok {
				hfb = attr
				i += size
				continue
			}
			wid := measure(r)
			if curX < xEnd {
				visible := wid - curShift
				if curX+visible > xEnd {
					visible = xEnd - curX
				}
				if visible < 0 {
					visible = 0
				}
				out = append(out, Glyph{X: curX, SX: visible, Shift: curShift, HFB: hfb, Off: i, Len: size, Wid: wid})
				curX += visible
			}
			curShift = 0
			i += size
		}
		if curX < xEnd {
			out = append(out, Glyph{X: curX, SX: xEnd - curX, Shift: 0, HFB: hfb, Off: 0, Len: 0, Wid: 0})
		}
	}
	return out
}

// normalizeRow rebuilds row's log as a single left-to-right pass covering
// [0, sx), resolving any backward jumps against the supplied background
// (the row's own prior state) and re-coalescing runs of unclipped glyphs
// into minimal span records.
func normalizeRow(row *Row, sx int, measure Measure) {
	if row.normal {
		return
	}
	glyphs := glyphScan(row.data, measure)

	bg := newGlyphQueue([]Glyph{sentinelGlyph(sx)})
	bgIsPooled := false
	out := getGlyphSlice()
	x := 0
	for _, g := range glyphs {
		if g.X >= sx {
			break
		}
		if x > g.X {
			copyGlyphRange(x, sx, bg, &out)
			if bgIsPooled {
				putGlyphSlice(bg.items)
			}
			bg = newGlyphQueue(out)
			bgIsPooled = true
			out = getGlyphSlice()
			x = 0
		}
		if x < g.X {
			copyGlyphRange(x, g.X, bg, &out)
		}
		out = append(out, g)
		x = g.X + g.SX
	}
	copyGlyphRange(x, sx, bg, &out)

	row.data = serializeGlyphs(out, row.data)
	row.pos = sx
	row.normal = true

	putGlyphSlice(out)
	if bgIsPooled {
		putGlyphSlice(bg.items)
	}
}

// serializeGlyphs re-encodes a normalized glyph sequence as a canonical
// span log, coalescing consecutive full-width glyphs into one span and
// isolating padding and shifted glyphs into spans of their own.
func serializeGlyphs(glyphs []Glyph, src []byte) []byte {
	var buf []byte
	pos := 0
	lastHFB := HFBUnknown
	flush := func(run []Glyph) {
		first := run[0]
		sx := 0
		for _, g := range run {
			sx += g.SX
		}
		if first.X != pos {
			if first.Shift == 0 {
				buf = append(buf, opXSX)
				buf = appendVarint(buf, first.X)
				buf = appendVarint(buf, sx)
			} else {
				buf = append(buf, opShiftXSX)
				buf = appendVarint(buf, first.Shift)
				buf = appendVarint(buf, first.X)
				buf = appendVarint(buf, sx)
			}
		} else if first.Shift == 0 {
			buf = append(buf, opSX)
			buf = appendVarint(buf, sx)
		} else {
			buf = append(buf, opShiftSX)
			buf = appendVarint(buf, first.Shift)
			buf = appendVarint(buf, sx)
		}
		for _, g := range run {
			if g.HFB != lastHFB {
				buf = appendAttrRune(buf, g.HFB)
				lastHFB = g.HFB
			}
			if g.padding() {
				buf = append(buf, spacesUTF8(g.SX)...)
			} else {
				buf = append(buf, src[g.Off:g.Off+g.Len]...)
			}
		}
		pos = first.X + sx
	}

	i := 0
	for i < len(glyphs) {
		g := glyphs[i]
		if g.padding() || g.Shift != 0 || !g.fullWidth() {
			flush(glyphs[i : i+1])
			i++
			continue
		}
		j := i + 1
		for j < len(glyphs) {
			h := glyphs[j]
			if h.padding() || h.Shift != 0 || !glyphs[j-1].fullWidth() {
				break
			}
			j++
		}
		flush(glyphs[i:j])
		i = j
	}
	return buf
}

// Change describes one minimal update produced by diffing two normalized
// rows: the cells [X, X+SX) should be redrawn with HFB using Text.
type Change struct {
	X, SX, Shift int
	HFB          HFB
	Text         string
}

// rowDifference emits the minimal set of changes needed to turn old into
// new's rendering, scanning both logs in parallel. Both rows must already
// be normalized.
func rowDifference(old, new *Row, sx int, measure Measure, emit func(Change)) {
	oldGlyphs := glyphScan(old.data, measure)
	newGlyphs := glyphScan(new.data, measure)
	oi, ni := 0, 0
	for oi < len(oldGlyphs) || ni < len(newGlyphs) {
		ogx, ngx := sx, sx
		var og, ng Glyph
		if oi < len(oldGlyphs) {
			og = oldGlyphs[oi]
			ogx = og.X
		}
		if ni < len(newGlyphs) {
			ng = newGlyphs[ni]
			ngx = ng.X
		}
		if ogx == ngx && oi < len(oldGlyphs) && ni < len(newGlyphs) && glyphsEqual(og, ng, old.data, new.data) {
			oi++
			ni++
			continue
		}
		if ngx > ogx {
			oi++
			continue
		}
		emit(changeFromGlyph(ng, new.data))
		ni++
	}
}

func glyphsEqual(a, b Glyph, dataA, dataB []byte) bool {
	if a.SX != b.SX || a.Shift != b.Shift || a.HFB != b.HFB || a.Len != b.Len {
		return false
	}
	if a.Len == 0 {
		return true
	}
	return string(dataA[a.Off:a.Off+a.Len]) == string(dataB[b.Off:b.Off+b.Len])
}

func changeFromGlyph(g Glyph, data []byte) Change {
	text := ""
	if g.Len != 0 {
		text = string(data[g.Off : g.Off+g.Len])
	} else if g.SX > 0 {
		text = string(spacesUTF8(g.SX))
	}
	return Change{X: g.X, SX: g.SX, Shift: g.Shift, HFB: g.HFB, Text: text}
}
