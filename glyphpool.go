package tui

import "sync"

// glyphSlicePool recycles the background/output glyph slices normalizeRow
// builds per row, avoiding a fresh allocation on every redraw pass.
var glyphSlicePool = sync.Pool{
	New: func() any { s := make([]Glyph, 0, 64); return &s },
}

func getGlyphSlice() []Glyph {
	p := glyphSlicePool.Get().(*[]Glyph)
	return (*p)[:0]
}

func putGlyphSlice(s []Glyph) {
	s = s[:0]
	glyphSlicePool.Put(&s)
}
