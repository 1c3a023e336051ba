package tui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measure returns the number of horizontal cell units a codepoint occupies
// on the target display. It is consulted by Row/Region whenever a glyph's
// natural width matters (span coalescing, clipping, field layout).
//
// Codepoints in the attribute-marker range (U+E000..=U+F8FF) are never
// passed to Measure: the scanner intercepts them first.
type Measure func(r rune) int

// DefaultMeasure is the measurement rule used when a Page is built without
// an explicit Measure: every codepoint, including the replacement
// character substituted for invalid UTF-8, is exactly one cell wide. This
// is correct for ordinary monospaced text terminals.
func DefaultMeasure(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	return 1
}

// RuneWidthMeasure uses github.com/mattn/go-runewidth to account for
// double-width CJK glyphs; zero-width combining marks are still given one
// cell. Pass it to NewPageWithMeasure for callers that want real
// variable-width accounting instead of the default one-cell-per-codepoint
// rule.
func RuneWidthMeasure(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		// A combining/zero-width mark still needs one logical cell in
		// this engine's model: every scanned glyph occupies at least
		// one position so span bookkeeping (pos, x) stays monotonic.
		return 1
	}
	return w
}
