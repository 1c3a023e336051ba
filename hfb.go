package tui

// HFB identifies a (highlight, foreground, background) attribute triplet.
// The engine never interprets an HFB value beyond preserving it and
// detecting equality; what it means on the wire is up to the ANSI
// emission helpers a host application builds on top of OutputBuffer.
type HFB uint16

// MaxHFB is the highest valid attribute code. Values 0..=MaxHFB are valid;
// HFBUnknown is reserved as the "unknown / force re-emit" sentinel.
const MaxHFB HFB = 6399

// HFBUnknown forces a re-emit: it never legitimately describes a glyph, so
// diffing against it always produces a change.
const HFBUnknown HFB = 65535

// attrBase and attrTop bound the Private-Use range U+E000..=U+F8FF used to
// encode in-band attribute-change markers. Exactly 6400 codepoints are
// reserved, matching 0..=MaxHFB.
const (
	attrBase rune = 0xE000
	attrTop  rune = 0xF8FF
)

// encodeAttrRune returns the Private-Use codepoint that represents hfb as
// an in-band attribute-change marker.
//
// Clamps toward attrTop with min, not max: a max clamp would pin every
// marker to U+F8FF regardless of hfb, which cannot round-trip more than a
// single value. The chosen behaviour is pinned by TestEncodeAttrRune.
func encodeAttrRune(hfb HFB) rune {
	v := attrBase + rune(hfb)
	if v > attrTop {
		v = attrTop
	}
	return v
}

// decodeAttrRune reports whether r is an attribute-change marker, and if
// so, the HFB it encodes.
func decodeAttrRune(r rune) (HFB, bool) {
	if r < attrBase || r > attrTop {
		return 0, false
	}
	return HFB(r - attrBase), true
}
