package tui

import "testing"

func decodeAll(t *testing.T, d KeyDecoder, buf []byte, force bool) (int, Key, bool) {
	t.Helper()
	return d.Decode(buf, force)
}

func TestDecodePlainRune(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, k, ok := decodeAll(t, d, []byte("a"), false)
	if !ok || n != 1 || k.Kind != KeyRune || k.Rune != 'a' {
		t.Errorf("Decode('a') = (%d, %+v, %v), want (1, KeyRune 'a', true)", n, k, ok)
	}
}

func TestDecodeMultiByteRune(t *testing.T) {
	d := DefaultKeyDecoder{}
	buf := []byte("中x")
	n, k, ok := decodeAll(t, d, buf, false)
	if !ok || n != 3 || k.Kind != KeyRune || k.Rune != '中' {
		t.Errorf("Decode(中) = (%d, %+v, %v), want (3, KeyRune 中, true)", n, k, ok)
	}
}

func TestDecodeLoneEscapeWithoutForceIsIncomplete(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, _, ok := decodeAll(t, d, []byte{0x1B}, false)
	if ok || n != 0 {
		t.Errorf("Decode(ESC, force=false) = (%d, _, %v), want (0, _, false)", n, ok)
	}
}

func TestDecodeLoneEscapeWithForceResolvesToEscapeKey(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, k, ok := decodeAll(t, d, []byte{0x1B}, true)
	if !ok || n != 1 || k.Kind != KeyEscape {
		t.Errorf("Decode(ESC, force=true) = (%d, %+v, %v), want (1, KeyEscape, true)", n, k, ok)
	}
}

func TestDecodeCSIArrowKeys(t *testing.T) {
	d := DefaultKeyDecoder{}
	cases := []struct {
		seq  string
		kind KeyKind
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
		{"\x1b[H", KeyHome},
		{"\x1b[F", KeyEnd},
	}
	for _, c := range cases {
		n, k, ok := decodeAll(t, d, []byte(c.seq), false)
		if !ok || n != len(c.seq) || k.Kind != c.kind {
			t.Errorf("Decode(%q) = (%d, %+v, %v), want (%d, Kind=%v, true)", c.seq, n, k, ok, len(c.seq), c.kind)
		}
	}
}

func TestDecodeCSIWithModifier(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, k, ok := decodeAll(t, d, []byte("\x1b[1;5A"), false) // Ctrl+Up
	if !ok || n != 6 || k.Kind != KeyUp {
		t.Fatalf("Decode(Ctrl+Up) = (%d, %+v, %v)", n, k, ok)
	}
	if k.Mods&ModCtrl == 0 {
		t.Errorf("modifier byte 5 should set ModCtrl, got Mods=%b", k.Mods)
	}
}

func TestDecodeCSITildeSequences(t *testing.T) {
	d := DefaultKeyDecoder{}
	cases := []struct {
		seq  string
		kind KeyKind
	}{
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
		{"\x1b[1~", KeyHome},
		{"\x1b[4~", KeyEnd},
	}
	for _, c := range cases {
		n, k, ok := decodeAll(t, d, []byte(c.seq), false)
		if !ok || n != len(c.seq) || k.Kind != c.kind {
			t.Errorf("Decode(%q) = (%d, %+v, %v), want Kind=%v", c.seq, n, k, ok, c.kind)
		}
	}
}

func TestDecodeCSIIncompleteWithoutFinalByte(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, _, ok := decodeAll(t, d, []byte("\x1b[1;5"), false)
	if ok || n != 0 {
		t.Errorf("Decode(incomplete CSI) = (%d, _, %v), want (0, _, false)", n, ok)
	}
}

func TestDecodeSS3CursorKeys(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, k, ok := decodeAll(t, d, []byte("\x1bOA"), false)
	if !ok || n != 3 || k.Kind != KeyUp {
		t.Errorf("Decode(SS3 Up) = (%d, %+v, %v), want (3, KeyUp, true)", n, k, ok)
	}
}

func TestDecodeAltRuneSetsModAlt(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, k, ok := decodeAll(t, d, []byte("\x1ba"), false)
	if !ok || n != 2 || k.Kind != KeyRune || k.Rune != 'a' || k.Mods&ModAlt == 0 {
		t.Errorf("Decode(Alt+a) = (%d, %+v, %v), want (2, KeyRune 'a' Mods=ModAlt, true)", n, k, ok)
	}
}

func TestDecodeEnterTabBackspace(t *testing.T) {
	d := DefaultKeyDecoder{}
	cases := []struct {
		b    byte
		kind KeyKind
	}{
		{'\r', KeyEnter},
		{'\t', KeyTab},
		{0x7F, KeyBackspace},
	}
	for _, c := range cases {
		n, k, ok := decodeAll(t, d, []byte{c.b}, false)
		if !ok || n != 1 || k.Kind != c.kind {
			t.Errorf("Decode(%#x) = (%d, %+v, %v), want Kind=%v", c.b, n, k, ok, c.kind)
		}
	}
}

func TestDecodeEmptyBufferIsIncomplete(t *testing.T) {
	d := DefaultKeyDecoder{}
	n, _, ok := decodeAll(t, d, nil, true)
	if ok || n != 0 {
		t.Errorf("Decode(nil) = (%d, _, %v), want (0, _, false) even with force", n, ok)
	}
}
