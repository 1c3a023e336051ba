package tui

// KeyKind classifies a decoded Key.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyFunction
	// KeyCheck is a synthetic key the Controller's idle timer injects when
	// no real input has arrived recently, giving callers a chance to poll
	// for external state changes without spawning their own timer.
	KeyCheck
)

// KeyMod is a bitmask of modifier keys recognised in a CSI parameter.
type KeyMod int

const (
	ModShift KeyMod = 1 << iota
	ModAlt
	ModCtrl
)

// Key is one decoded keystroke.
type Key struct {
	Kind KeyKind
	Rune rune // valid when Kind == KeyRune
	Fn   int  // function key number, valid when Kind == KeyFunction
	Mods KeyMod
}

// KeyDecoder turns raw input bytes into Keys. Decode consumes a prefix of
// buf and reports how many bytes it used. If buf is an incomplete prefix
// of a longer sequence (most commonly a bare ESC that might start a CSI
// sequence, or might be a standalone Escape key), Decode returns ok=false
// and consumed=0 unless force is set, in which case it must commit to its
// best interpretation of buf as-is.
type KeyDecoder interface {
	Decode(buf []byte, force bool) (consumed int, key Key, ok bool)
}

// DefaultKeyDecoder recognises plain UTF-8 runes, common C0 controls, and
// the CSI/SS3 cursor-key and function-key sequences emitted by
// xterm-compatible terminals.
type DefaultKeyDecoder struct{}

func (DefaultKeyDecoder) Decode(buf []byte, force bool) (int, Key, bool) {
	if len(buf) == 0 {
		return 0, Key{}, false
	}
	b0 := buf[0]

	if b0 == 0x1B {
		if len(buf) == 1 {
			if force {
				return 1, Key{Kind: KeyEscape}, true
			}
			return 0, Key{}, false
		}
		switch buf[1] {
		case '[':
			return decodeCSI(buf, force)
		case 'O':
			return decodeSS3(buf, force)
		default:
			// Alt+key: ESC followed by a plain rune.
			n, k, ok := DefaultKeyDecoder{}.Decode(buf[1:], force)
			if !ok {
				if force {
					return 1, Key{Kind: KeyEscape}, true
				}
				return 0, Key{}, false
			}
			k.Mods |= ModAlt
			return 1 + n, k, true
		}
	}

	switch b0 {
	case '\r', '\n':
		return 1, Key{Kind: KeyEnter}, true
	case '\t':
		return 1, Key{Kind: KeyTab}, true
	case 0x7F, 0x08:
		return 1, Key{Kind: KeyBackspace}, true
	}

	r, size := decodeRuneOrByte(buf)
	return size, Key{Kind: KeyRune, Rune: r}, true
}

func decodeRuneOrByte(buf []byte) (rune, int) {
	r, size := decodeUTF8(buf)
	if size == 0 {
		return rune(buf[0]), 1
	}
	return r, size
}

// decodeCSI parses buf[2:] up to its final byte (0x40-0x7E). Returns
// ok=false, consumed=0 if the sequence is incomplete and force is unset.
func decodeCSI(buf []byte, force bool) (int, Key, bool) {
	i := 2
	for i < len(buf) && (buf[i] < 0x40 || buf[i] > 0x7E) {
		i++
	}
	if i >= len(buf) {
		if force {
			return len(buf), Key{Kind: KeyEscape}, true
		}
		return 0, Key{}, false
	}
	final := buf[i]
	params := string(buf[2:i])
	consumed := i + 1

	switch final {
	case 'A':
		return consumed, Key{Kind: KeyUp, Mods: csiMods(params)}, true
	case 'B':
		return consumed, Key{Kind: KeyDown, Mods: csiMods(params)}, true
	case 'C':
		return consumed, Key{Kind: KeyRight, Mods: csiMods(params)}, true
	case 'D':
		return consumed, Key{Kind: KeyLeft, Mods: csiMods(params)}, true
	case 'H':
		return consumed, Key{Kind: KeyHome}, true
	case 'F':
		return consumed, Key{Kind: KeyEnd}, true
	case '~':
		switch params {
		case "1", "7":
			return consumed, Key{Kind: KeyHome}, true
		case "4", "8":
			return consumed, Key{Kind: KeyEnd}, true
		case "5":
			return consumed, Key{Kind: KeyPageUp}, true
		case "6":
			return consumed, Key{Kind: KeyPageDown}, true
		case "15":
			return consumed, Key{Kind: KeyFunction, Fn: 5}, true
		case "17":
			return consumed, Key{Kind: KeyFunction, Fn: 6}, true
		case "18":
			return consumed, Key{Kind: KeyFunction, Fn: 7}, true
		case "19":
			return consumed, Key{Kind: KeyFunction, Fn: 8}, true
		case "20":
			return consumed, Key{Kind: KeyFunction, Fn: 9}, true
		case "21":
			return consumed, Key{Kind: KeyFunction, Fn: 10}, true
		case "23":
			return consumed, Key{Kind: KeyFunction, Fn: 11}, true
		case "24":
			return consumed, Key{Kind: KeyFunction, Fn: 12}, true
		}
	}
	// Unrecognised CSI sequence: consume and surface nothing actionable.
	return consumed, Key{}, true
}

func decodeSS3(buf []byte, force bool) (int, Key, bool) {
	if len(buf) < 3 {
		if force {
			return len(buf), Key{Kind: KeyEscape}, true
		}
		return 0, Key{}, false
	}
	switch buf[2] {
	case 'A':
		return 3, Key{Kind: KeyUp}, true
	case 'B':
		return 3, Key{Kind: KeyDown}, true
	case 'C':
		return 3, Key{Kind: KeyRight}, true
	case 'D':
		return 3, Key{Kind: KeyLeft}, true
	case 'H':
		return 3, Key{Kind: KeyHome}, true
	case 'F':
		return 3, Key{Kind: KeyEnd}, true
	case 'P', 'Q', 'R', 'S':
		return 3, Key{Kind: KeyFunction, Fn: int(buf[2]-'P') + 1}, true
	}
	return 3, Key{}, true
}

// csiMods decodes the ";<n>" modifier parameter xterm appends to cursor
// keys (e.g. "1;5A" for Ctrl+Up).
func csiMods(params string) KeyMod {
	i := 0
	for i < len(params) && params[i] != ';' {
		i++
	}
	if i >= len(params)-1 {
		return 0
	}
	n := 0
	for _, c := range params[i+1:] {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if n <= 1 {
		return 0
	}
	code := n - 1
	var mods KeyMod
	if code&1 != 0 {
		mods |= ModShift
	}
	if code&2 != 0 {
		mods |= ModAlt
	}
	if code&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}

func decodeUTF8(buf []byte) (rune, int) {
	b0 := buf[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}
	var n int
	var r rune
	switch {
	case b0&0xE0 == 0xC0:
		n, r = 2, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		n, r = 3, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		n, r = 4, rune(b0&0x07)
	default:
		return 0, 0
	}
	if len(buf) < n {
		return 0, 0
	}
	for i := 1; i < n; i++ {
		if buf[i]&0xC0 != 0x80 {
			return 0, 0
		}
		r = r<<6 | rune(buf[i]&0x3F)
	}
	return r, n
}
