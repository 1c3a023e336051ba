package tui

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// Features describes the capabilities of the attached terminal that the
// output encoder should assume. Detection from $TERM/terminfo is left to
// callers; OutputBuffer only consults the flags it is given.
type Features struct {
	Colour256 bool
}

// CursorShape selects the terminal cursor's rendered shape and blink
// state, via DECSCUSR.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorBlockBlink
	CursorBlock
	CursorUnderlineBlink
	CursorUnderline
	CursorBarBlink
	CursorBar
)

// OutputBuffer accumulates the bytes of an update as plain ANSI/VT escape
// sequences, with an explicit commit boundary: bytes before flushTo are
// committed and ready for the OS write path, bytes after are still being
// built by the current draw pass.
type OutputBuffer struct {
	buf      []byte
	flushTo  int
	sy, sx   int
	features Features

	// newCleanup holds the escape sequence that restores terminal state
	// (cursor, screen mode) on shutdown or pause, set by SaveCleanup and
	// swapped into the Controller's active cleanup string on its next
	// Flush, which also replays it from a panic handler.
	newCleanup []byte
}

// NewOutputBuffer constructs an empty buffer sized for sy rows by sx
// columns.
func NewOutputBuffer(sy, sx int, features Features) *OutputBuffer {
	return &OutputBuffer{sy: sy, sx: sx, features: features}
}

func (o *OutputBuffer) SetSize(sy, sx int) {
	o.sy, o.sx = sy, sx
}

// Bytes appends raw bytes verbatim.
func (o *OutputBuffer) Bytes(b []byte) { o.buf = append(o.buf, b...) }

// Byt appends a single raw byte.
func (o *OutputBuffer) Byt(b byte) { o.buf = append(o.buf, b) }

// Asc appends an ASCII string verbatim.
func (o *OutputBuffer) Asc(s string) { o.buf = append(o.buf, s...) }

// Esc starts a plain (non-CSI) escape sequence: ESC followed by final.
func (o *OutputBuffer) Esc(final byte) {
	o.buf = append(o.buf, 0x1B, final)
}

// CSI starts a Control Sequence Introducer: ESC [.
func (o *OutputBuffer) CSI() {
	o.buf = append(o.buf, 0x1B, '[')
}

// Num appends a CSI numeric parameter, clamped to the 0..=999 range CSI
// parameters are conventionally given in.
func (o *OutputBuffer) Num(n int) {
	if n < 0 {
		n = 0
	}
	if n > 999 {
		n = 999
	}
	o.buf = strconv.AppendInt(o.buf, int64(n), 10)
}

// At emits a cursor-position sequence for (y, x), both 0-based and taken
// modulo the buffer's configured size so a stale cursor request can never
// address outside the screen.
func (o *OutputBuffer) At(y, x int) {
	if o.sy > 0 {
		y = ((y % o.sy) + o.sy) % o.sy
	}
	if o.sx > 0 {
		x = ((x % o.sx) + o.sx) % o.sx
	}
	o.Asc(ansi.CursorPosition(x+1, y+1))
}

// HFB emits the SGR sequence that selects hfb's attribute. It packs hfb
// into a single compact parameter rather than three separate ones for
// foreground/background/bold, trading portability to unrecognising
// terminals for a shorter escape sequence on every redraw.
func (o *OutputBuffer) HFB(hfb HFB) {
	v := encodeAttrRune(hfb) - attrBase
	o.CSI()
	o.Num(int(v))
	o.Byt('m')
}

// Attr appends a generic SGR attribute sequence: CSI <codes> m, where codes
// is a caller-supplied semicolon-separated parameter list (e.g. "1;31;46").
func (o *OutputBuffer) Attr(codes string) {
	o.CSI()
	o.Asc(codes)
	o.Byt('m')
}

func (o *OutputBuffer) AttrReset() {
	o.CSI()
	o.Asc("0m")
}

func (o *OutputBuffer) FullReset() {
	o.Esc('c')
}

func (o *OutputBuffer) CursorVisible(v bool) {
	o.CSI()
	o.Asc("?25")
	if v {
		o.Byt('h')
	} else {
		o.Byt('l')
	}
}

func (o *OutputBuffer) CursorShape(shape CursorShape) {
	o.CSI()
	o.Num(int(shape))
	o.Asc(" q")
}

func (o *OutputBuffer) EraseEOL() {
	o.Asc(ansi.EraseLineRight)
}

func (o *OutputBuffer) Clear() {
	o.CSI()
	o.Asc("2J")
}

func (o *OutputBuffer) Spaces(n int) {
	o.buf = append(o.buf, spacesUTF8(n)...)
}

// UTF8Mode emits the escape sequence that switches an attached terminal
// into UTF-8 mode, for the few terminals that don't default to it.
func (o *OutputBuffer) UTF8Mode() {
	o.Asc("\x1b%G")
}

func (o *OutputBuffer) ScrollUp(n int) {
	o.CSI()
	o.Num(n)
	o.Byt('S')
}

func (o *OutputBuffer) Bell() { o.Byt(0x07) }

// SaveCleanup atomically moves the buffer's currently accumulated bytes
// into the pending cleanup slot and empties the buffer. The sequence
// should be built up on this OutputBuffer with ordinary append calls (Asc,
// Bytes, CSI, ...) immediately beforehand; Controller.Flush adopts the
// pending slot as the new cleanup string the next time it runs.
func (o *OutputBuffer) SaveCleanup() {
	o.newCleanup = o.buf
	o.buf = nil
	o.flushTo = 0
}

func (o *OutputBuffer) Cleanup() []byte { return o.newCleanup }

// Flush marks everything currently in the buffer as ready to send. It is
// advisory: actual writing is a Controller concern, and bytes appended
// after Flush are not included in DataToFlush until the next call.
func (o *OutputBuffer) Flush() {
	o.flushTo = len(o.buf)
}

// DataToFlush returns the prefix of the buffer marked ready by the most
// recent Flush.
func (o *OutputBuffer) DataToFlush() []byte {
	return o.buf[:o.flushTo]
}

// DrainFlush removes the bytes returned by DataToFlush from the buffer, as
// if they had just been written to the OS, and resets the commit boundary.
func (o *OutputBuffer) DrainFlush() {
	o.buf = append(o.buf[:0], o.buf[o.flushTo:]...)
	o.flushTo = 0
}

// Discard drops all buffered bytes, flushed or not.
func (o *OutputBuffer) Discard() {
	o.buf = o.buf[:0]
	o.flushTo = 0
}
