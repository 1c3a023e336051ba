package tui

// OSTTY is the narrow contract the Controller needs from the operating
// system: raw-mode entry/exit, size queries, and raw byte I/O against the
// controlling terminal. Tests substitute a fake implementation; the
// default implementation (see ostty_unix_common.go) is a thin wrapper around
// golang.org/x/sys/unix and golang.org/x/term.
type OSTTY interface {
	// IsTerminal reports whether the input file descriptor is connected
	// to a terminal at all.
	IsTerminal() bool

	// Size returns the current terminal dimensions in rows and columns.
	Size() (sy, sx int, err error)

	// EnterRaw puts the terminal into raw mode, returning the escape
	// sequence that should be emitted to restore it (leaving the
	// alternate screen and showing the cursor, undoing what
	// Controller.Init writes) and registering for resize notification.
	EnterRaw() (cleanup []byte, err error)

	// ExitRaw restores the terminal's original mode.
	ExitRaw() error

	// Write sends bytes to the terminal.
	Write(b []byte) (int, error)

	// Read blocks for available input, writing into buf and returning
	// the number of bytes read.
	Read(buf []byte) (int, error)

	// Resized returns a channel that receives whenever SIGWINCH fires.
	Resized() <-chan struct{}

	// Close releases any OS resources (signal registration, file
	// descriptors dup'd for I/O) held by the shim.
	Close()
}
