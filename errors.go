package tui

import "errors"

// Sentinel errors surfaced by the Controller. The default OS shim reports
// its own failures as *IoError.
var (
	// ErrNotATTY is returned by Init when the input file descriptor is not
	// connected to a terminal.
	ErrNotATTY = errors.New("tui: input is not a tty")

	// ErrTermMode is returned in place of a failure to switch the terminal
	// mode (a tcgetattr/tcsetattr failure). The underlying error is not
	// wrapped.
	ErrTermMode = errors.New("tui: terminal mode error")
)

// IoError wraps an underlying OS-level read/write failure so callers can
// errors.Is/As against the lower-level cause while still recognising it as
// a controller-fatal condition.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string { return "tui: " + e.Op + ": " + e.Err.Error() }
func (e *IoError) Unwrap() error { return e.Err }

func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: err}
}
