//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// unixTTY is the default OSTTY, grounded directly on raw termios
// manipulation: disable echo/canonical mode/signal generation, set
// VMIN=1/VTIME=0 for byte-at-a-time reads, and restore the saved termios
// on exit.
type unixTTY struct {
	in, out  *os.File
	fd       int
	orig     *unix.Termios
	sigCh    chan os.Signal
	resizeCh chan struct{}
}

// NewUnixTTY builds an OSTTY bound to the given input and output files,
// defaulting to stdin/stdout when either is nil.
func NewUnixTTY(in, out *os.File) OSTTY {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &unixTTY{in: in, out: out, fd: int(in.Fd())}
}

func (t *unixTTY) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

func (t *unixTTY) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, ioErr("getwinsize", err)
	}
	return int(ws.Row), int(ws.Col), nil
}

// EnterRaw switches the terminal to raw mode and starts the SIGWINCH
// pump. It returns the escape sequence that undoes the screen-mode
// changes Controller.Init writes after this call succeeds (exit
// alternate screen, show cursor); Controller stashes it for panic-safe
// restoration but EnterRaw itself never touches screen mode, only the
// termios.
func (t *unixTTY) EnterRaw() ([]byte, error) {
	termios, err := unix.IoctlGetTermios(t.fd, ioctlGets)
	if err != nil {
		return nil, ioErr("tcgetattr", err)
	}
	t.orig = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSets, &raw); err != nil {
		return nil, ioErr("tcsetattr", err)
	}

	t.sigCh = make(chan os.Signal, 1)
	t.resizeCh = make(chan struct{}, 1)
	signal.Notify(t.sigCh, syscall.SIGWINCH)
	go t.pump()

	return []byte("\x1b[?1049l\x1b[?25h"), nil
}

func (t *unixTTY) ExitRaw() error {
	if t.sigCh != nil {
		signal.Stop(t.sigCh)
	}
	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSets, t.orig); err != nil {
		return ioErr("tcsetattr", err)
	}
	return nil
}

func (t *unixTTY) Write(b []byte) (int, error) {
	n, err := t.out.Write(b)
	return n, ioErr("write", err)
}

func (t *unixTTY) Read(buf []byte) (int, error) {
	n, err := t.in.Read(buf)
	return n, ioErr("read", err)
}

func (t *unixTTY) Resized() <-chan struct{} {
	return t.resizeCh
}

func (t *unixTTY) Close() {
	if t.sigCh != nil {
		signal.Stop(t.sigCh)
		close(t.sigCh)
	}
}

func (t *unixTTY) pump() {
	for range t.sigCh {
		select {
		case t.resizeCh <- struct{}{}:
		default:
		}
	}
}
