package tui

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Controller states.
const (
	stateActive = iota
	statePaused
	stateFailed
)

// forceDelay is how long the Controller waits for more bytes after a
// lone ESC before deciding it was a standalone Escape key rather than the
// start of a longer sequence.
const forceDelay = 100 * time.Millisecond

// idleDelay is how long the Controller waits with no input before
// injecting a synthetic KeyCheck, when checking is enabled.
const idleDelay = 300 * time.Millisecond

// Controller owns the controlling terminal's life-cycle: entering and
// leaving raw mode, decoding input, tracking resize, and flushing Page
// draws through an OutputBuffer. Exactly one Controller should be active
// against a given terminal at a time.
type Controller struct {
	ID uuid.UUID

	tty     OSTTY
	out     *OutputBuffer
	decoder KeyDecoder
	measure Measure

	shadow *Page
	sy, sx int

	state   int
	checkOn bool

	inbuf   []byte
	cleanup []byte

	mu sync.Mutex
}

// NewController builds a Controller bound to tty, using measure to size
// and diff Pages it is asked to Flush. A nil decoder installs
// DefaultKeyDecoder.
func NewController(tty OSTTY, measure Measure, decoder KeyDecoder) *Controller {
	if decoder == nil {
		decoder = DefaultKeyDecoder{}
	}
	if measure == nil {
		measure = DefaultMeasure
	}
	return &Controller{ID: uuid.New(), tty: tty, decoder: decoder, measure: measure}
}

// Init verifies the terminal, enters raw mode, and prepares the internal
// OutputBuffer and shadow Page. It registers the Controller for
// panic-safe cleanup: if Run's goroutine panics, the terminal is restored
// before the panic propagates.
func (c *Controller) Init() error {
	if !c.tty.IsTerminal() {
		return ErrNotATTY
	}
	sy, sx, err := c.tty.Size()
	if err != nil {
		return err
	}
	cleanup, err := c.tty.EnterRaw()
	if err != nil {
		return ErrTermMode
	}
	c.sy, c.sx = sy, sx
	c.cleanup = cleanup
	c.out = NewOutputBuffer(sy, sx, Features{})
	c.out.Bytes(cleanup)
	c.out.SaveCleanup()
	c.shadow = NewPageWithMeasure(sy, sx, HFBUnknown, c.measure)
	c.state = stateActive

	registerCleanup(c.ID, func() { c.tty.Write(cleanup); c.tty.ExitRaw() })

	c.out.Asc("\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l")
	c.out.Flush()
	_, err = c.tty.Write(c.out.DataToFlush())
	c.out.DrainFlush()
	return err
}

// Close restores the terminal and releases OS resources. Safe to call
// more than once.
func (c *Controller) Close() error {
	unregisterCleanup(c.ID)
	if c.state == stateFailed {
		return nil
	}
	c.tty.Write(c.cleanup)
	err := c.tty.ExitRaw()
	c.tty.Close()
	c.state = stateFailed
	return err
}

func (c *Controller) Bell() {
	if c.state != stateActive {
		return
	}
	c.out.Bell()
}

// Pause discards any unflushed draw and temporarily yields the terminal
// (for shelling out to another program, say) without tearing down the
// Controller.
func (c *Controller) Pause() error {
	if c.state != stateActive {
		return nil
	}
	c.out.Discard()
	c.tty.Write(c.cleanup)
	if err := c.tty.ExitRaw(); err != nil {
		c.state = stateFailed
		return ErrTermMode
	}
	c.state = statePaused
	return nil
}

// Resume re-enters raw mode and forces the next Flush to redraw
// everything, since Pause may have let other programs scribble on the
// screen.
func (c *Controller) Resume() error {
	if c.state != statePaused {
		return nil
	}
	cleanup, err := c.tty.EnterRaw()
	if err != nil {
		c.state = stateFailed
		return ErrTermMode
	}
	c.cleanup = cleanup
	c.out.Bytes(cleanup)
	c.out.SaveCleanup()
	c.out.Asc("\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l")
	c.shadow = NewPageWithMeasure(c.sy, c.sx, HFBUnknown, c.measure)
	c.state = stateActive
	return nil
}

// Check enables or disables the idle-timer synthetic KeyCheck that Run
// delivers when input has been quiet for idleDelay.
func (c *Controller) Check(enable bool) {
	c.checkOn = enable
}

// Flush diffs page against the Controller's shadow of what is currently
// displayed, writes the minimal update to the terminal, and adopts page
// as the new shadow. If Init or Resume built a new cleanup sequence since
// the last Flush, it is swapped in here and registered for panic-safe
// restoration.
func (c *Controller) Flush(page *Page) error {
	if c.state != stateActive {
		return nil
	}
	if pending := c.out.Cleanup(); len(pending) > 0 {
		c.cleanup = pending
		registerCleanup(c.ID, func() { c.tty.Write(pending); c.tty.ExitRaw() })
	}
	DiffPages(c.shadow, page, func(y int, ch Change) {
		c.out.At(y, ch.X)
		c.out.HFB(ch.HFB)
		c.out.Asc(ch.Text)
	})
	c.out.Flush()
	_, err := c.tty.Write(c.out.DataToFlush())
	c.out.DrainFlush()
	c.shadow = page
	return err
}

// HandleResize re-queries the terminal size and rebuilds the shadow page
// so the next Flush redraws at the new dimensions.
func (c *Controller) HandleResize() (sy, sx int, err error) {
	sy, sx, err = c.tty.Size()
	if err != nil {
		return c.sy, c.sx, err
	}
	c.sy, c.sx = sy, sx
	c.out.SetSize(sy, sx)
	c.shadow = NewPageWithMeasure(sy, sx, HFBUnknown, c.measure)
	return sy, sx, nil
}

// Run is the Controller's event loop: it reads from tty on a dedicated
// goroutine (OS reads block, so they cannot share the select below) and
// forwards decoded keys and resize notifications to the supplied
// callbacks on the calling goroutine, preserving the single-threaded
// drawing model the Page/OutputBuffer types assume. Run returns when
// stop is closed or the input stream ends.
func (c *Controller) Run(stop <-chan struct{}, onKey func(Key), onResize func(sy, sx int)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.tty.Write(c.cleanup)
			c.tty.ExitRaw()
			panic(r)
		}
	}()

	readCh := make(chan []byte)
	readErrCh := make(chan error, 1)
	go func() {
		buf := make([]byte, 4096)
		for {
			n, rerr := c.tty.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				readCh <- chunk
			}
			if rerr != nil {
				readErrCh <- rerr
				return
			}
		}
	}()

	var forceTimer, idleTimer *time.Timer
	armForce := func() {
		if forceTimer != nil {
			forceTimer.Stop()
		}
		forceTimer = time.NewTimer(forceDelay)
	}
	armIdle := func() {
		if !c.checkOn {
			return
		}
		if idleTimer != nil {
			idleTimer.Stop()
		}
		idleTimer = time.NewTimer(idleDelay)
	}
	forceC := func() <-chan time.Time {
		if forceTimer == nil {
			return nil
		}
		return forceTimer.C
	}
	idleC := func() <-chan time.Time {
		if idleTimer == nil || !c.checkOn {
			return nil
		}
		return idleTimer.C
	}

	armIdle()
	for {
		select {
		case <-stop:
			return nil
		case err = <-readErrCh:
			return err
		case chunk := <-readCh:
			c.inbuf = append(c.inbuf, chunk...)
			c.drainKeys(false, onKey)
			if len(c.inbuf) > 0 {
				armForce()
			}
			armIdle()
		case <-forceC():
			c.drainKeys(true, onKey)
			armIdle()
		case <-idleC():
			onKey(Key{Kind: KeyCheck})
			armIdle()
		case <-c.tty.Resized():
			sy, sx, rerr := c.HandleResize()
			if rerr == nil {
				onResize(sy, sx)
			}
		}
	}
}

// drainKeys decodes as many complete keys as possible from c.inbuf. When
// force is set, a trailing incomplete sequence is resolved using the
// decoder's best-effort interpretation (see KeyDecoder).
func (c *Controller) drainKeys(force bool, onKey func(Key)) {
	for len(c.inbuf) > 0 {
		n, key, ok := c.decoder.Decode(c.inbuf, force)
		if !ok {
			return
		}
		if n == 0 {
			return
		}
		c.inbuf = c.inbuf[n:]
		if key.Kind != KeyNone {
			onKey(key)
		}
	}
}

// cleanupRegistry lets a process-level panic handler restore every active
// Controller's terminal before the panic propagates out. recover() only
// ever catches a panic on the same goroutine, so Run installs its own
// recover/cleanup/repanic at its top instead of relying solely on this
// registry. The registry exists for the one case Run's own recover cannot
// cover: a host program with its own top-level recover that wants to
// restore every Controller it knows about, not just the one whose
// goroutine panicked.
var (
	cleanupMu       sync.Mutex
	cleanupHandlers = map[uuid.UUID]func(){}
)

func registerCleanup(id uuid.UUID, fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupHandlers[id] = fn
}

func unregisterCleanup(id uuid.UUID) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	delete(cleanupHandlers, id)
}

// RunCleanupHandlers invokes every registered Controller's cleanup
// function. A host program's own panic recovery can call this to restore
// every terminal it knows about before re-raising.
func RunCleanupHandlers() {
	cleanupMu.Lock()
	handlers := make([]func(), 0, len(cleanupHandlers))
	for _, fn := range cleanupHandlers {
		handlers = append(handlers, fn)
	}
	cleanupMu.Unlock()
	for _, fn := range handlers {
		fn()
	}
}
