package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	xterm "golang.org/x/term"

	"github.com/oakui/oak/geom"
)

// Control sequences for the terminal window. Titles use OSC 2; show
// and hide map to the alternate screen buffer.
const (
	seqTitle      = "\x1b]2;%s\x07"
	seqAltScreen  = "\x1b[?1049h"
	seqMainScreen = "\x1b[?1049l"
)

// Window is the terminal window backend. The "window" is the
// controlling terminal; visibility toggles the alternate screen and
// the title is set through the terminal emulator.
type Window struct {
	mu      sync.Mutex
	out     io.Writer
	isTTY   bool
	title   string
	cols    int
	rows    int
	x       int
	y       int
	visible bool
	closed  bool
}

// NewWindow returns a window over the process's controlling terminal.
// When stdout is not a terminal the window keeps full in-memory state
// and writes nothing.
func NewWindow() *Window {
	w := &Window{out: os.Stdout, cols: 80, rows: 24, visible: true}
	fd := int(os.Stdout.Fd())
	if xterm.IsTerminal(fd) {
		w.isTTY = true
		if cols, rows, err := xterm.GetSize(fd); err == nil {
			w.cols = cols
			w.rows = rows
		}
	}
	return w
}

// NewWindowWriter returns a window writing control sequences to out,
// with a fixed cell grid. Used by tests and embedders that redirect
// terminal output.
func NewWindowWriter(out io.Writer, cols, rows int) *Window {
	return &Window{out: out, isTTY: true, cols: cols, rows: rows, visible: true}
}

// Name identifies the backend.
func (*Window) Name() string { return "terminal" }

// Title returns the current window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetTitle sets the terminal title. Immediately observable through
// Title; re-setting the same title is harmless.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
	if w.isTTY {
		fmt.Fprintf(w.out, seqTitle, title)
	}
}

// Size returns the window size in logical pixels.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cols * CellWidth, w.rows * CellHeight
}

// SetSize records a new size. Terminals cannot be resized by the
// application; the recorded size feeds ClientBounds and new contexts.
func (w *Window) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if width < 0 || height < 0 {
		return
	}
	w.cols = width / CellWidth
	w.rows = height / CellHeight
}

// Position returns the recorded window origin. Terminals have no
// meaningful screen position; it defaults to (0, 0).
func (w *Window) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

// SetPosition records a window origin.
func (w *Window) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x = x
	w.y = y
}

// Show enters the alternate screen.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.visible {
		return
	}
	w.visible = true
	if w.isTTY {
		io.WriteString(w.out, seqAltScreen)
	}
}

// Hide leaves the alternate screen.
func (w *Window) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.visible {
		return
	}
	w.visible = false
	if w.isTTY {
		io.WriteString(w.out, seqMainScreen)
	}
}

// Close hides the window permanently.
func (w *Window) Close() {
	w.mu.Lock()
	alreadyHidden := !w.visible
	w.visible = false
	w.closed = true
	w.mu.Unlock()
	if !alreadyHidden && w.isTTY {
		io.WriteString(w.out, seqMainScreen)
	}
}

// IsVisible reports whether the alternate screen is active.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// ClientBounds returns the drawable interior in logical pixels.
func (w *Window) ClientBounds() geom.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return geom.NewRect(0, 0, float32(w.cols*CellWidth), float32(w.rows*CellHeight))
}
