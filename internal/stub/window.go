package stub

import (
	"sync"

	"github.com/oakui/oak/geom"
)

// Window is the stub window backend: full in-memory window state with
// no host window behind it.
type Window struct {
	mu      sync.Mutex
	title   string
	width   int
	height  int
	x       int
	y       int
	visible bool
	closed  bool
}

// NewWindow returns a visible stub window with a default size.
func NewWindow() *Window {
	return &Window{width: 800, height: 600, visible: true}
}

// Name identifies the backend.
func (*Window) Name() string { return "stub" }

// Title returns the current window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetTitle sets the window title. Idempotent and immediately
// observable via Title.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Size returns the outer window size.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// SetSize resizes the window. Negative dimensions are clamped to zero.
func (w *Window) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = geom.Clamp(width, 0, 1<<30)
	w.height = geom.Clamp(height, 0, 1<<30)
}

// Position returns the window origin in screen coordinates.
func (w *Window) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x = x
	w.y = y
}

// Show makes the window visible.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.visible = true
}

// Hide makes the window invisible.
func (w *Window) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
}

// Close hides the window permanently.
func (w *Window) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.visible = false
}

// IsVisible reports whether the window is shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// ClientBounds returns the drawable interior. The stub has no
// decorations, so it equals the window rect at the origin.
func (w *Window) ClientBounds() geom.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return geom.NewRect(0, 0, float32(w.width), float32(w.height))
}
