//go:build linux

package x11

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/oakui/oak/geom"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Window implements the window backend over a real top-level X11
// window. Local state (title, geometry, visibility) is cached so reads
// observe writes immediately even while the X server is still
// processing the request.
type Window struct {
	mu      sync.Mutex
	conn    *Connection
	win     *xwindow.Window
	title   string
	x, y    int
	width   int
	height  int
	visible bool
	closed  bool
}

// NewWindow creates and maps a top-level window centered on the root
// screen.
func NewWindow(conn *Connection) (*Window, error) {
	win, err := xwindow.Generate(conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("allocate window id: %w", err)
	}

	sw, sh := conn.ScreenSize()
	x := (sw - defaultWidth) / 2
	y := (sh - defaultHeight) / 2
	if err := win.CreateChecked(
		conn.Root, x, y, defaultWidth, defaultHeight,
		xproto.CwBackPixel|xproto.CwEventMask,
		0xffffff,
		xproto.EventMaskStructureNotify|xproto.EventMaskExposure,
	); err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// Opt in to graceful close requests. On failure Close falls back
	// to destroying the window.
	if err := icccm.WmProtocolsSet(conn.XUtil, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		slog.Debug("failed to set WM_DELETE_WINDOW protocol", "error", err)
	}

	win.Map()
	return &Window{
		conn:    conn,
		win:     win,
		x:       x,
		y:       y,
		width:   defaultWidth,
		height:  defaultHeight,
		visible: true,
	}, nil
}

// Name identifies the backend.
func (*Window) Name() string { return "x11" }

// Title returns the last title set on the window.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetTitle sets _NET_WM_NAME and the ICCCM name. Idempotent.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
	_ = ewmh.WmNameSet(w.conn.XUtil, w.win.Id, title)
	_ = icccm.WmNameSet(w.conn.XUtil, w.win.Id, title)
}

// Size returns the outer window size.
func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if width < 0 || height < 0 {
		return
	}
	w.width = width
	w.height = height
	w.win.Resize(width, height)
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
	w.win.Move(x, y)
}

// Show maps the window.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.visible {
		return
	}
	w.visible = true
	w.win.Map()
}

// Hide unmaps the window.
func (w *Window) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.visible {
		return
	}
	w.visible = false
	w.win.Unmap()
}

// Close requests a graceful close via WM_DELETE_WINDOW, destroying the
// window outright if the request cannot be delivered.
func (w *Window) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.visible = false

	if err := w.sendDelete(); err != nil {
		w.win.Destroy()
	}
}

func (w *Window) sendDelete() error {
	xu := w.conn.XUtil

	deleteReply, err := xproto.InternAtom(xu.Conn(), false,
		uint16(len("WM_DELETE_WINDOW")), "WM_DELETE_WINDOW").Reply()
	if err != nil {
		return err
	}
	protocolsReply, err := xproto.InternAtom(xu.Conn(), false,
		uint16(len("WM_PROTOCOLS")), "WM_PROTOCOLS").Reply()
	if err != nil {
		return err
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.win.Id,
		Type:   protocolsReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(deleteReply.Atom), 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(
		xu.Conn(),
		false,
		w.win.Id,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}

// IsVisible reports whether the window is mapped.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// ClientBounds returns the drawable interior in logical pixels.
func (w *Window) ClientBounds() geom.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return geom.NewRect(0, 0, float32(w.width), float32(w.height))
}
