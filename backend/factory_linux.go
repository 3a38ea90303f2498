//go:build linux

package backend

import (
	"log/slog"

	"github.com/oakui/oak/internal/stub"
	"github.com/oakui/oak/internal/term"
	"github.com/oakui/oak/internal/x11"
)

// newPlatformFactory returns the Linux factory: terminal rendering,
// X11 windows when a display is reachable, stub windows otherwise.
// Screen-reader wiring (AT-SPI) is not implemented; the stub carries
// the contract.
func newPlatformFactory() Factory {
	return linuxFactory{}
}

type linuxFactory struct{}

var _ Factory = linuxFactory{}

func (linuxFactory) CreateRenderer() RenderBackend {
	return termRenderer{term.NewRenderer()}
}

func (linuxFactory) CreateWindowBackend() WindowBackend {
	conn, err := x11.NewConnection()
	if err != nil {
		slog.Debug("x11 unavailable, using stub window backend", "error", err)
		return stub.NewWindow()
	}
	win, err := x11.NewWindow(conn)
	if err != nil {
		slog.Debug("x11 window creation failed, using stub window backend", "error", err)
		conn.Close()
		return stub.NewWindow()
	}
	return win
}

func (linuxFactory) CreateScreenReader() ScreenReaderBackend {
	return stub.NewScreenReader()
}
