//go:build !linux

package backend

import (
	"github.com/oakui/oak/internal/stub"
	"github.com/oakui/oak/internal/term"
)

// newPlatformFactory returns the factory for platforms without native
// window wiring: terminal rendering plus stub window and screen-reader
// backends.
func newPlatformFactory() Factory {
	return defaultFactory{}
}

type defaultFactory struct{}

var _ Factory = defaultFactory{}

func (defaultFactory) CreateRenderer() RenderBackend {
	return termRenderer{term.NewRenderer()}
}

func (defaultFactory) CreateWindowBackend() WindowBackend {
	return stub.NewWindow()
}

func (defaultFactory) CreateScreenReader() ScreenReaderBackend {
	return stub.NewScreenReader()
}
