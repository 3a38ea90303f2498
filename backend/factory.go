package backend

import (
	"sync"

	"github.com/oakui/oak/internal/stub"
	"github.com/oakui/oak/platform"
)

var (
	factoryOnce sync.Once
	factory     Factory
)

// GetFactory returns the process-global factory bound to the current
// platform. Unsupported platforms, and supported platforms whose host
// services turn out to be unavailable, yield backends that report the
// name "stub" and no-op instead of failing.
func GetFactory() Factory {
	factoryOnce.Do(func() {
		factory = newFactory(platform.Current())
	})
	return factory
}

func newFactory(p platform.Platform) Factory {
	if !p.IsSupported() {
		return StubFactory{}
	}
	return newPlatformFactory()
}

// StubFactory produces the fallback backends.
type StubFactory struct{}

var _ Factory = StubFactory{}

// CreateRenderer returns a fresh stub render backend.
func (StubFactory) CreateRenderer() RenderBackend {
	return stubRenderer{stub.NewRenderer()}
}

// CreateWindowBackend returns a fresh stub window.
func (StubFactory) CreateWindowBackend() WindowBackend {
	return stub.NewWindow()
}

// CreateScreenReader returns a fresh stub screen reader.
func (StubFactory) CreateScreenReader() ScreenReaderBackend {
	return stub.NewScreenReader()
}

// stubRenderer adapts the concrete stub renderer to the interface
// return type of the contract.
type stubRenderer struct {
	r *stub.Renderer
}

func (s stubRenderer) Name() string { return s.r.Name() }

func (s stubRenderer) CreateContext(width, height int) (RenderContext, error) {
	return s.r.CreateContext(width, height)
}
