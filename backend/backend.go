// Package backend defines the OS-abstraction-layer contracts — render,
// window and screen-reader backends — and the factory that selects the
// implementations matching the host platform at runtime. Platforms
// without native services fall back to the stub backends, which keep
// full in-memory semantics and never panic.
package backend

import (
	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/component"
	"github.com/oakui/oak/geom"
	"github.com/oakui/oak/render"
)

// RenderBackend produces render contexts for a drawing surface.
type RenderBackend interface {
	// Name identifies the backend; never empty.
	Name() string

	// CreateContext returns an independent render context whose Size
	// reports exactly (width, height).
	CreateContext(width, height int) (RenderContext, error)
}

// RenderContext executes command batches inside frames. Frames are
// serialized per context; a batch is atomic with respect to its frame
// and ExecuteBatch never suspends. Contexts keep their creation size;
// after a window resize a new context must be created.
type RenderContext interface {
	Size() (int, int)

	// BeginFrame opens a frame. A second BeginFrame without an
	// intervening EndFrame is invalid but must not crash.
	BeginFrame()

	// EndFrame closes the frame. Without an open frame it is a no-op.
	EndFrame()

	// ExecuteBatch runs commands inside the open frame. Outside a
	// frame the batch is dropped and the context is unchanged. On
	// partial failure the frame reverts to a blank frame of the
	// current size in the background color.
	ExecuteBatch(cmds []render.Command) error
}

// WindowBackend is the lifecycle contract of one top-level window.
// Instances are single-owner; concurrent calls are serialized by the
// instance.
type WindowBackend interface {
	Name() string

	Title() string
	SetTitle(title string)

	Size() (width, height int)
	SetSize(width, height int)

	Position() (x, y int)
	SetPosition(x, y int)

	Show()
	Hide()
	Close()
	IsVisible() bool

	// ClientBounds returns the drawable interior in logical pixels.
	ClientBounds() geom.Rect
}

// ScreenReaderBackend bridges the component tree to the host
// accessibility service. Each backend keeps its own registry of
// component accessibility props with upsert/idempotent-remove
// semantics.
type ScreenReaderBackend interface {
	// Announce forwards a prioritized utterance. It returns without
	// error regardless of whether a host screen reader is enabled.
	Announce(a a11y.Announcement) error

	// Stop flushes all queued speech. The registry is unchanged.
	Stop()

	// IsEnabled reports whether a host screen reader is active.
	IsEnabled() bool

	UpdateComponent(id component.ID, props a11y.Props)
	RemoveComponent(id component.ID)

	// SetFocus records the focused component without announcing.
	SetFocus(id component.ID)
	ClearFocus()

	BackendName() string
}

// Factory creates backends for one platform. Each Create call returns
// an independent instance. Factories are safe to call from any
// goroutine.
type Factory interface {
	CreateRenderer() RenderBackend
	CreateWindowBackend() WindowBackend
	CreateScreenReader() ScreenReaderBackend
}
