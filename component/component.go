// Package component defines the component model: logical identity,
// shared properties, the Component capability and the concurrency-safe
// handle that owns a component's mutable state.
package component

import (
	"context"

	"github.com/oakui/oak/geom"
)

// ID is the process-unique logical identity of a component. IDs are
// assigned by the embedder; the toolkit never allocates them. Two
// references with equal IDs denote the same logical component.
type ID uint64

// Properties holds the state shared by every component type.
type Properties struct {
	ID      ID
	Visible bool
	Enabled bool
	Bounds  geom.Rect
}

// NewProperties returns the default properties for a component:
// visible, enabled, bounds (0, 0, 100, 100).
func NewProperties(id ID) Properties {
	return Properties{
		ID:      id,
		Visible: true,
		Enabled: true,
		Bounds:  geom.NewRect(0, 0, 100, 100),
	}
}

// Component is the capability every component type provides: identity,
// shared read of its properties and exclusive write of its properties.
// Reads and writes may suspend while the opposite kind of access is
// held, and are cancellable through the caller's context.
//
// Implementations must be safe for use from multiple goroutines.
// Embedding *Handle satisfies the interface.
type Component interface {
	ID() ID

	// ReadProps returns a snapshot of the component's properties. It
	// suspends while a writer holds the lock and returns ctx.Err() if
	// cancelled before the lock is acquired.
	ReadProps(ctx context.Context) (Properties, error)

	// WriteProps runs fn with exclusive access to the properties. It
	// suspends while any reader or writer holds the lock and returns
	// ctx.Err() if cancelled before the lock is acquired.
	WriteProps(ctx context.Context, fn func(*Properties)) error
}

// IsVisible reports the component's visibility. See Component.ReadProps
// for suspension and cancellation behavior.
func IsVisible(ctx context.Context, c Component) (bool, error) {
	p, err := c.ReadProps(ctx)
	return p.Visible, err
}

// IsEnabled reports whether the component accepts input.
func IsEnabled(ctx context.Context, c Component) (bool, error) {
	p, err := c.ReadProps(ctx)
	return p.Enabled, err
}

// Bounds returns the component's bounding rectangle.
func Bounds(ctx context.Context, c Component) (geom.Rect, error) {
	p, err := c.ReadProps(ctx)
	return p.Bounds, err
}

// SetVisible updates the component's visibility.
func SetVisible(ctx context.Context, c Component, visible bool) error {
	return c.WriteProps(ctx, func(p *Properties) { p.Visible = visible })
}

// SetEnabled updates whether the component accepts input.
func SetEnabled(ctx context.Context, c Component, enabled bool) error {
	return c.WriteProps(ctx, func(p *Properties) { p.Enabled = enabled })
}

// SetBounds updates the component's bounding rectangle. Negative
// dimensions are clamped to zero.
func SetBounds(ctx context.Context, c Component, bounds geom.Rect) error {
	return c.WriteProps(ctx, func(p *Properties) {
		p.Bounds = geom.NewRect(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	})
}
