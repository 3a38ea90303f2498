// Package event carries the toolkit's bus events: typed occurrences
// addressed to a component, broadcast to any number of subscribers
// over a bounded ring with lag reporting.
package event

import (
	"time"

	"github.com/oakui/oak/component"
	"github.com/oakui/oak/input"
)

// Type is the tagged sum of bus event payloads.
type Type interface{ isEventType() }

// MouseDown reports a button press over the target.
type MouseDown struct {
	Button input.MouseButton
	X, Y   float32
}

// MouseUp reports a button release over the target.
type MouseUp struct {
	Button input.MouseButton
	X, Y   float32
}

// MouseMove reports pointer motion over the target.
type MouseMove struct {
	X, Y float32
}

// MouseWheel reports scrolling over the target.
type MouseWheel struct {
	DX, DY float32
}

// KeyDown reports a key press routed to the target.
type KeyDown struct {
	Key  input.Key
	Mods input.Modifiers
}

// KeyUp reports a key release routed to the target.
type KeyUp struct {
	Key  input.Key
	Mods input.Modifiers
}

// TextInput reports committed text.
type TextInput struct {
	Text string
}

// FocusGained reports the target acquiring keyboard focus.
type FocusGained struct{}

// FocusLost reports the target losing keyboard focus.
type FocusLost struct{}

// Click is the synthetic activation event. Never emitted for disabled
// components.
type Click struct{}

// ValueChanged reports a change to the target's value. Never emitted
// for disabled components.
type ValueChanged struct{}

// Resize reports the target's new size.
type Resize struct {
	Width  float32
	Height float32
}

// Custom carries an embedder-defined event.
type Custom struct {
	Name string
	Data any
}

func (MouseDown) isEventType()    {}
func (MouseUp) isEventType()      {}
func (MouseMove) isEventType()    {}
func (MouseWheel) isEventType()   {}
func (KeyDown) isEventType()      {}
func (KeyUp) isEventType()        {}
func (TextInput) isEventType()    {}
func (FocusGained) isEventType()  {}
func (FocusLost) isEventType()    {}
func (Click) isEventType()        {}
func (ValueChanged) isEventType() {}
func (Resize) isEventType()       {}
func (Custom) isEventType()       {}

// Event is a typed occurrence addressed to a component. Timestamp is
// wall-clock milliseconds captured at construction; it is informational
// and not part of event equality.
type Event struct {
	Target    component.ID
	Type      Type
	Timestamp int64
}

// New builds an event targeted at id, stamping the current time.
func New(id component.ID, typ Type) Event {
	return Event{
		Target:    id,
		Type:      typ,
		Timestamp: time.Now().UnixMilli(),
	}
}
