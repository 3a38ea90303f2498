// Package input defines the unified input model: keyboard, mouse and
// touch event records, the tagged Event sum that carries them, and the
// handler contract that fans an event out to type-specific callbacks.
package input

import "errors"

// ErrNoTouches is returned when constructing a touch event with an
// empty touch list.
var ErrNoTouches = errors.New("touch event requires at least one touch")

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Event is the tagged sum of the three input event families.
type Event interface{ isInputEvent() }

func (KeyboardEvent) isInputEvent() {}
func (MouseEvent) isInputEvent()    {}
func (TouchEvent) isInputEvent()    {}

// KeyPhase distinguishes press from release.
type KeyPhase int

const (
	KeyPhaseDown KeyPhase = iota
	KeyPhaseUp
)

// KeyboardEvent is a single key press or release with modifier state.
type KeyboardEvent struct {
	Phase KeyPhase
	Key   Key
	Mods  Modifiers
}

// KeyDown constructs a key-press event.
func KeyDown(key Key, mods Modifiers) KeyboardEvent {
	return KeyboardEvent{Phase: KeyPhaseDown, Key: key, Mods: mods}
}

// KeyUp constructs a key-release event.
func KeyUp(key Key, mods Modifiers) KeyboardEvent {
	return KeyboardEvent{Phase: KeyPhaseUp, Key: key, Mods: mods}
}

// IsShift reports whether Shift was held for this event.
func (e KeyboardEvent) IsShift() bool { return e.Mods.HasShift() }

// IsCtrl reports whether Ctrl was held for this event.
func (e KeyboardEvent) IsCtrl() bool { return e.Mods.HasCtrl() }

// IsAlt reports whether Alt was held for this event.
func (e KeyboardEvent) IsAlt() bool { return e.Mods.HasAlt() }

// IsMeta reports whether Meta was held for this event.
func (e KeyboardEvent) IsMeta() bool { return e.Mods.HasMeta() }

// MousePhase identifies what the mouse did.
type MousePhase int

const (
	MouseButtonDown MousePhase = iota
	MouseButtonUp
	MouseMove
	MouseWheel
)

// MouseEvent is a pointer event at (X, Y) in logical pixels. Button is
// meaningful for the ButtonDown/ButtonUp phases; WheelX and WheelY for
// the Wheel phase.
type MouseEvent struct {
	Phase  MousePhase
	Button MouseButton
	X      float32
	Y      float32
	WheelX float32
	WheelY float32
}

// MouseDown constructs a button-press event at (x, y).
func MouseDown(btn MouseButton, x, y float32) MouseEvent {
	return MouseEvent{Phase: MouseButtonDown, Button: btn, X: x, Y: y}
}

// MouseUp constructs a button-release event at (x, y).
func MouseUp(btn MouseButton, x, y float32) MouseEvent {
	return MouseEvent{Phase: MouseButtonUp, Button: btn, X: x, Y: y}
}

// MouseMoved constructs a pointer-move event.
func MouseMoved(x, y float32) MouseEvent {
	return MouseEvent{Phase: MouseMove, X: x, Y: y}
}

// MouseWheeled constructs a scroll event with wheel deltas at (x, y).
func MouseWheeled(dx, dy, x, y float32) MouseEvent {
	return MouseEvent{Phase: MouseWheel, WheelX: dx, WheelY: dy, X: x, Y: y}
}

// Touch is a single contact point.
type Touch struct {
	ID uint32
	X  float32
	Y  float32
}

// TouchPhase identifies the stage of a touch sequence.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// TouchEvent carries one or more contact points in a stable order.
type TouchEvent struct {
	Phase   TouchPhase
	Touches []Touch
}

// NewTouchEvent constructs a touch event. It fails with ErrNoTouches
// if touches is empty.
func NewTouchEvent(phase TouchPhase, touches []Touch) (TouchEvent, error) {
	if len(touches) == 0 {
		return TouchEvent{}, ErrNoTouches
	}
	return TouchEvent{Phase: phase, Touches: touches}, nil
}

// IsMultiTouch reports whether the event carries two or more contact
// points.
func (e TouchEvent) IsMultiTouch() bool { return len(e.Touches) >= 2 }
