// Package widget provides concrete components built on the shared
// property handle: a static text label and a clickable button wired to
// the event bus and the input layer.
package widget

import (
	"context"
	"sync"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/component"
	"github.com/oakui/oak/event"
	"github.com/oakui/oak/input"
)

// Label is a non-interactive text component.
type Label struct {
	*component.Handle

	mu   sync.RWMutex
	text string
}

// NewLabel creates a label with the given id and text.
func NewLabel(id component.ID, text string) *Label {
	return &Label{Handle: component.New(id), text: text}
}

// Text returns the displayed text.
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	l.text = text
	l.mu.Unlock()
}

// Accessibility reports the label's semantic properties.
func (l *Label) Accessibility(ctx context.Context) (a11y.Props, error) {
	props, err := l.ReadProps(ctx)
	if err != nil {
		return a11y.Props{}, err
	}
	return a11y.Props{
		Role:     "label",
		Label:    l.Text(),
		Disabled: !props.Enabled,
		Hidden:   !props.Visible,
	}, nil
}

// Button is a clickable component. It implements input.Handler: a
// left-button press inside its bounds followed by a release inside its
// bounds emits a Click event on the bus. Enter or space on the
// keyboard does the same. A disabled or invisible button consumes
// nothing and emits nothing.
type Button struct {
	*component.Handle
	input.BaseHandler

	sender event.Sender

	mu      sync.Mutex
	text    string
	focused bool
	pressed bool
}

// NewButton creates a button that emits Click events through sender.
func NewButton(id component.ID, text string, sender event.Sender) *Button {
	return &Button{Handle: component.New(id), text: text, sender: sender}
}

// Text returns the button caption.
func (b *Button) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// SetText replaces the button caption.
func (b *Button) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}

// SetFocused marks the button as the keyboard focus target and emits
// the matching focus event.
func (b *Button) SetFocused(focused bool) {
	b.mu.Lock()
	changed := b.focused != focused
	b.focused = focused
	b.mu.Unlock()
	if !changed {
		return
	}
	if focused {
		b.sender.Send(event.New(b.ID(), event.FocusGained{}))
	} else {
		b.sender.Send(event.New(b.ID(), event.FocusLost{}))
	}
}

// Focused reports whether the button holds keyboard focus.
func (b *Button) Focused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

// Accessibility reports the button's semantic properties.
func (b *Button) Accessibility(ctx context.Context) (a11y.Props, error) {
	props, err := b.ReadProps(ctx)
	if err != nil {
		return a11y.Props{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return a11y.Props{
		Role:      "button",
		Label:     b.text,
		Focusable: props.Enabled,
		Focused:   b.focused,
		Disabled:  !props.Enabled,
		Hidden:    !props.Visible,
	}, nil
}

// HandleMouse implements input.Handler. Only an interactive button
// (visible and enabled) participates in press tracking.
func (b *Button) HandleMouse(ev input.MouseEvent) bool {
	props, err := b.ReadProps(context.Background())
	if err != nil || !props.Visible || !props.Enabled {
		b.mu.Lock()
		b.pressed = false
		b.mu.Unlock()
		return false
	}

	inside := props.Bounds.Contains(ev.X, ev.Y)
	switch ev.Phase {
	case input.MouseButtonDown:
		if ev.Button != input.ButtonLeft || !inside {
			return false
		}
		b.mu.Lock()
		b.pressed = true
		b.mu.Unlock()
		return true
	case input.MouseButtonUp:
		if ev.Button != input.ButtonLeft {
			return false
		}
		b.mu.Lock()
		wasPressed := b.pressed
		b.pressed = false
		b.mu.Unlock()
		if wasPressed && inside {
			b.sender.Send(event.New(b.ID(), event.Click{}))
			return true
		}
	}
	return false
}

// HandleKeyboard implements input.Handler. Enter and space activate a
// focused button.
func (b *Button) HandleKeyboard(ev input.KeyboardEvent) bool {
	if ev.Phase != input.KeyPhaseDown {
		return false
	}
	activate := ev.Key.Code == input.KeyEnter ||
		(ev.Key.Code == input.KeyChar && ev.Key.Rune == ' ')
	if !activate || !b.Focused() {
		return false
	}

	props, err := b.ReadProps(context.Background())
	if err != nil || !props.Visible || !props.Enabled {
		return false
	}
	b.sender.Send(event.New(b.ID(), event.Click{}))
	return true
}
