package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakui/oak/component"
	"github.com/oakui/oak/event"
	"github.com/oakui/oak/input"
)

func newButton(t *testing.T) (*Button, *event.Receiver) {
	t.Helper()
	bus := event.NewBus(event.DefaultCapacity)
	btn := NewButton(1, "OK", bus.Sender())
	return btn, bus.Subscribe()
}

func recvClick(t *testing.T, rx *event.Receiver) event.Event {
	t.Helper()
	ev, err, ok := rx.TryRecv()
	require.True(t, ok, "expected a bus event")
	require.NoError(t, err)
	return ev
}

func TestButtonClick(t *testing.T) {
	btn, rx := newButton(t)

	consumed := input.Handle(btn, input.MouseDown(input.ButtonLeft, 10, 10))
	assert.True(t, consumed)
	consumed = input.Handle(btn, input.MouseUp(input.ButtonLeft, 12, 11))
	assert.True(t, consumed)

	ev := recvClick(t, rx)
	assert.Equal(t, component.ID(1), ev.Target)
	assert.IsType(t, event.Click{}, ev.Type)
	assert.NotZero(t, ev.Timestamp)
}

func TestButtonReleaseOutsideBounds(t *testing.T) {
	btn, rx := newButton(t)

	input.Handle(btn, input.MouseDown(input.ButtonLeft, 10, 10))
	consumed := input.Handle(btn, input.MouseUp(input.ButtonLeft, 500, 500))
	assert.False(t, consumed)

	_, _, ok := rx.TryRecv()
	assert.False(t, ok, "aborted click must not emit")
}

func TestButtonPressOutsideBounds(t *testing.T) {
	btn, rx := newButton(t)

	consumed := input.Handle(btn, input.MouseDown(input.ButtonLeft, 500, 500))
	assert.False(t, consumed)
	input.Handle(btn, input.MouseUp(input.ButtonLeft, 10, 10))

	_, _, ok := rx.TryRecv()
	assert.False(t, ok)
}

func TestDisabledButtonEmitsNothing(t *testing.T) {
	btn, rx := newButton(t)
	require.NoError(t, component.SetEnabled(context.Background(), btn, false))

	assert.False(t, input.Handle(btn, input.MouseDown(input.ButtonLeft, 10, 10)))
	assert.False(t, input.Handle(btn, input.MouseUp(input.ButtonLeft, 10, 10)))

	btn.SetFocused(true)
	rx = drainFocus(t, rx)
	assert.False(t, input.Handle(btn, input.KeyDown(input.Named(input.KeyEnter), 0)))

	_, _, ok := rx.TryRecv()
	assert.False(t, ok, "disabled button must never emit Click")
}

func TestInvisibleButtonEmitsNothing(t *testing.T) {
	btn, rx := newButton(t)
	require.NoError(t, component.SetVisible(context.Background(), btn, false))

	assert.False(t, input.Handle(btn, input.MouseDown(input.ButtonLeft, 10, 10)))
	assert.False(t, input.Handle(btn, input.MouseUp(input.ButtonLeft, 10, 10)))

	_, _, ok := rx.TryRecv()
	assert.False(t, ok)
}

func TestButtonKeyboardActivation(t *testing.T) {
	btn, rx := newButton(t)

	// Not focused: Enter does nothing.
	assert.False(t, input.Handle(btn, input.KeyDown(input.Named(input.KeyEnter), 0)))

	btn.SetFocused(true)
	rx = drainFocus(t, rx)

	assert.True(t, input.Handle(btn, input.KeyDown(input.Named(input.KeyEnter), 0)))
	ev := recvClick(t, rx)
	assert.IsType(t, event.Click{}, ev.Type)

	assert.True(t, input.Handle(btn, input.KeyDown(input.Char(' '), 0)))
	ev = recvClick(t, rx)
	assert.IsType(t, event.Click{}, ev.Type)

	// Release does not re-activate.
	assert.False(t, input.Handle(btn, input.KeyUp(input.Named(input.KeyEnter), 0)))
	_, _, ok := rx.TryRecv()
	assert.False(t, ok)
}

func TestButtonFocusEvents(t *testing.T) {
	btn, rx := newButton(t)

	btn.SetFocused(true)
	ev := recvClick(t, rx)
	assert.IsType(t, event.FocusGained{}, ev.Type)

	btn.SetFocused(true) // no change, no event
	_, _, ok := rx.TryRecv()
	assert.False(t, ok)

	btn.SetFocused(false)
	ev = recvClick(t, rx)
	assert.IsType(t, event.FocusLost{}, ev.Type)
}

func TestButtonAccessibility(t *testing.T) {
	btn, _ := newButton(t)
	ctx := context.Background()

	props, err := btn.Accessibility(ctx)
	require.NoError(t, err)
	assert.Equal(t, "button", props.Role)
	assert.Equal(t, "OK", props.Label)
	assert.True(t, props.Focusable)
	assert.False(t, props.Disabled)

	require.NoError(t, component.SetEnabled(ctx, btn, false))
	props, err = btn.Accessibility(ctx)
	require.NoError(t, err)
	assert.True(t, props.Disabled)
	assert.False(t, props.Focusable)
}

func TestLabel(t *testing.T) {
	lbl := NewLabel(7, "status")
	assert.Equal(t, "status", lbl.Text())
	lbl.SetText("ready")
	assert.Equal(t, "ready", lbl.Text())

	props, err := lbl.Accessibility(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "label", props.Role)
	assert.Equal(t, "ready", props.Label)
	assert.False(t, props.Hidden)
}

// drainFocus discards the focus event emitted by SetFocused.
func drainFocus(t *testing.T, rx *event.Receiver) *event.Receiver {
	t.Helper()
	_, _, _ = rx.TryRecv()
	return rx
}
