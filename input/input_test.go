package input

import (
	"errors"
	"testing"
)

// countingHandler tallies the events it sees and optionally consumes
// everything.
type countingHandler struct {
	keyboard int
	mouse    int
	touch    int
	consume  bool
	lastKey  KeyboardEvent
}

func (h *countingHandler) HandleKeyboard(e KeyboardEvent) bool {
	h.keyboard++
	h.lastKey = e
	return h.consume
}

func (h *countingHandler) HandleMouse(MouseEvent) bool {
	h.mouse++
	return h.consume
}

func (h *countingHandler) HandleTouch(TouchEvent) bool {
	h.touch++
	return h.consume
}

func TestConstructorsCarryPhaseAndPayload(t *testing.T) {
	kd := KeyDown(Named(KeyEnter), 0)
	if kd.Phase != KeyPhaseDown || kd.Key.Code != KeyEnter {
		t.Fatalf("unexpected key-down event: %+v", kd)
	}
	ku := KeyUp(Char('x'), ModAlt)
	if ku.Phase != KeyPhaseUp || ku.Key.Rune != 'x' || !ku.IsAlt() {
		t.Fatalf("unexpected key-up event: %+v", ku)
	}

	md := MouseDown(ButtonRight, 10, 20)
	if md.Phase != MouseButtonDown || md.Button != ButtonRight || md.X != 10 || md.Y != 20 {
		t.Fatalf("unexpected mouse-down event: %+v", md)
	}
	mu := MouseUp(ButtonLeft, 1, 2)
	if mu.Phase != MouseButtonUp || mu.Button != ButtonLeft {
		t.Fatalf("unexpected mouse-up event: %+v", mu)
	}
	mw := MouseWheeled(0, -3, 5, 5)
	if mw.Phase != MouseWheel || mw.WheelY != -3 {
		t.Fatalf("unexpected wheel event: %+v", mw)
	}
}

func TestTouchEventRequiresTouches(t *testing.T) {
	_, err := NewTouchEvent(TouchBegan, nil)
	if !errors.Is(err, ErrNoTouches) {
		t.Fatalf("expected ErrNoTouches, got %v", err)
	}
	_, err = NewTouchEvent(TouchBegan, []Touch{})
	if !errors.Is(err, ErrNoTouches) {
		t.Fatalf("expected ErrNoTouches for empty slice, got %v", err)
	}
}

func TestMultiTouch(t *testing.T) {
	single, err := NewTouchEvent(TouchBegan, []Touch{{ID: 1, X: 100, Y: 100}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.IsMultiTouch() {
		t.Fatalf("one touch is not multi-touch")
	}

	multi, err := NewTouchEvent(TouchBegan, []Touch{
		{ID: 1, X: 100, Y: 100},
		{ID: 2, X: 200, Y: 200},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !multi.IsMultiTouch() {
		t.Fatalf("two touches are multi-touch")
	}
}

func TestModifierPredicatesAgreeWithBitset(t *testing.T) {
	cases := []struct {
		mods                   Modifiers
		shift, ctrl, alt, meta bool
	}{
		{0, false, false, false, false},
		{ModShift, true, false, false, false},
		{ModCtrl, false, true, false, false},
		{ModAlt, false, false, true, false},
		{ModMeta, false, false, false, true},
		{ModShift | ModCtrl | ModAlt | ModMeta, true, true, true, true},
	}
	for _, c := range cases {
		e := KeyDown(Char('a'), c.mods)
		if e.IsShift() != c.shift || e.IsCtrl() != c.ctrl || e.IsAlt() != c.alt || e.IsMeta() != c.meta {
			t.Fatalf("predicates disagree with bitset %b", c.mods)
		}
	}
}

func TestUnifiedDispatch(t *testing.T) {
	h := &countingHandler{}

	touch, err := NewTouchEvent(TouchBegan, []Touch{{ID: 1, X: 100, Y: 100}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := []Event{
		KeyDown(Named(KeyEnter), 0),
		MouseDown(ButtonLeft, 100, 100),
		touch,
	}
	for _, ev := range events {
		Handle(h, ev)
	}

	if h.keyboard != 1 || h.mouse != 1 || h.touch != 1 {
		t.Fatalf("expected counts 1/1/1, got %d/%d/%d", h.keyboard, h.mouse, h.touch)
	}
}

func TestModifierDetectionThroughDispatch(t *testing.T) {
	h := &countingHandler{}

	Handle(h, KeyDown(Char('a'), ModCtrl))
	if !h.lastKey.IsCtrl() || h.lastKey.IsShift() {
		t.Fatalf("first event should report ctrl only, got %+v", h.lastKey)
	}

	Handle(h, KeyDown(Named(KeyTab), ModShift))
	if !h.lastKey.IsShift() {
		t.Fatalf("second event should report shift, got %+v", h.lastKey)
	}

	if h.keyboard != 2 {
		t.Fatalf("expected keyboard count 2, got %d", h.keyboard)
	}
}

func TestMultiTouchDispatchIncrementsOnce(t *testing.T) {
	h := &countingHandler{}
	multi, err := NewTouchEvent(TouchBegan, []Touch{
		{ID: 1, X: 100, Y: 100},
		{ID: 2, X: 200, Y: 200},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Handle(h, multi)
	if h.touch != 1 {
		t.Fatalf("multi-touch event dispatches exactly once, got %d", h.touch)
	}
}

func TestDispatcherStopsAtConsumer(t *testing.T) {
	first := &countingHandler{consume: true}
	second := &countingHandler{}

	d := NewDispatcher()
	d.Register(first)
	d.Register(second)

	if !d.Dispatch(MouseDown(ButtonLeft, 0, 0)) {
		t.Fatalf("expected event to be consumed")
	}
	if second.mouse != 0 {
		t.Fatalf("consumed event must not reach further peers")
	}

	d.Unregister(first)
	if d.Dispatch(MouseDown(ButtonLeft, 0, 0)) {
		t.Fatalf("remaining handler does not consume")
	}
	if second.mouse != 1 {
		t.Fatalf("expected second handler to see the event after unregister")
	}
}
