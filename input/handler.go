package input

import "sync"

// Handler receives type-specific input callbacks. Each returns whether
// the event was consumed; a consumed event is not delivered to further
// peers. Handlers may mutate their own state but must not block the
// dispatcher for long.
type Handler interface {
	HandleKeyboard(KeyboardEvent) bool
	HandleMouse(MouseEvent) bool
	HandleTouch(TouchEvent) bool
}

// BaseHandler is a Handler that consumes nothing. Embed it to override
// only the callbacks a type cares about.
type BaseHandler struct{}

func (BaseHandler) HandleKeyboard(KeyboardEvent) bool { return false }
func (BaseHandler) HandleMouse(MouseEvent) bool       { return false }
func (BaseHandler) HandleTouch(TouchEvent) bool       { return false }

// Handle tag-dispatches ev to the matching type-specific callback of h
// and reports whether the event was consumed.
func Handle(h Handler, ev Event) bool {
	switch e := ev.(type) {
	case KeyboardEvent:
		return h.HandleKeyboard(e)
	case MouseEvent:
		return h.HandleMouse(e)
	case TouchEvent:
		return h.HandleTouch(e)
	}
	return false
}

// Dispatcher fans input events out to registered handlers in
// registration order, stopping at the first handler that consumes the
// event. Dispatch is serial: the handler for one event runs to
// completion before the next event is delivered.
type Dispatcher struct {
	mu       sync.Mutex
	handlers []Handler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register appends h to the dispatch chain.
func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Unregister removes h from the dispatch chain. Absent handlers are a
// no-op.
func (d *Dispatcher) Unregister(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, reg := range d.handlers {
		if reg == h {
			d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to the handlers in order and reports whether any
// handler consumed it. The lock serializes dispatch across goroutines.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, h := range d.handlers {
		if Handle(h, ev) {
			return true
		}
	}
	return false
}
