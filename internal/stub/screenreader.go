package stub

import (
	"sync"

	"github.com/oakui/oak/a11y"
	"github.com/oakui/oak/component"
)

// ScreenReader is the stub screen-reader backend: it keeps the full
// component registry and speech queue but speaks to no host service.
type ScreenReader struct {
	mu       sync.Mutex
	registry *a11y.Registry
	queue    *a11y.SpeechQueue
	focus    component.ID
	hasFocus bool
}

// NewScreenReader returns an idle stub screen reader.
func NewScreenReader() *ScreenReader {
	return &ScreenReader{
		registry: a11y.NewRegistry(),
		queue:    a11y.NewSpeechQueue(),
	}
}

// BackendName identifies the backend.
func (*ScreenReader) BackendName() string { return "stub" }

// IsEnabled reports whether a host screen reader is active. The stub
// has none; announcements are still queued so behavior is observable.
func (*ScreenReader) IsEnabled() bool { return false }

// Announce queues a according to its priority policy. It never fails,
// regardless of enablement.
func (s *ScreenReader) Announce(a a11y.Announcement) error {
	s.queue.Enqueue(a)
	return nil
}

// Stop flushes the speech queue. The component registry is untouched.
func (s *ScreenReader) Stop() {
	s.queue.Stop()
}

// UpdateComponent upserts the accessibility props for id.
func (s *ScreenReader) UpdateComponent(id component.ID, props a11y.Props) {
	s.registry.Update(id, props)
}

// RemoveComponent drops the props for id. Idempotent.
func (s *ScreenReader) RemoveComponent(id component.ID) {
	s.registry.Remove(id)
}

// SetFocus records id as the focused component. Focus changes do not
// announce by themselves.
func (s *ScreenReader) SetFocus(id component.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus = id
	s.hasFocus = true
}

// ClearFocus drops the focus record.
func (s *ScreenReader) ClearFocus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus = 0
	s.hasFocus = false
}

// Focus returns the focused component, if any.
func (s *ScreenReader) Focus() (component.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus, s.hasFocus
}

// Registry exposes the backend's component registry.
func (s *ScreenReader) Registry() *a11y.Registry {
	return s.registry
}

// Queue exposes the backend's speech queue.
func (s *ScreenReader) Queue() *a11y.SpeechQueue {
	return s.queue
}
