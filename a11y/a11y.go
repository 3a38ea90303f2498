// Package a11y defines the accessibility bridge: the per-component
// semantic properties mirrored into a screen-reader backend, the
// prioritized announcements forwarded to the host accessibility
// service, and the registry every screen-reader backend keeps.
package a11y

import (
	"sort"
	"sync"

	"github.com/oakui/oak/component"
)

// Props are the semantic properties of one component as exposed to
// assistive technology.
type Props struct {
	Role        string
	Label       string
	Description string
	Value       string

	Focusable bool
	Focused   bool
	Disabled  bool
	Hidden    bool
}

// Priority selects the interruption policy of an announcement.
type Priority int

const (
	// PriorityLow announcements are appended and never interrupt.
	PriorityLow Priority = iota
	// PriorityMedium announcements are appended and interrupt a Low
	// announcement currently being spoken.
	PriorityMedium
	// PriorityHigh announcements flush the queue and speak immediately.
	PriorityHigh
)

// Announcement is a prioritized utterance for the host screen reader.
type Announcement struct {
	Priority Priority
	Text     string
}

// Registry is the ComponentId to Props mapping kept inside each
// screen-reader backend. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	props map[component.ID]Props
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{props: make(map[component.ID]Props)}
}

// Update upserts the props for id.
func (r *Registry) Update(id component.ID, p Props) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[id] = p
}

// Remove deletes the props for id. Removing an absent id is a no-op.
func (r *Registry) Remove(id component.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.props, id)
}

// Get returns the props registered for id.
func (r *Registry) Get(id component.ID) (Props, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.props[id]
	return p, ok
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.props)
}

// IDs returns the registered IDs in ascending order.
func (r *Registry) IDs() []component.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]component.ID, 0, len(r.props))
	for id := range r.props {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
