package component

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateID is returned when adding a component whose ID is
// already registered.
var ErrDuplicateID = fmt.Errorf("component id already registered")

// Registry is a root-level collection of live components. Each live ID
// maps to at most one component instance within a registry. Insertion
// order is retained: later additions are considered on top for hit
// testing.
type Registry struct {
	mu         sync.RWMutex
	components map[ID]Component
	order      []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[ID]Component)}
}

// Add registers c. It fails with ErrDuplicateID if another component
// with the same ID is already present.
func (r *Registry) Add(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := c.ID()
	if _, exists := r.components[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	r.components[id] = c
	r.order = append(r.order, id)
	return nil
}

// Remove unregisters the component with the given ID. Removing an
// absent ID is a no-op; the return value reports whether anything was
// removed.
func (r *Registry) Remove(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[id]; !exists {
		return false
	}
	delete(r.components, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the component registered under id.
func (r *Registry) Get(id ID) (Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[id]
	return c, ok
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components)
}

// IDs returns the registered IDs in ascending order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.components))
	for id := range r.components {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HitTest returns the topmost visible component whose bounds contain
// (x, y). Topmost means most recently added. Invisible components are
// skipped; disabled ones are still hit (enablement gates input
// dispatch, not hit testing).
func (r *Registry) HitTest(ctx context.Context, x, y float32) (Component, bool, error) {
	r.mu.RLock()
	stack := make([]Component, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.components[id]; ok {
			stack = append(stack, c)
		}
	}
	r.mu.RUnlock()

	for i := len(stack) - 1; i >= 0; i-- {
		p, err := stack[i].ReadProps(ctx)
		if err != nil {
			return nil, false, err
		}
		if p.Visible && p.Bounds.Contains(x, y) {
			return stack[i], true, nil
		}
	}
	return nil, false, nil
}
