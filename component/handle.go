package component

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// maxReaders bounds concurrent readers of a handle. A writer acquires
// the full weight, excluding all readers.
const maxReaders = 1 << 30

// Handle is the shared ownership wrapper for a component's properties:
// a reference-counted cell guarded by an asynchronous read/write lock.
// Any number of readers or a single writer hold the lock at a time;
// contended acquisition suspends the goroutine rather than spinning,
// and honors context cancellation.
//
// Handles are shared by pointer; the component lives as long as the
// longest-held reference.
type Handle struct {
	id    ID
	sem   *semaphore.Weighted
	props Properties
}

var _ Component = (*Handle)(nil)

// NewHandle wraps props in a shared handle.
func NewHandle(props Properties) *Handle {
	return &Handle{
		id:    props.ID,
		sem:   semaphore.NewWeighted(maxReaders),
		props: props,
	}
}

// New creates a handle with default properties for id.
func New(id ID) *Handle {
	return NewHandle(NewProperties(id))
}

// ID returns the component's logical identity. Never blocks: the ID
// lives outside the locked record and is immutable after construction.
func (h *Handle) ID() ID {
	return h.id
}

// ReadProps returns a snapshot of the properties, suspending while a
// writer holds the lock. A cancelled ctx returns ctx.Err() with the
// zero Properties.
func (h *Handle) ReadProps(ctx context.Context) (Properties, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return Properties{}, err
	}
	defer h.sem.Release(1)
	return h.props, nil
}

// WriteProps runs fn with exclusive access to the properties,
// suspending while any reader or writer holds the lock. A cancelled
// ctx returns ctx.Err() without running fn. The ID field is pinned:
// fn may not change a component's identity.
func (h *Handle) WriteProps(ctx context.Context, fn func(*Properties)) error {
	if err := h.sem.Acquire(ctx, maxReaders); err != nil {
		return err
	}
	defer h.sem.Release(maxReaders)

	fn(&h.props)
	h.props.ID = h.id
	if h.props.Bounds.Width < 0 {
		h.props.Bounds.Width = 0
	}
	if h.props.Bounds.Height < 0 {
		h.props.Bounds.Height = 0
	}
	return nil
}
