package component

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakui/oak/geom"
)

func TestNewPropertiesDefaults(t *testing.T) {
	p := NewProperties(42)
	assert.Equal(t, ID(42), p.ID)
	assert.True(t, p.Visible, "components start visible")
	assert.True(t, p.Enabled, "components start enabled")
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, p.Bounds)
}

func TestHandleReadWrite(t *testing.T) {
	ctx := context.Background()
	h := New(7)

	require.Equal(t, ID(7), h.ID())

	err := h.WriteProps(ctx, func(p *Properties) {
		p.Visible = false
		p.Bounds = geom.NewRect(10, 10, 200, 50)
	})
	require.NoError(t, err)

	p, err := h.ReadProps(ctx)
	require.NoError(t, err)
	assert.False(t, p.Visible)
	assert.Equal(t, float32(200), p.Bounds.Width)
}

func TestHandleWriteCannotChangeID(t *testing.T) {
	ctx := context.Background()
	h := New(1)

	err := h.WriteProps(ctx, func(p *Properties) { p.ID = 99 })
	require.NoError(t, err)
	assert.Equal(t, ID(1), h.ID(), "identity is pinned across writes")
}

func TestHandleWriteClampsBounds(t *testing.T) {
	ctx := context.Background()
	h := New(1)

	err := h.WriteProps(ctx, func(p *Properties) {
		p.Bounds = geom.Rect{X: 0, Y: 0, Width: -3, Height: -4}
	})
	require.NoError(t, err)

	p, err := h.ReadProps(ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(0), p.Bounds.Width)
	assert.Equal(t, float32(0), p.Bounds.Height)
}

func TestHandleReadCancelledWhileWriterHeld(t *testing.T) {
	h := New(1)

	writerIn := make(chan struct{})
	writerOut := make(chan struct{})
	go func() {
		_ = h.WriteProps(context.Background(), func(p *Properties) {
			close(writerIn)
			<-writerOut
		})
	}()
	<-writerIn

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := h.ReadProps(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	close(writerOut)

	// Once the writer releases, reads succeed again.
	p, err := h.ReadProps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ID(1), p.ID)
}

func TestHandleConcurrentReaders(t *testing.T) {
	h := New(1)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if j%10 == 0 {
					_ = h.WriteProps(ctx, func(p *Properties) { p.Enabled = !p.Enabled })
				} else {
					_, _ = h.ReadProps(ctx)
				}
			}
		}()
	}
	wg.Wait()

	_, err := h.ReadProps(ctx)
	require.NoError(t, err)
}

func TestHandleIDSafeDuringWrites(t *testing.T) {
	h := New(9)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = h.WriteProps(ctx, func(p *Properties) {
				p.ID = ID(i) // reverted on return; must not be visible to ID()
				p.Visible = !p.Visible
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			assert.Equal(t, ID(9), h.ID())
		}
	}()
	wg.Wait()
}

func TestRegistryUniqueIDs(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Add(New(1)))
	require.NoError(t, r.Add(New(2)))

	err := r.Add(New(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, 2, r.Len())
}

func TestRegistryRemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(New(5)))

	assert.True(t, r.Remove(5))
	assert.False(t, r.Remove(5), "second removal is a no-op")
	assert.Equal(t, 0, r.Len())

	_, ok := r.Get(5)
	assert.False(t, ok)
}

func TestRegistryHitTestTopmostVisible(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	bottom := New(1)
	top := New(2)
	hidden := New(3)
	require.NoError(t, SetBounds(ctx, bottom, geom.NewRect(0, 0, 100, 100)))
	require.NoError(t, SetBounds(ctx, top, geom.NewRect(50, 50, 100, 100)))
	require.NoError(t, SetBounds(ctx, hidden, geom.NewRect(0, 0, 300, 300)))
	require.NoError(t, SetVisible(ctx, hidden, false))

	require.NoError(t, r.Add(bottom))
	require.NoError(t, r.Add(top))
	require.NoError(t, r.Add(hidden))

	c, ok, err := r.HitTest(ctx, 60, 60)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ID(2), c.ID(), "later additions win in the overlap")

	c, ok, err = r.HitTest(ctx, 10, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ID(1), c.ID(), "invisible components are skipped")

	_, ok, err = r.HitTest(ctx, 500, 500)
	require.NoError(t, err)
	assert.False(t, ok)
}
