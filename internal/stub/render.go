// Package stub provides the fallback backends: fully functional
// in-memory implementations of the render, window and screen-reader
// contracts that touch no host services and never fail fatally. They
// back the Unknown platform and any platform whose native services are
// unavailable.
package stub

import (
	"fmt"
	"math"
	"sync"

	"github.com/oakui/oak/render"
)

// Renderer is the stub render backend. Contexts record the commands
// of the current frame so embedders and tests can observe what would
// have been drawn.
type Renderer struct{}

// NewRenderer returns the stub render backend.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Name identifies the backend.
func (*Renderer) Name() string { return "stub" }

// CreateContext returns an independent in-memory render context of the
// given size.
func (*Renderer) CreateContext(width, height int) (*Context, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("render context size %dx%d is negative", width, height)
	}
	return &Context{width: width, height: height}, nil
}

// Context is an in-memory render context. Frames are serialized by an
// internal lock; ExecuteBatch is synchronous and never suspends.
type Context struct {
	mu         sync.Mutex
	width      int
	height     int
	inFrame    bool
	frame      []render.Command
	lastFrame  []render.Command
	background render.Color
}

// Size returns the dimensions the context was created with.
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// BeginFrame opens a frame. Calling it while a frame is already open
// is invalid and ignored.
func (c *Context) BeginFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFrame {
		return
	}
	c.inFrame = true
	c.frame = c.frame[:0]
}

// EndFrame closes the frame and publishes its commands. Calling it
// without an open frame is a no-op.
func (c *Context) EndFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inFrame {
		return
	}
	c.inFrame = false
	c.lastFrame = append(c.lastFrame[:0], c.frame...)
}

// ExecuteBatch appends commands to the open frame. Outside a frame the
// batch is dropped and the context state is unchanged. The batch is
// atomic: if any command is invalid, the whole frame reverts to a
// blank frame in the background color and the error is returned.
func (c *Context) ExecuteBatch(cmds []render.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inFrame {
		return nil
	}
	for _, cmd := range cmds {
		if err := ValidateCommand(cmd); err != nil {
			c.frame = append(c.frame[:0], render.Clear{Color: c.background})
			return err
		}
	}
	for _, cmd := range cmds {
		if clear, ok := cmd.(render.Clear); ok {
			c.background = clear.Color
		}
		c.frame = append(c.frame, cmd)
	}
	return nil
}

// FrameCommands returns a copy of the most recently completed frame.
func (c *Context) FrameCommands() []render.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]render.Command, len(c.lastFrame))
	copy(out, c.lastFrame)
	return out
}

// PendingCommands returns a copy of the commands accumulated in the
// currently open frame.
func (c *Context) PendingCommands() []render.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]render.Command, len(c.frame))
	copy(out, c.frame)
	return out
}

// ValidateCommand checks a render command for structurally invalid
// payloads. Shared by the backends that honor atomic batch semantics.
func ValidateCommand(cmd render.Command) error {
	switch v := cmd.(type) {
	case render.Clear:
		return nil
	case render.FillRect:
		return finite("fill_rect", v.Rect.X, v.Rect.Y, v.Rect.Width, v.Rect.Height)
	case render.StrokeRect:
		if v.Width < 0 {
			return fmt.Errorf("stroke_rect: negative stroke width %v", v.Width)
		}
		return finite("stroke_rect", v.Rect.X, v.Rect.Y, v.Rect.Width, v.Rect.Height)
	case render.Line:
		if v.Width < 0 {
			return fmt.Errorf("line: negative stroke width %v", v.Width)
		}
		return finite("line", v.X1, v.Y1, v.X2, v.Y2)
	case render.Text:
		if v.FontSize <= 0 {
			return fmt.Errorf("text: font size %v is not positive", v.FontSize)
		}
		return finite("text", v.X, v.Y)
	default:
		return fmt.Errorf("unknown render command %T", cmd)
	}
}

func finite(name string, vals ...float32) error {
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: non-finite coordinate %v", name, v)
		}
	}
	return nil
}
