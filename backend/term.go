package backend

import (
	"github.com/oakui/oak/internal/term"
)

// termRenderer adapts the terminal renderer to the contract's
// interface return type.
type termRenderer struct {
	r *term.Renderer
}

func (t termRenderer) Name() string { return t.r.Name() }

func (t termRenderer) CreateContext(width, height int) (RenderContext, error) {
	return t.r.CreateContext(width, height)
}
