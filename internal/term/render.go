// Package term implements the terminal backend: a cell-buffer renderer
// styled with lipgloss, a window backed by the controlling terminal and
// an input translation layer for bubbletea messages.
package term

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakui/oak/internal/stub"
	"github.com/oakui/oak/render"
)

// Logical pixels per terminal cell. A cell is roughly twice as tall as
// it is wide in common monospace fonts.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Renderer is the terminal render backend.
type Renderer struct{}

// NewRenderer returns the terminal render backend.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Name identifies the backend.
func (*Renderer) Name() string { return "terminal" }

// CreateContext returns a cell-buffer context covering width x height
// logical pixels.
func (*Renderer) CreateContext(width, height int) (*Context, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("render context size %dx%d is negative", width, height)
	}
	cols := (width + CellWidth - 1) / CellWidth
	rows := (height + CellHeight - 1) / CellHeight
	c := &Context{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
	}
	c.cells = blankCells(cols, rows, render.Black)
	c.frame = blankCells(cols, rows, render.Black)
	return c, nil
}

type cell struct {
	ch rune
	fg render.Color
	bg render.Color
}

// Context rasterizes render commands into a terminal cell grid.
type Context struct {
	mu      sync.Mutex
	width   int
	height  int
	cols    int
	rows    int
	inFrame bool
	bg      render.Color
	frame   []cell // cells of the open frame
	cells   []cell // cells of the last completed frame
}

// Size returns the logical pixel dimensions the context was created
// with.
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// BeginFrame opens a frame. A second call without EndFrame is ignored.
func (c *Context) BeginFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFrame {
		return
	}
	c.inFrame = true
	c.frame = blankCells(c.cols, c.rows, c.bg)
}

// EndFrame closes the frame and publishes its cells. Without an open
// frame it is a no-op.
func (c *Context) EndFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inFrame {
		return
	}
	c.inFrame = false
	c.cells = append(c.cells[:0], c.frame...)
}

// ExecuteBatch rasterizes commands into the open frame. Outside a
// frame the batch is dropped. The batch is atomic: any invalid command
// reverts the frame to blank cells in the background color.
func (c *Context) ExecuteBatch(cmds []render.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inFrame {
		return nil
	}
	for _, cmd := range cmds {
		if err := stub.ValidateCommand(cmd); err != nil {
			c.frame = blankCells(c.cols, c.rows, c.bg)
			return err
		}
	}
	for _, cmd := range cmds {
		c.raster(cmd)
	}
	return nil
}

// String renders the last completed frame as styled terminal output.
func (c *Context) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorHex(cl.fg))).
				Background(lipgloss.Color(colorHex(cl.bg)))
			b.WriteString(style.Render(string(cl.ch)))
		}
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CellAt returns the rune of the last completed frame at (col, row).
// Out-of-range positions return a space.
func (c *Context) CellAt(col, row int) rune {
	c.mu.Lock()
	defer c.mu.Unlock()
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ' '
	}
	return c.cells[row*c.cols+col].ch
}

// Grid returns the cell grid dimensions.
func (c *Context) Grid() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Context) raster(cmd render.Command) {
	switch v := cmd.(type) {
	case render.Clear:
		c.bg = v.Color
		c.frame = blankCells(c.cols, c.rows, v.Color)
	case render.FillRect:
		c.eachCell(v.Rect.X, v.Rect.Y, v.Rect.Width, v.Rect.Height, func(i int) {
			c.frame[i].bg = v.Color
			c.frame[i].ch = ' '
		})
	case render.StrokeRect:
		c.strokeRect(v)
	case render.Line:
		c.line(v)
	case render.Text:
		c.text(v)
	}
}

func (c *Context) eachCell(x, y, w, h float32, fn func(i int)) {
	c0 := int(x) / CellWidth
	r0 := int(y) / CellHeight
	c1 := int(x+w-1) / CellWidth
	r1 := int(y+h-1) / CellHeight
	for row := max(r0, 0); row <= r1 && row < c.rows; row++ {
		for col := max(c0, 0); col <= c1 && col < c.cols; col++ {
			fn(row*c.cols + col)
		}
	}
}

func (c *Context) strokeRect(v render.StrokeRect) {
	c0 := int(v.Rect.X) / CellWidth
	r0 := int(v.Rect.Y) / CellHeight
	c1 := int(v.Rect.Right()-1) / CellWidth
	r1 := int(v.Rect.Bottom()-1) / CellHeight
	for col := max(c0, 0); col <= c1 && col < c.cols; col++ {
		c.put(col, r0, '─', v.Color)
		c.put(col, r1, '─', v.Color)
	}
	for row := max(r0, 0); row <= r1 && row < c.rows; row++ {
		c.put(c0, row, '│', v.Color)
		c.put(c1, row, '│', v.Color)
	}
	c.put(c0, r0, '┌', v.Color)
	c.put(c1, r0, '┐', v.Color)
	c.put(c0, r1, '└', v.Color)
	c.put(c1, r1, '┘', v.Color)
}

func (c *Context) line(v render.Line) {
	// Bresenham in cell space.
	x0, y0 := int(v.X1)/CellWidth, int(v.Y1)/CellHeight
	x1, y1 := int(v.X2)/CellWidth, int(v.Y2)/CellHeight
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.put(x0, y0, '█', v.Color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Context) text(v render.Text) {
	runes := []rune(v.Text)
	// Y is the baseline; the glyph row sits just above it.
	row := int(v.Y-1) / CellHeight
	col := int(v.X) / CellWidth
	switch v.Align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	for i, r := range runes {
		c.put(col+i, row, r, v.Color)
	}
}

func (c *Context) put(col, row int, ch rune, fg render.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	i := row*c.cols + col
	c.frame[i].ch = ch
	c.frame[i].fg = fg
}

func blankCells(cols, rows int, bg render.Color) []cell {
	cells := make([]cell, cols*rows)
	for i := range cells {
		cells[i] = cell{ch: ' ', fg: render.RGB(1, 1, 1), bg: bg}
	}
	return cells
}

func colorHex(c render.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
