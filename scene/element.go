package scene

import (
	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/terminal"
)

// Element is a visual element owned by a Scene
type Element interface {
	// Draw writes the element's cells into the frame, never reads terminal state
	Draw(fb *render.FrameBuffer)

	// Update advances internal state for the next frame, no drawing
	Update()

	// Interact consumes one key name and returns an element-specific result
	Interact(key string) (string, error)

	// Dispose releases resources held by the element
	Dispose() error
}

// Viewport is implemented by elements whose content can be panned and zoomed
type Viewport interface {
	Pan(dx, dy int)
	Zoom(delta int)
}

// Base carries the geometry and colors shared by all elements
type Base struct {
	X, Y          int
	Width, Height int
	Fg, Bg        terminal.Color
	Border        render.BorderStyle
}

// Interior returns the content rectangle inside the border
// Width and height are zero when the border consumes the whole element
func (b Base) Interior() (x, y, width, height int) {
	off := render.BorderOffset(b.Border)
	width = b.Width - 2*off
	height = b.Height - 2*off
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return b.X + off, b.Y + off, width, height
}

// DrawBorder draws the element's border in its own colors
func (b Base) DrawBorder(fb *render.FrameBuffer) {
	fb.DrawBorder(b.X, b.Y, b.Width, b.Height, b.Border, b.Fg, b.Bg)
}

// Contains reports whether the absolute cell (x, y) lies inside the element
func (b Base) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}
