package render

import (
	"github.com/lixenwraith/consolegui/terminal"
)

// FrameBuffer is a fixed-size double-buffered cell grid
// current is built by writes between flushes, previous mirrors what is on screen
// Both grids are row-major (y*width + x) and never resized
type FrameBuffer struct {
	current  []Cell
	previous []Cell
	width    int
	height   int
}

// New creates a frame buffer with the specified dimensions
// previous starts as zero cells so the first flush paints every cell
func New(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	b := &FrameBuffer{
		current:  make([]Cell, size),
		previous: make([]Cell, size),
		width:    width,
		height:   height,
	}
	b.clear(terminal.ColorDefault)
	return b
}

// Size returns grid dimensions
func (b *FrameBuffer) Size() (width, height int) {
	return b.width, b.height
}

// inBounds returns true if in grid bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell of the frame being built
func (b *FrameBuffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.current[y*b.width+x], true
}

// Write sets one cell of the current frame
// Out-of-bounds writes are ignored, elements rely on this for edge clipping
func (b *FrameBuffer) Write(x, y int, glyph rune, fg, bg terminal.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.current[y*b.width+x] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// WriteText writes text left to right starting at (x, y), one rune per cell
// Stops at the first rune that would land outside the grid, returns runes written
func (b *FrameBuffer) WriteText(x, y int, text string, fg, bg terminal.Color) int {
	n := 0
	for _, r := range text {
		if !b.inBounds(x+n, y) {
			break
		}
		b.current[y*b.width+x+n] = Cell{Glyph: r, Fg: fg, Bg: bg}
		n++
	}
	return n
}

// Fill writes glyph over a rectangle, clipped to the grid
func (b *FrameBuffer) Fill(x, y, width, height int, glyph rune, fg, bg terminal.Color) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			b.Write(col, row, glyph, fg, bg)
		}
	}
}

// Flush emits every cell whose glyph, fg or bg differs from the previous frame,
// in row-major order, then promotes current to previous and clears current to
// bg for the next frame. Returns the number of cells emitted
func (b *FrameBuffer) Flush(out terminal.Output, bg terminal.Color) (int, error) {
	emitted := 0
	for y := 0; y < b.height; y++ {
		rowStart := y * b.width
		for x := 0; x < b.width; x++ {
			idx := rowStart + x
			c := b.current[idx]
			if c == b.previous[idx] {
				continue
			}
			out.SetCell(x, y, c.Glyph, c.Fg, c.Bg)
			emitted++
		}
	}

	copy(b.previous, b.current)
	b.clear(bg)

	out.Home()
	return emitted, out.Show()
}

// Invalidate forgets the previous frame so the next flush repaints everything
// Use after the physical screen was cleared or resized externally
func (b *FrameBuffer) Invalidate() {
	for i := range b.previous {
		b.previous[i] = Cell{}
	}
}

// clear resets current to blank using exponential copy
func (b *FrameBuffer) clear(bg terminal.Color) {
	if len(b.current) == 0 {
		return
	}
	b.current[0] = blankCell(bg)
	for filled := 1; filled < len(b.current); filled *= 2 {
		copy(b.current[filled:], b.current[:filled])
	}
}
