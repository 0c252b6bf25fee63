package terminal

import (
	"strings"
)

// Write is one positioned cell write received by a Capture
type Write struct {
	X, Y  int
	Glyph rune
	Fg    Color
	Bg    Color
}

// Capture is an in-memory Output that records every write and keeps the
// resulting screen contents, for headless rendering and tests
type Capture struct {
	width  int
	height int
	screen []Write

	// Writes holds every SetCell since the last Reset, in arrival order
	Writes []Write
	// Homes counts Home calls
	Homes int
	// Shows counts Show calls
	Shows int
}

// NewCapture creates a capture screen of the given size, initially blank
func NewCapture(width, height int) *Capture {
	c := &Capture{
		width:  width,
		height: height,
		screen: make([]Write, width*height),
	}
	for i := range c.screen {
		c.screen[i] = Write{X: i % width, Y: i / width, Glyph: ' '}
	}
	return c
}

func (c *Capture) SetCell(x, y int, glyph rune, fg, bg Color) {
	w := Write{X: x, Y: y, Glyph: glyph, Fg: fg, Bg: bg}
	c.Writes = append(c.Writes, w)
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.screen[y*c.width+x] = w
	}
}

func (c *Capture) Home() {
	c.Homes++
}

func (c *Capture) Show() error {
	c.Shows++
	return nil
}

// Reset forgets recorded writes, screen contents are kept
func (c *Capture) Reset() {
	c.Writes = c.Writes[:0]
	c.Homes = 0
	c.Shows = 0
}

// Cell returns what is currently on screen at (x, y)
func (c *Capture) Cell(x, y int) (Write, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Write{}, false
	}
	return c.screen[y*c.width+x], true
}

// Row returns the glyphs of screen row y as a string
func (c *Capture) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		r := c.screen[y*c.width+x].Glyph
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// String returns the whole screen, one line per row
func (c *Capture) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.WriteString(strings.TrimRight(c.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
