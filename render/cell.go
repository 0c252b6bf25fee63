package render

import (
	"github.com/lixenwraith/consolegui/terminal"
)

// Blank is the glyph of an empty cell
const Blank = ' '

// Cell is one grid position: a glyph and its color pair
type Cell struct {
	Glyph rune
	Fg    terminal.Color
	Bg    terminal.Color
}

// blankCell returns the cleared state of a cell on a bg screen
func blankCell(bg terminal.Color) Cell {
	return Cell{Glyph: Blank, Fg: terminal.ColorDefault, Bg: bg}
}
