package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/consolegui/terminal"
)

// BorderStyle specifies box drawing character style
type BorderStyle uint8

const (
	BorderNone   BorderStyle = iota // no border, content uses the full rectangle
	BorderSingle                    // ┌─┐│└┘
	BorderDouble                    // ╔═╗║╚╝
)

// boxChars contains box drawing character sets indexed by BorderStyle
var boxChars = [...][6]rune{
	BorderSingle: {'┌', '─', '┐', '│', '└', '┘'},
	BorderDouble: {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

var borderNames = [...]string{
	BorderNone:   "none",
	BorderSingle: "single",
	BorderDouble: "double",
}

func (s BorderStyle) String() string {
	if int(s) < len(borderNames) {
		return borderNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", s)
}

// ParseBorderStyle resolves a config name
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return BorderNone, nil
	case "single", "line":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	}
	return BorderNone, fmt.Errorf("unknown border style %q", name)
}

// BorderOffset is the inset interior content needs to clear the border
func BorderOffset(style BorderStyle) int {
	if style == BorderNone || int(style) >= len(boxChars) {
		return 0
	}
	return 1
}

// DrawBorder draws the outermost ring of the width x height rectangle at (x, y)
// Parts falling outside the grid are clipped
func (b *FrameBuffer) DrawBorder(x, y, width, height int, style BorderStyle, fg, bg terminal.Color) {
	if BorderOffset(style) == 0 || width < 1 || height < 1 {
		return
	}
	chars := boxChars[style]
	right := x + width - 1
	bottom := y + height - 1

	// Horizontal edges
	for col := x + 1; col < right; col++ {
		b.Write(col, y, chars[boxH], fg, bg)
		b.Write(col, bottom, chars[boxH], fg, bg)
	}

	// Vertical edges
	for row := y + 1; row < bottom; row++ {
		b.Write(x, row, chars[boxV], fg, bg)
		b.Write(right, row, chars[boxV], fg, bg)
	}

	// Corners last so degenerate 1-wide or 1-tall rectangles end on corner glyphs
	b.Write(x, y, chars[boxTL], fg, bg)
	b.Write(right, y, chars[boxTR], fg, bg)
	b.Write(x, bottom, chars[boxBL], fg, bg)
	b.Write(right, bottom, chars[boxBR], fg, bg)
}
