package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/scene"
)

// ellipsis marks truncated status text
const ellipsis = '…'

// wideGlyph stands in for a rune wider than one column
const wideGlyph = '?'

// StatusLine is a text strip whose content is pulled from Source on Update
// Text longer than the interior is cut with an ellipsis
type StatusLine struct {
	scene.Base
	Source func() string
	text   string
}

// NewStatusLine creates a status line, source may be nil for SetText use
func NewStatusLine(base scene.Base, source func() string) *StatusLine {
	return &StatusLine{Base: base, Source: source}
}

// SetText replaces the displayed text until the next Update
func (s *StatusLine) SetText(text string) {
	s.text = text
}

// Text returns the displayed text before truncation
func (s *StatusLine) Text() string {
	return s.text
}

func (s *StatusLine) Update() {
	if s.Source != nil {
		s.text = s.Source()
	}
}

func (s *StatusLine) Draw(fb *render.FrameBuffer) {
	s.DrawBorder(fb)

	x, y, w, h := s.Interior()
	if w == 0 || h == 0 {
		return
	}
	fb.Fill(x, y, w, h, render.Blank, s.Fg, s.Bg)
	fb.WriteText(x, y, fitCells(s.text, w), s.Fg, s.Bg)
}

// fitCells maps text onto at most width one-column cells
// Zero-width runes are dropped and wide runes replaced, so every rune
// occupies exactly the one cell the frame buffer gives it
func fitCells(text string, width int) string {
	cells := make([]rune, 0, len(text))
	for _, r := range text {
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 1:
			cells = append(cells, r)
		default:
			cells = append(cells, wideGlyph)
		}
	}
	if len(cells) <= width {
		return string(cells)
	}
	if width <= 0 {
		return ""
	}
	cells = append(cells[:width-1], ellipsis)
	return string(cells)
}

func (s *StatusLine) Interact(string) (string, error) {
	return "", nil
}

func (s *StatusLine) Dispose() error {
	return nil
}
