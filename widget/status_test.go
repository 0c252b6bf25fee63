package widget

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/consolegui/scene"
	"github.com/lixenwraith/consolegui/terminal"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"Fits", "ready", 8, "ready   "},
		{"Exact", "12345678", 8, "12345678"},
		{"Truncated", "zoom 2 offset 10,4", 8, "zoom 2 …"},
		{"Wide runes", "日本 ok", 8, "?? ok   "},
		{"Wide runes truncated", "日本語テキスト", 5, "????…"},
		{"Combining mark", "e\u0301!", 3, "e! "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatusLine(scene.Base{Width: tt.width, Height: 1, Bg: terminal.ColorBlue}, nil)
			s.SetText(tt.text)
			out, rows := renderRows(t, s, tt.width, 1)
			if rows[0] != tt.want {
				t.Errorf("row = %q, want %q", rows[0], tt.want)
			}
			if c, _ := out.Cell(tt.width-1, 0); c.Bg != terminal.ColorBlue {
				t.Errorf("trailing bg = %v", c.Bg)
			}
		})
	}
}

func TestFitCellsMatchesCellCount(t *testing.T) {
	for _, text := range []string{"", "ascii", "日本語テキスト", "mixed 日本 text", "e\u0301"} {
		for width := 0; width <= 10; width++ {
			got := []rune(fitCells(text, width))
			if len(got) > width {
				t.Errorf("fitCells(%q, %d) = %d runes", text, width, len(got))
			}
			if cols := runewidthOf(got); cols != len(got) {
				t.Errorf("fitCells(%q, %d) occupies %d columns in %d cells", text, width, cols, len(got))
			}
		}
	}
}

func TestStatusLineSource(t *testing.T) {
	n := 0
	s := NewStatusLine(scene.Base{Width: 10, Height: 1}, func() string {
		n++
		return "tick"
	})
	if s.Text() != "" {
		t.Errorf("text before Update = %q", s.Text())
	}
	s.Update()
	s.Update()
	if s.Text() != "tick" || n != 2 {
		t.Errorf("text = %q after %d pulls", s.Text(), n)
	}
}

func runewidthOf(rs []rune) int {
	return runewidth.StringWidth(string(rs))
}
