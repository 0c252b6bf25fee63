package widget

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/scene"
	"github.com/lixenwraith/consolegui/terminal"
)

func textImage(t *testing.T, lines ...string) *Image {
	t.Helper()
	img, err := ImageFromText(lines, terminal.ColorWhite, terminal.ColorBlue)
	if err != nil {
		t.Fatalf("ImageFromText: %v", err)
	}
	return img
}

func TestNewImageValidates(t *testing.T) {
	colors := func(n int) []terminal.Color { return make([]terminal.Color, n) }

	tests := []struct {
		name          string
		width, height int
		glyphs        int
		fg, bg        int
	}{
		{"Zero width", 0, 2, 0, 0, 0},
		{"Negative height", 2, -1, 0, 0, 0},
		{"Short glyphs", 2, 2, 3, 4, 4},
		{"Short fg", 2, 2, 4, 3, 4},
		{"Long bg", 2, 2, 4, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImage(tt.width, tt.height, make([]rune, tt.glyphs), colors(tt.fg), colors(tt.bg))
			if !errors.Is(err, ErrMalformedImage) {
				t.Errorf("error = %v, want ErrMalformedImage", err)
			}
		})
	}

	if _, err := NewImage(2, 1, []rune("ab"), colors(2), colors(2)); err != nil {
		t.Errorf("valid image rejected: %v", err)
	}
}

func TestImageAt(t *testing.T) {
	img := textImage(t, "abc", "def")
	if c, ok := img.At(2, 1); !ok || c.Glyph != 'f' || c.Bg != terminal.ColorBlue {
		t.Errorf("At(2,1) = %+v, %v", c, ok)
	}
	// Past the right edge must not wrap into the next row
	for _, pos := range [][2]int{{3, 0}, {-1, 1}, {0, 2}, {0, -1}} {
		if _, ok := img.At(pos[0], pos[1]); ok {
			t.Errorf("At(%d,%d) reported in range", pos[0], pos[1])
		}
	}
}

func TestImageViewDraw(t *testing.T) {
	img := textImage(t, "abc", "def")

	tests := []struct {
		name       string
		ox, oy     int
		zoom       int
		wantRows   []string
		wantBlankX int
		wantBlankY int
	}{
		{"Origin", 0, 0, 1, []string{"abc ", "def ", "    "}, 3, 0},
		{"Panned right", 1, 0, 1, []string{"bc  ", "ef  ", "    "}, 2, 0},
		{"Negative offset", -1, -1, 1, []string{"    ", " abc", " def"}, 0, 0},
		{"Beyond image", 10, 10, 1, []string{"    ", "    ", "    "}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewImageView(scene.Base{Width: 4, Height: 3, Fg: terminal.ColorRed, Bg: terminal.ColorGreen}, img)
			view.SetOffset(tt.ox, tt.oy)
			view.SetZoom(tt.zoom)

			out, rows := renderRows(t, view, 4, 3)
			if !reflect.DeepEqual(rows, tt.wantRows) {
				t.Errorf("rows = %q, want %q", rows, tt.wantRows)
			}
			c, _ := out.Cell(tt.wantBlankX, tt.wantBlankY)
			if c.Glyph != render.Blank || c.Fg != terminal.ColorRed || c.Bg != terminal.ColorGreen {
				t.Errorf("out-of-range cell = %+v, want blank in element colors", c)
			}
		})
	}
}

func TestImageViewPixelColors(t *testing.T) {
	img, err := NewImage(2, 1, []rune("xy"),
		[]terminal.Color{terminal.ColorRed, terminal.ColorYellow},
		[]terminal.Color{terminal.ColorBlack, terminal.ColorCyan})
	if err != nil {
		t.Fatal(err)
	}
	view := NewImageView(scene.Base{Width: 2, Height: 1}, img)
	out, _ := renderRows(t, view, 2, 1)

	c, _ := out.Cell(1, 0)
	if c.Glyph != 'y' || c.Fg != terminal.ColorYellow || c.Bg != terminal.ColorCyan {
		t.Errorf("pixel = %+v", c)
	}
}

func TestImageViewZoom(t *testing.T) {
	img := textImage(t, "abcd", "efgh", "ijkl", "mnop")
	view := NewImageView(scene.Base{Width: 2, Height: 2}, img)
	view.SetZoom(2)

	_, rows := renderRows(t, view, 2, 2)
	if want := []string{"ac", "ik"}; !reflect.DeepEqual(rows, want) {
		t.Errorf("zoom 2 rows = %q, want %q", rows, want)
	}

	view.SetOffset(1, 1)
	_, rows = renderRows(t, view, 2, 2)
	if want := []string{"fh", "np"}; !reflect.DeepEqual(rows, want) {
		t.Errorf("zoom 2 offset rows = %q, want %q", rows, want)
	}

	view.SetZoom(0)
	if view.ZoomLevel() != 1 {
		t.Errorf("zoom clamped to %d, want 1", view.ZoomLevel())
	}
	view.Zoom(-5)
	if view.ZoomLevel() != 1 {
		t.Errorf("zoom after negative delta = %d, want 1", view.ZoomLevel())
	}
}

func TestImageViewBorder(t *testing.T) {
	img := textImage(t, "abc", "def")
	view := NewImageView(scene.Base{X: 0, Y: 0, Width: 4, Height: 3, Border: render.BorderDouble}, img)

	_, rows := renderRows(t, view, 4, 3)
	want := []string{"╔══╗", "║ab║", "╚══╝"}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %q, want %q", rows, want)
	}
}

func TestImageViewNilImage(t *testing.T) {
	view := NewImageView(scene.Base{Width: 2, Height: 1, Bg: terminal.ColorMagenta}, nil)
	out, rows := renderRows(t, view, 2, 1)
	if rows[0] != "  " {
		t.Errorf("row = %q", rows[0])
	}
	if c, _ := out.Cell(0, 0); c.Bg != terminal.ColorMagenta {
		t.Errorf("blank bg = %v", c.Bg)
	}
}

func TestImageViewInteract(t *testing.T) {
	view := NewImageView(scene.Base{Width: 6, Height: 5, Border: render.BorderSingle}, textImage(t, "a"))

	steps := []struct {
		key        string
		wantResult string
		wantX      int
		wantY      int
		wantZoom   int
	}{
		{terminal.KeyRight, "pan", 1, 0, 1},
		{"j", "pan", 1, 1, 1},
		{"-", "zoom", 1, 1, 2},
		{terminal.KeyLeft, "pan", -1, 1, 2},
		{terminal.KeyPageDown, "pan", -1, 7, 2},
		{"+", "zoom", -1, 7, 1},
		{"+", "zoom", -1, 7, 1},
		{"x", "", -1, 7, 1},
		{"0", "reset", 0, 0, 1},
	}
	for i, s := range steps {
		res, err := view.Interact(s.key)
		if err != nil {
			t.Fatalf("step %d: Interact(%q): %v", i, s.key, err)
		}
		x, y := view.Offset()
		if res != s.wantResult || x != s.wantX || y != s.wantY || view.ZoomLevel() != s.wantZoom {
			t.Errorf("step %d %q: result %q offset %d,%d zoom %d; want %q %d,%d zoom %d",
				i, s.key, res, x, y, view.ZoomLevel(), s.wantResult, s.wantX, s.wantY, s.wantZoom)
		}
	}
}

func TestImageViewInScene(t *testing.T) {
	img := textImage(t, "abc", "def")
	view := NewImageView(scene.Base{Width: 3, Height: 2}, img)
	box := NewLogBox(scene.Base{Width: 3, Height: 2})

	out := terminal.NewCapture(3, 2)
	s := scene.New(render.New(3, 2), out, terminal.ColorDefault)
	s.Add(box, false)
	s.Add(view, true)

	if err := s.Pan(1, 1); err != nil {
		t.Fatalf("Pan: %v", err)
	}
	if err := s.Paint(); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if got := out.Row(0); got != "ef " {
		t.Errorf("row 0 = %q, want %q", got, "ef ")
	}

	// The log box is not a viewport
	s.SetActive(0)
	if err := s.Zoom(1); !errors.Is(err, scene.ErrUnsupported) {
		t.Errorf("Zoom on log box = %v, want ErrUnsupported", err)
	}
}

func TestImageViewHomeEnd(t *testing.T) {
	img := textImage(t, "0123456789", "abcdefghij")
	view := NewImageView(scene.Base{Width: 4, Height: 2}, img)
	view.SetOffset(3, 1)

	steps := []struct {
		key   string
		zoom  int
		wantX int
	}{
		{terminal.KeyEnd, 1, 6},
		{terminal.KeyHome, 1, 0},
		{terminal.KeyEnd, 2, 2},
		{terminal.KeyEnd, 3, 0},
	}
	for _, s := range steps {
		view.SetZoom(s.zoom)
		if res, _ := view.Interact(s.key); res != "pan" {
			t.Errorf("%s: result %q, want pan", s.key, res)
		}
		x, y := view.Offset()
		if x != s.wantX || y != 1 {
			t.Errorf("%s at zoom %d: offset %d,%d, want %d,1", s.key, s.zoom, x, y, s.wantX)
		}
	}

	// End shows the last screenful
	view.SetZoom(1)
	view.SetOffset(0, 0)
	view.Interact(terminal.KeyEnd)
	_, rows := renderRows(t, view, 4, 2)
	if want := []string{"6789", "ghij"}; !reflect.DeepEqual(rows, want) {
		t.Errorf("rows after end = %q, want %q", rows, want)
	}

	empty := NewImageView(scene.Base{Width: 4, Height: 2}, nil)
	empty.Interact(terminal.KeyEnd)
	if x, _ := empty.Offset(); x != 0 {
		t.Errorf("end without image: offset %d", x)
	}
}

func TestImageViewSetImage(t *testing.T) {
	view := NewImageView(scene.Base{Width: 2, Height: 1}, textImage(t, "ab", "cd"))
	view.SetOffset(0, 1)
	view.SetZoom(2)

	next := textImage(t, "wx", "yz")
	view.SetImage(next)
	if view.Image() != next {
		t.Fatal("Image() does not return the new image")
	}
	x, y := view.Offset()
	if x != 0 || y != 1 || view.ZoomLevel() != 2 {
		t.Errorf("pan/zoom changed to %d,%d zoom %d", x, y, view.ZoomLevel())
	}
	view.SetZoom(1)
	_, rows := renderRows(t, view, 2, 1)
	if rows[0] != "yz" {
		t.Errorf("row = %q, want %q", rows[0], "yz")
	}
}
