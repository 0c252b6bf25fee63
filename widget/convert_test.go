package widget

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/lixenwraith/consolegui/terminal"
)

func TestImageFromText(t *testing.T) {
	img, err := ImageFromText([]string{"ab", "", "cde"}, terminal.ColorCyan, terminal.ColorBlack)
	if err != nil {
		t.Fatalf("ImageFromText: %v", err)
	}
	if img.Width != 3 || img.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", img.Width, img.Height)
	}
	if string(img.Glyphs) != "ab    cde" {
		t.Errorf("glyphs = %q", string(img.Glyphs))
	}
	for i := range img.Fg {
		if img.Fg[i] != terminal.ColorCyan || img.Bg[i] != terminal.ColorBlack {
			t.Fatalf("pixel %d colors = %v/%v", i, img.Fg[i], img.Bg[i])
		}
	}

	if _, err := ImageFromText(nil, terminal.ColorDefault, terminal.ColorDefault); !errors.Is(err, ErrMalformedImage) {
		t.Errorf("empty art error = %v, want ErrMalformedImage", err)
	}
}

// splitPicture is 4x4, top half red and bottom half blue
func splitPicture() *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{R: 255, A: 255}
			if y >= 2 {
				c = color.RGBA{B: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}
	return src
}

func TestImageFromPicture(t *testing.T) {
	red := terminal.Color256(196)
	blue := terminal.Color256(21)

	tests := []struct {
		name      string
		mode      PictureMode
		wantGlyph rune
		wantTop   [2]terminal.Color // fg, bg of row 0
		wantBot   [2]terminal.Color // fg, bg of row 1
	}{
		{"Half block", PictureHalfBlock, halfBlock, [2]terminal.Color{red, red}, [2]terminal.Color{blue, blue}},
		{"Background", PictureBackground, ' ', [2]terminal.Color{terminal.ColorDefault, red}, [2]terminal.Color{terminal.ColorDefault, blue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ImageFromPicture(splitPicture(), 4, tt.mode)
			if err != nil {
				t.Fatalf("ImageFromPicture: %v", err)
			}
			if img.Width != 4 || img.Height != 2 {
				t.Fatalf("size = %dx%d, want 4x2", img.Width, img.Height)
			}
			top, _ := img.At(1, 0)
			bot, _ := img.At(1, 1)
			if top.Glyph != tt.wantGlyph {
				t.Errorf("glyph = %q, want %q", top.Glyph, tt.wantGlyph)
			}
			if top.Fg != tt.wantTop[0] || top.Bg != tt.wantTop[1] {
				t.Errorf("top row = %v/%v, want %v/%v", top.Fg, top.Bg, tt.wantTop[0], tt.wantTop[1])
			}
			if bot.Fg != tt.wantBot[0] || bot.Bg != tt.wantBot[1] {
				t.Errorf("bottom row = %v/%v, want %v/%v", bot.Fg, bot.Bg, tt.wantBot[0], tt.wantBot[1])
			}
		})
	}
}

func TestImageFromPictureRejectsEmpty(t *testing.T) {
	if _, err := ImageFromPicture(image.NewRGBA(image.Rect(0, 0, 0, 0)), 4, PictureHalfBlock); !errors.Is(err, ErrMalformedImage) {
		t.Errorf("empty picture error = %v", err)
	}
	if _, err := ImageFromPicture(splitPicture(), 0, PictureHalfBlock); !errors.Is(err, ErrMalformedImage) {
		t.Errorf("zero width error = %v", err)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(*os.File, image.Image) error{
		"pic.png": func(f *os.File, m image.Image) error { return png.Encode(f, m) },
		"pic.bmp": func(f *os.File, m image.Image) error { return bmp.Encode(f, m) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := encode(f, splitPicture()); err != nil {
				t.Fatal(err)
			}
			f.Close()

			img, err := LoadImage(path, 2, PictureBackground)
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if img.Width != 2 || img.Height != 1 {
				t.Errorf("size = %dx%d, want 2x1", img.Width, img.Height)
			}
		})
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png"), 2, PictureBackground); err == nil {
		t.Error("missing file loaded")
	}

	junk := filepath.Join(dir, "junk.png")
	os.WriteFile(junk, []byte("not an image"), 0o644)
	if _, err := LoadImage(junk, 2, PictureBackground); err == nil {
		t.Error("junk file decoded")
	}
}
