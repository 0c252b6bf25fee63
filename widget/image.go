package widget

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/scene"
	"github.com/lixenwraith/consolegui/terminal"
)

// ErrMalformedImage is returned when image dimensions and pixel arrays disagree
var ErrMalformedImage = errors.New("malformed image")

// Image is a grid of glyph pixels with per-pixel colors, row-major
// Viewports only read it, one image may back several views
type Image struct {
	Width  int
	Height int
	Glyphs []rune
	Fg     []terminal.Color
	Bg     []terminal.Color
}

// NewImage validates and wraps pixel arrays of length width*height
func NewImage(width, height int, glyphs []rune, fg, bg []terminal.Color) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image %dx%d: non-positive dimension: %w", width, height, ErrMalformedImage)
	}
	size := width * height
	if len(glyphs) != size || len(fg) != size || len(bg) != size {
		return nil, fmt.Errorf("image %dx%d: pixel arrays %d/%d/%d, want %d: %w",
			width, height, len(glyphs), len(fg), len(bg), size, ErrMalformedImage)
	}
	return &Image{
		Width:  width,
		Height: height,
		Glyphs: glyphs,
		Fg:     fg,
		Bg:     bg,
	}, nil
}

// At returns the pixel at column x, row y
// ok is false when the pixel lies outside the image
func (img *Image) At(x, y int) (render.Cell, bool) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return render.Cell{}, false
	}
	idx := img.Width*y + x
	return render.Cell{Glyph: img.Glyphs[idx], Fg: img.Fg[idx], Bg: img.Bg[idx]}, true
}

// ImageView is a rectangular window onto an Image with pan offset and zoom
// Zoom is the sampling step: 1 shows every pixel, 2 every second one
type ImageView struct {
	scene.Base
	image   *Image
	offsetX int
	offsetY int
	zoom    int
}

// NewImageView creates a view at offset (0,0) and zoom 1, img may be nil
func NewImageView(base scene.Base, img *Image) *ImageView {
	return &ImageView{
		Base:  base,
		image: img,
		zoom:  1,
	}
}

// Image returns the displayed image
func (v *ImageView) Image() *Image {
	return v.image
}

// SetImage replaces the displayed image, keeping pan and zoom
func (v *ImageView) SetImage(img *Image) {
	v.image = img
}

// Offset returns the image pixel shown at the interior's top-left cell
func (v *ImageView) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// SetOffset moves the view to an absolute pixel offset
func (v *ImageView) SetOffset(x, y int) {
	v.offsetX = x
	v.offsetY = y
}

// Pan moves the view by a pixel delta, offsets may leave the image
func (v *ImageView) Pan(dx, dy int) {
	v.offsetX += dx
	v.offsetY += dy
}

// ZoomLevel returns the sampling step
func (v *ImageView) ZoomLevel() int {
	return v.zoom
}

// SetZoom sets the sampling step, clamped to 1
func (v *ImageView) SetZoom(z int) {
	if z < 1 {
		z = 1
	}
	v.zoom = z
}

// Zoom adjusts the sampling step by delta, positive zooms out
func (v *ImageView) Zoom(delta int) {
	v.SetZoom(v.zoom + delta)
}

// Draw samples the image under every interior cell
// Samples outside the image render as blank cells in the element colors
func (v *ImageView) Draw(fb *render.FrameBuffer) {
	v.DrawBorder(fb)

	x, y, w, h := v.Interior()
	for py := 0; py < h; py++ {
		row := py*v.zoom + v.offsetY
		for px := 0; px < w; px++ {
			col := px*v.zoom + v.offsetX

			var c render.Cell
			ok := false
			if v.image != nil {
				c, ok = v.image.At(col, row)
			}
			if !ok {
				c = render.Cell{Glyph: render.Blank, Fg: v.Fg, Bg: v.Bg}
			}
			fb.Write(x+px, y+py, c.Glyph, c.Fg, c.Bg)
		}
	}
}

func (v *ImageView) Update() {}

// Interact maps navigation keys to pan and zoom
// Arrows and hjkl move one cell (zoom pixels), page keys one interior height,
// home and end jump to the left and right image edges
// Returns the action taken, empty for unhandled keys
func (v *ImageView) Interact(key string) (string, error) {
	_, _, w, h := v.Interior()
	switch key {
	case terminal.KeyLeft, "h":
		v.Pan(-v.zoom, 0)
	case terminal.KeyRight, "l":
		v.Pan(v.zoom, 0)
	case terminal.KeyUp, "k":
		v.Pan(0, -v.zoom)
	case terminal.KeyDown, "j":
		v.Pan(0, v.zoom)
	case terminal.KeyPageUp:
		v.Pan(0, -h*v.zoom)
	case terminal.KeyPageDown:
		v.Pan(0, h*v.zoom)
	case terminal.KeyHome:
		v.offsetX = 0
	case terminal.KeyEnd:
		v.offsetX = 0
		if v.image != nil {
			v.offsetX = max(0, v.image.Width-w*v.zoom)
		}
	case "+", "=":
		v.Zoom(-1)
		return "zoom", nil
	case "-", "_":
		v.Zoom(1)
		return "zoom", nil
	case "0":
		v.SetOffset(0, 0)
		v.SetZoom(1)
		return "reset", nil
	default:
		return "", nil
	}
	return "pan", nil
}

func (v *ImageView) Dispose() error {
	return nil
}
