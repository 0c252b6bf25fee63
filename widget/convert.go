package widget

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/consolegui/terminal"
)

// halfBlock shows the top pixel as fg and the bottom pixel as bg
const halfBlock = '▀'

// PictureMode selects how decoded pictures map onto cells
type PictureMode int

const (
	// PictureHalfBlock packs two source rows into one cell with ▀
	PictureHalfBlock PictureMode = iota
	// PictureBackground paints one sampled region per cell as background
	PictureBackground
)

// ImageFromText builds an image from text art, one line per row
// Short lines are padded with spaces in bg
func ImageFromText(lines []string, fg, bg terminal.Color) (*Image, error) {
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}
	height := len(lines)

	size := width * height
	glyphs := make([]rune, size)
	fgs := make([]terminal.Color, size)
	bgs := make([]terminal.Color, size)
	for y, row := range rows {
		for x := 0; x < width; x++ {
			idx := y*width + x
			glyphs[idx] = ' '
			if x < len(row) {
				glyphs[idx] = row[x]
			}
			fgs[idx] = fg
			bgs[idx] = bg
		}
	}
	return NewImage(width, height, glyphs, fgs, bgs)
}

// ImageFromPicture converts a decoded picture to a width-column image
// quantized to the 256-color palette. Height follows the aspect ratio with
// terminal cells treated as twice as tall as wide
func ImageFromPicture(src image.Image, width int, mode PictureMode) (*Image, error) {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || width <= 0 {
		return nil, fmt.Errorf("convert %dx%d picture to width %d: %w", srcW, srcH, width, ErrMalformedImage)
	}

	// Terminal chars are roughly 2:1 (height:width)
	outW := width
	outH := max(1, int(float64(width)*float64(srcH)/float64(srcW)*0.5))

	// Effective pixel rows, half-block doubles vertical resolution
	gridH := outH
	if mode == PictureHalfBlock {
		gridH = outH * 2
	}

	sample := func(x, gy int) terminal.Color {
		// Sample center of the corresponding region, clamped to bounds
		sx := min(bounds.Min.X+(x*srcW+srcW/2)/outW, bounds.Max.X-1)
		sy := min(bounds.Min.Y+(gy*srcH+srcH/2)/gridH, bounds.Max.Y-1)
		return quantize(src.At(sx, sy))
	}

	size := outW * outH
	glyphs := make([]rune, size)
	fgs := make([]terminal.Color, size)
	bgs := make([]terminal.Color, size)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			idx := y*outW + x
			switch mode {
			case PictureHalfBlock:
				glyphs[idx] = halfBlock
				fgs[idx] = sample(x, y*2)
				bgs[idx] = sample(x, y*2+1)
			default:
				glyphs[idx] = ' '
				fgs[idx] = terminal.ColorDefault
				bgs[idx] = sample(x, y)
			}
		}
	}
	return NewImage(outW, outH, glyphs, fgs, bgs)
}

// quantize maps an arbitrary color to the nearest palette entry
func quantize(c color.Color) terminal.Color {
	r, g, b, _ := c.RGBA()
	return terminal.RGBTo256(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// LoadImage decodes a PNG, GIF, JPEG, BMP or WebP file and converts it
func LoadImage(path string, width int, mode PictureMode) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img, err := ImageFromPicture(src, width, mode)
	if err != nil {
		return nil, fmt.Errorf("convert %s image %s: %w", format, path, err)
	}
	return img, nil
}
