package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an entry of the terminal palette
// Zero value is the terminal's default color, palette index n is stored as n+1
type Color uint16

// ColorDefault resets to the terminal's configured fg/bg
const ColorDefault Color = 0

// Standard 16-color ANSI palette
const (
	ColorBlack Color = iota + 1
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Color256 returns the xterm-256 palette entry n
func Color256(n uint8) Color {
	return Color(n) + 1
}

// Index returns the palette index, ok is false for ColorDefault
func (c Color) Index() (int, bool) {
	if c == ColorDefault || c > 256 {
		return 0, false
	}
	return int(c) - 1, true
}

// colorNames indexes the 16 named colors by palette index
var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// colorAliases accepts common spellings used in config files
var colorAliases = map[string]Color{
	"gray":      ColorBrightBlack,
	"grey":      ColorBrightBlack,
	"darkgray":  ColorBrightBlack,
	"darkgrey":  ColorBrightBlack,
	"lightgray": ColorWhite,
	"lightgrey": ColorWhite,
}

func (c Color) String() string {
	idx, ok := c.Index()
	if !ok {
		return "default"
	}
	if idx < len(colorNames) {
		return colorNames[idx]
	}
	return strconv.Itoa(idx)
}

// ParseColor resolves a palette name or a 0-255 index
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "_")
	if s == "" || s == "default" || s == "reset" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if n == s || strings.ReplaceAll(n, "_", "") == s {
			return Color(i) + 1, nil
		}
	}
	if c, ok := colorAliases[s]; ok {
		return c, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return Color256(uint8(n)), nil
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeLevel maps a 0-255 channel to the nearest cube index 0-5
func cubeLevel(v int) int {
	best, bestDist := 0, abs(v-cubeValues[0])
	for i := 1; i < len(cubeValues); i++ {
		if d := abs(v - cubeValues[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// RGBTo256 returns the nearest xterm-256 palette entry for an RGB value
// Grayscale ramp is preferred over the cube when it is the closer match
func RGBTo256(r, g, b uint8) Color {
	ri, gi, bi := int(r), int(g), int(b)
	cr, cg, cb := cubeLevel(ri), cubeLevel(gi), cubeLevel(bi)
	cubeIdx := 16 + 36*cr + 6*cg + cb
	cubeDist := abs(ri-cubeValues[cr]) + abs(gi-cubeValues[cg]) + abs(bi-cubeValues[cb])

	gray := (ri + gi + bi) / 3
	if gray < 8 || gray > 238 {
		return Color256(uint8(cubeIdx))
	}
	step := (gray - 8 + 5) / 10
	if step > 23 {
		step = 23
	}
	level := 8 + step*10
	grayDist := abs(ri-level) + abs(gi-level) + abs(bi-level)
	if grayDist < cubeDist {
		return Color256(uint8(grayscaleStart + step))
	}
	return Color256(uint8(cubeIdx))
}
