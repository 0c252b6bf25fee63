// @lixen: #focus{sys[config,toml]}
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/terminal"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Element kinds
const (
	KindLog   = "log"
	KindImage = "image"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Picture conversion modes for image elements loaded from files
const (
	ModeHalfBlock  = "halfblock"
	ModeBackground = "background"
)

// Config describes a scene and how to drive it
type Config struct {
	Background string    `toml:"background"`
	Backend    string    `toml:"backend"`
	FrameMS    int       `toml:"frame_ms"`
	Elements   []Element `toml:"element"`
}

// Element is one [[element]] table
type Element struct {
	Kind   string `toml:"kind"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Border string `toml:"border"`
	Fg     string `toml:"fg"`
	Bg     string `toml:"bg"`
	Active bool   `toml:"active"`

	// Image elements: either a picture file or inline text art
	Image      string   `toml:"image,omitempty"`
	ImageWidth int      `toml:"image_width,omitempty"`
	ImageMode  string   `toml:"image_mode,omitempty"`
	Art        []string `toml:"art,omitempty"`

	// Log elements: lines pushed before the first frame
	Lines []string `toml:"lines,omitempty"`
}

// Default returns the built-in two-pane scene for an 80x24 terminal
func Default() *Config {
	return &Config{
		Background: "default",
		Backend:    BackendANSI,
		FrameMS:    33,
		Elements: []Element{
			{
				Kind: KindImage, X: 0, Y: 0, Width: 40, Height: 22,
				Border: "double", Fg: "bright_cyan", Bg: "default", Active: true,
				Art: []string{
					"   ____                       _      ",
					"  / ___|___  _ __  ___  ___ | | ___ ",
					" | |   / _ \\| '_ \\/ __|/ _ \\| |/ _ \\",
					" | |__| (_) | | | \\__ \\ (_) | |  __/",
					"  \\____\\___/|_| |_|___/\\___/|_|\\___|",
					"",
					"  arrows/hjkl pan   +/- zoom   0 reset",
					"  tab switch        q quit",
				},
			},
			{
				Kind: KindLog, X: 40, Y: 0, Width: 40, Height: 22,
				Border: "single", Fg: "white", Bg: "default",
				Lines: []string{"consolegui ready"},
			},
		},
	}
}

// Parse decodes a TOML document over the defaults and validates it
// Elements from the document replace the default elements entirely
func Parse(data string) (*Config, error) {
	cfg := Default()
	cfg.Elements = nil
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if len(cfg.Elements) == 0 {
		cfg.Elements = Default().Elements
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a config file, empty path yields Default
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes the config as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every field that would otherwise fail at scene build time
func (c *Config) Validate() error {
	if _, err := terminal.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %v: %w", err, ErrInvalid)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("backend %q: %w", c.Backend, ErrInvalid)
	}
	if c.FrameMS <= 0 {
		return fmt.Errorf("frame_ms %d must be positive: %w", c.FrameMS, ErrInvalid)
	}

	active := 0
	for i := range c.Elements {
		if err := c.Elements[i].validate(); err != nil {
			return fmt.Errorf("element %d (%s): %w", i, c.Elements[i].Kind, err)
		}
		if c.Elements[i].Active {
			active++
		}
	}
	if active > 1 {
		return fmt.Errorf("%d elements marked active: %w", active, ErrInvalid)
	}
	return nil
}

func (e *Element) validate() error {
	switch e.Kind {
	case KindLog:
		if e.Image != "" || len(e.Art) > 0 {
			return fmt.Errorf("log element with image content: %w", ErrInvalid)
		}
	case KindImage:
		if e.Image != "" && len(e.Art) > 0 {
			return fmt.Errorf("both image and art set: %w", ErrInvalid)
		}
		if e.Image != "" && e.ImageWidth < 0 {
			return fmt.Errorf("image_width %d: %w", e.ImageWidth, ErrInvalid)
		}
		if _, err := e.PictureMode(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("kind %q: %w", e.Kind, ErrInvalid)
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", e.Width, e.Height, ErrInvalid)
	}
	if e.X < 0 || e.Y < 0 {
		return fmt.Errorf("position %d,%d: %w", e.X, e.Y, ErrInvalid)
	}
	if _, err := render.ParseBorderStyle(e.Border); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if _, _, err := e.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors resolves the element's fg and bg names
func (e *Element) Colors() (fg, bg terminal.Color, err error) {
	if fg, err = terminal.ParseColor(e.Fg); err != nil {
		return 0, 0, fmt.Errorf("fg: %v: %w", err, ErrInvalid)
	}
	if bg, err = terminal.ParseColor(e.Bg); err != nil {
		return 0, 0, fmt.Errorf("bg: %v: %w", err, ErrInvalid)
	}
	return fg, bg, nil
}

// BorderStyle resolves the element's border name
func (e *Element) BorderStyle() (render.BorderStyle, error) {
	return render.ParseBorderStyle(e.Border)
}

// PictureMode returns the normalized image_mode, empty means half-block
func (e *Element) PictureMode() (string, error) {
	switch strings.ToLower(e.ImageMode) {
	case "", ModeHalfBlock, "half_block":
		return ModeHalfBlock, nil
	case ModeBackground, "bg":
		return ModeBackground, nil
	}
	return "", fmt.Errorf("image_mode %q: %w", e.ImageMode, ErrInvalid)
}

// BackgroundColor resolves the scene background
func (c *Config) BackgroundColor() terminal.Color {
	bg, _ := terminal.ParseColor(c.Background)
	return bg
}

// FrameInterval returns the render tick in milliseconds, at least 1
func (c *Config) FrameInterval() int {
	return max(1, c.FrameMS)
}
