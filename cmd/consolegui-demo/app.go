package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/consolegui/config"
	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/scene"
	"github.com/lixenwraith/consolegui/terminal"
	"github.com/lixenwraith/consolegui/widget"
)

// app is the running demo: a scene, the console log box and key routing
type app struct {
	fb      *render.FrameBuffer
	out     terminal.Output
	scene   *scene.Scene
	console *widget.LogBox
	status  *widget.StatusLine
	logger  *log.Logger
}

// newApp builds the configured scene on a width x height frame painting to
// out, with a status line on the bottom row
func newApp(cfg *config.Config, out terminal.Output, width, height int, logger *log.Logger) (*app, error) {
	fb := render.New(width, height)
	sc := scene.New(fb, out, cfg.BackgroundColor(), scene.WithLogger(logger))
	a := &app{fb: fb, out: out, scene: sc, logger: logger}

	for i := range cfg.Elements {
		e := &cfg.Elements[i]
		el, err := buildElement(e)
		if err != nil {
			sc.Close()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if box, ok := el.(*widget.LogBox); ok && a.console == nil {
			a.console = box
		}
		sc.Add(el, e.Active)
	}

	a.status = widget.NewStatusLine(scene.Base{
		Y: height - 1, Width: width, Height: 1,
		Fg: terminal.ColorBlack, Bg: terminal.ColorWhite,
	}, a.statusText)
	sc.Add(a.status, false)
	return a, nil
}

func buildElement(e *config.Element) (scene.Element, error) {
	fg, bg, err := e.Colors()
	if err != nil {
		return nil, err
	}
	border, err := e.BorderStyle()
	if err != nil {
		return nil, err
	}
	base := scene.Base{
		X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
		Fg: fg, Bg: bg, Border: border,
	}

	switch e.Kind {
	case config.KindLog:
		box := widget.NewLogBox(base)
		for _, line := range e.Lines {
			box.PushLine(line)
		}
		return box, nil
	case config.KindImage:
		img, err := elementImage(e, base)
		if err != nil {
			return nil, err
		}
		return widget.NewImageView(base, img), nil
	}
	return nil, fmt.Errorf("kind %q: %w", e.Kind, config.ErrInvalid)
}

// elementImage loads inline art or a picture file, nil when neither is set
func elementImage(e *config.Element, base scene.Base) (*widget.Image, error) {
	switch {
	case len(e.Art) > 0:
		return widget.ImageFromText(e.Art, base.Fg, base.Bg)
	case e.Image != "":
		width := e.ImageWidth
		if width == 0 {
			_, _, width, _ = base.Interior()
		}
		mode := widget.PictureHalfBlock
		if m, _ := e.PictureMode(); m == config.ModeBackground {
			mode = widget.PictureBackground
		}
		return widget.LoadImage(e.Image, width, mode)
	}
	return nil, nil
}

// logf reports to the console box when there is one, and to the debug log
func (a *app) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if a.console != nil {
		a.console.PushLine(msg)
	}
	if a.logger != nil {
		a.logger.Print(msg)
	}
}

// handleKey routes one key and reports whether the demo should quit
func (a *app) handleKey(key string) bool {
	switch key {
	case "q", terminal.KeyCtrlC:
		return true
	case terminal.KeyCtrlL:
		if err := a.redraw(); err != nil {
			a.logf("redraw: %v", err)
		}
		return false
	case terminal.KeyTab:
		if err := a.scene.CycleActive(); err != nil {
			a.logf("tab: %v", err)
			return false
		}
		_, i := a.scene.Active()
		a.logf("active element %d", i)
		return false
	}

	res, err := a.scene.Interact(key)
	switch {
	case err != nil:
		a.logf("%s: %v", key, err)
	case res != "":
		a.logf("%s: %s", key, res)
	}
	return false
}

// clearer is implemented by outputs that can wipe the physical screen
type clearer interface {
	Clear(bg terminal.Color) error
}

// redraw wipes the screen when the output supports it and forces the next
// frame to repaint every cell
func (a *app) redraw() error {
	a.fb.Invalidate()
	if c, ok := a.out.(clearer); ok {
		return c.Clear(a.scene.Background())
	}
	return nil
}

// frame advances every element and paints one frame
func (a *app) frame() error {
	a.scene.Update()
	return a.scene.Paint()
}

func (a *app) statusText() string {
	el, i := a.scene.Active()
	var sb strings.Builder
	if el == nil {
		sb.WriteString(" no active element")
	} else {
		fmt.Fprintf(&sb, " element %d/%d", i+1, a.scene.Len())
	}
	if v, ok := el.(*widget.ImageView); ok {
		x, y := v.Offset()
		fmt.Fprintf(&sb, " | offset %d,%d zoom %d", x, y, v.ZoomLevel())
	}
	sb.WriteString(" | tab next | q quit")
	return sb.String()
}
