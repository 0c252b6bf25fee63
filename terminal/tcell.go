package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TcellOutput renders cell writes through a tcell.Screen
type TcellOutput struct {
	screen tcell.Screen
}

// NewTcellOutput wraps an initialized screen
func NewTcellOutput(screen tcell.Screen) *TcellOutput {
	return &TcellOutput{screen: screen}
}

// OpenTcell creates, initializes and wraps the default tcell screen
func OpenTcell() (*TcellOutput, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return NewTcellOutput(screen), nil
}

// TcellColor maps a palette entry to tcell
func TcellColor(c Color) tcell.Color {
	idx, ok := c.Index()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}

func (o *TcellOutput) SetCell(x, y int, glyph rune, fg, bg Color) {
	glyph = printable(glyph)
	style := tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
	o.screen.SetContent(x, y, glyph, nil, style)
}

// Home is a no-op, tcell owns the cursor and it stays hidden
func (o *TcellOutput) Home() {}

func (o *TcellOutput) Show() error {
	o.screen.Show()
	return nil
}

// Size returns screen dimensions
func (o *TcellOutput) Size() (int, int) {
	return o.screen.Size()
}

// Fini restores the terminal
func (o *TcellOutput) Fini() {
	o.screen.Fini()
}

// ReadKey blocks until the next key event and returns its name
// Non-key events are skipped
func (o *TcellOutput) ReadKey() (string, error) {
	for {
		ev := o.screen.PollEvent()
		if ev == nil {
			return "", ErrClosed
		}
		if kev, ok := ev.(*tcell.EventKey); ok {
			return TcellKeyName(kev), nil
		}
	}
}

// tcellKeyNames maps tcell special keys onto the canonical names
var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyCtrlC:      KeyCtrlC,
}

// TcellKeyName converts a tcell key event to the canonical key name
func TcellKeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return KeySpace
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl_" + strings.ToLower(string(r))
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt_" + string(r)
		}
		return string(r)
	}
	if name, ok := tcellKeyNames[ev.Key()]; ok {
		return name
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl_" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	}
	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
		return strings.ToLower(tcell.KeyNames[ev.Key()])
	}
	return strings.ToLower(ev.Name())
}
