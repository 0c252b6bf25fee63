// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiHome  = []byte("\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM off keeps the cursor at the right edge instead of scrolling on a bottom-right write
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeColorParam writes the SGR parameter for fg or bg (no CSI prefix, no 'm' suffix)
// Named colors use the short 30-37/90-97 form, the rest of the palette uses 38;5;N
func writeColorParam(w *bufio.Writer, c Color, bg bool) {
	idx, ok := c.Index()
	switch {
	case !ok:
		if bg {
			w.WriteString("49")
		} else {
			w.WriteString("39")
		}
	case idx < 8:
		base := 30
		if bg {
			base = 40
		}
		writeInt(w, base+idx)
	case idx < 16:
		base := 90
		if bg {
			base = 100
		}
		writeInt(w, base+idx-8)
	default:
		if bg {
			w.WriteString("48;5;")
		} else {
			w.WriteString("38;5;")
		}
		writeInt(w, idx)
	}
}
