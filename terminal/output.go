// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
)

// Output receives the positioned cell writes produced by a frame flush
// Writes arrive in row-major order, followed by Home and Show
type Output interface {
	// SetCell writes one glyph with explicit colors at (x, y)
	SetCell(x, y int, glyph rune, fg, bg Color)

	// Home resets the cursor to the origin
	Home()

	// Show commits everything written since the last Show
	Show() error
}

// ANSIOutput encodes cell writes as ANSI escape sequences
type ANSIOutput struct {
	writer *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    Color
	lastBg    Color
	lastValid bool
}

// NewANSIOutput creates an output buffering into w
func NewANSIOutput(w io.Writer) *ANSIOutput {
	return &ANSIOutput{
		writer: bufio.NewWriterSize(w, 131072), // 128KB buffer
	}
}

// SetCell positions the cursor, sets colors and writes the glyph
// Cursor move is skipped when the cell directly follows the previous write
func (o *ANSIOutput) SetCell(x, y int, glyph rune, fg, bg Color) {
	w := o.writer

	if !o.cursorValid || x != o.cursorX || y != o.cursorY {
		writeCursorPos(w, x, y)
	}

	if !o.lastValid || fg != o.lastFg || bg != o.lastBg {
		w.Write(csi)
		w.WriteString("0;")
		writeColorParam(w, fg, false)
		w.WriteByte(';')
		writeColorParam(w, bg, true)
		w.WriteByte('m')
		o.lastFg = fg
		o.lastBg = bg
		o.lastValid = true
	}

	glyph = printable(glyph)
	if glyph < 0x80 {
		w.WriteByte(byte(glyph))
	} else {
		w.WriteRune(glyph)
	}

	o.cursorX = x + 1
	o.cursorY = y
	o.cursorValid = true
}

// printable maps control characters to a space
// A raw control byte would move the terminal cursor behind the writer's back
func printable(glyph rune) rune {
	if glyph < 0x20 || (glyph >= 0x7f && glyph < 0xa0) {
		return ' '
	}
	return glyph
}

// Home moves the cursor to (0,0)
func (o *ANSIOutput) Home() {
	o.writer.Write(csiHome)
	o.cursorX = 0
	o.cursorY = 0
	o.cursorValid = true
}

// Show resets attributes and flushes buffered bytes to the writer
func (o *ANSIOutput) Show() error {
	o.writer.Write(csiSGR0)
	o.lastValid = false
	return o.writer.Flush()
}

// Clear erases the whole screen with bg
func (o *ANSIOutput) Clear(bg Color) error {
	w := o.writer
	w.Write(csi)
	w.WriteString("0;")
	writeColorParam(w, bg, true)
	w.WriteByte('m')
	w.Write(csiClear)
	w.Write(csiSGR0)

	o.lastValid = false
	o.cursorX = 0
	o.cursorY = 0
	o.cursorValid = true
	return w.Flush()
}

// invalidateCursor marks cursor position as unknown
func (o *ANSIOutput) invalidateCursor() {
	o.cursorValid = false
}
