package widget

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lixenwraith/consolegui/render"
	"github.com/lixenwraith/consolegui/scene"
)

// LogBox is an output-only console tail
// It keeps the newest Height lines, newest first, and renders them
// bottom-anchored with fixed-width wrapping
type LogBox struct {
	scene.Base
	lines   []string
	partial []byte
}

// NewLogBox creates a log box, capacity equals the element height
func NewLogBox(base scene.Base) *LogBox {
	capacity := base.Height
	if capacity < 0 {
		capacity = 0
	}
	return &LogBox{
		Base:  base,
		lines: make([]string, capacity),
	}
}

// Capacity returns the number of retained lines
func (l *LogBox) Capacity() int {
	return len(l.lines)
}

// PushLine inserts text as the newest entry, evicting the oldest
func (l *LogBox) PushLine(text string) {
	if len(l.lines) == 0 {
		return
	}
	copy(l.lines[1:], l.lines[:len(l.lines)-1])
	l.lines[0] = text
}

// Printf formats and pushes one line
func (l *LogBox) Printf(format string, args ...any) {
	l.PushLine(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the buffer, newest first, padded with empty strings
func (l *LogBox) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Write implements io.Writer, each newline-terminated line becomes one entry
// A trailing partial line is held until its newline arrives
func (l *LogBox) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			l.partial = append(l.partial, p...)
			break
		}
		line := append(l.partial, p[:i]...)
		l.PushLine(strings.TrimRight(string(line), "\r"))
		l.partial = l.partial[:0]
		p = p[i+1:]
	}
	return n, nil
}

// Draw renders the border, clears the interior and fills it with history
// from the bottom row upward
func (l *LogBox) Draw(fb *render.FrameBuffer) {
	l.DrawBorder(fb)

	x, y, w, h := l.Interior()
	if w == 0 || h == 0 {
		return
	}
	fb.Fill(x, y, w, h, render.Blank, l.Fg, l.Bg)

	rows := h
	for _, line := range l.lines {
		if rows == 0 {
			break
		}
		chunks := wrapChunks(line, w)
		for i := len(chunks) - 1; i >= 0 && rows > 0; i-- {
			fb.WriteText(x, y+rows-1, chunks[i], l.Fg, l.Bg)
			rows--
		}
	}
}

// wrapChunks splits line into rows of width runes, top to bottom
// Chunks are cut from the end: the last len/width chunks are full and the
// first holds the remainder. An empty line still occupies one row
func wrapChunks(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	count := (len(runes) + width - 1) / width
	chunks := make([]string, 0, count)

	head := len(runes) % width
	if head > 0 {
		chunks = append(chunks, string(runes[:head]))
	}
	for start := head; start < len(runes); start += width {
		chunks = append(chunks, string(runes[start:start+width]))
	}
	return chunks
}

func (l *LogBox) Update() {}

// Interact is a no-op, log boxes take no input
func (l *LogBox) Interact(string) (string, error) {
	return "", nil
}

func (l *LogBox) Dispose() error {
	return nil
}
