package terminal

import (
	"bytes"
	"testing"
)

func TestANSIOutputCoalescesAdjacentCells(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSIOutput(&buf)

	out.SetCell(0, 0, 'a', ColorRed, ColorDefault)
	out.SetCell(1, 0, 'b', ColorRed, ColorDefault)
	if err := out.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}

	want := "\x1b[1;1H\x1b[0;31;49mab\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestANSIOutputRepositionsAndRecolors(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSIOutput(&buf)

	out.SetCell(0, 0, 'a', ColorDefault, ColorBrightBlue)
	out.SetCell(3, 1, '─', Color256(200), ColorBlack)
	out.Home()
	if err := out.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}

	want := "\x1b[1;1H\x1b[0;39;104ma" +
		"\x1b[2;4H\x1b[0;38;5;200;40m─" +
		"\x1b[H\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestANSIOutputZeroGlyphIsSpace(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSIOutput(&buf)
	out.SetCell(0, 0, 0, ColorDefault, ColorDefault)
	out.Show()

	if !bytes.HasSuffix(buf.Bytes(), []byte(" \x1b[0m")) {
		t.Errorf("zero glyph not written as space: %q", buf.String())
	}
}

func TestANSIOutputRestylesAfterShow(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSIOutput(&buf)

	out.SetCell(0, 0, 'a', ColorGreen, ColorBlack)
	out.Show()
	buf.Reset()

	// SGR was reset by Show, so the same colors must be re-emitted
	out.SetCell(1, 0, 'b', ColorGreen, ColorBlack)
	out.Show()

	want := "\x1b[0;32;40mb\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestANSIOutputControlGlyphs(t *testing.T) {
	for _, glyph := range []rune{'\t', '\n', '\r', 0x07, 0x1b, 0x7f, 0x9b} {
		var buf bytes.Buffer
		out := NewANSIOutput(&buf)
		out.SetCell(0, 0, 'a', ColorDefault, ColorDefault)
		out.SetCell(1, 0, glyph, ColorDefault, ColorDefault)
		out.SetCell(2, 0, 'b', ColorDefault, ColorDefault)
		out.Show()

		want := "\x1b[1;1H\x1b[0;39;49ma b\x1b[0m"
		if got := buf.String(); got != want {
			t.Errorf("glyph %#x: output = %q, want %q", glyph, got, want)
		}
	}
}

func TestANSIOutputClear(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSIOutput(&buf)
	if err := out.Clear(ColorBlue); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	// Cursor is known to be home, the next write at the origin needs no move
	out.SetCell(0, 0, 'x', ColorDefault, ColorDefault)
	out.Show()

	want := "\x1b[0;44m\x1b[2J\x1b[H\x1b[0m" + "\x1b[0;39;49mx\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
