package terminal

import (
	"unicode/utf8"
)

// Canonical key names shared by every input source
// Printable keys are reported as the rune itself
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "page_up"
	KeyPageDown  = "page_down"
	KeyInsert    = "insert"
	KeyDelete    = "delete"
	KeyEscape    = "escape"
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyBacktab   = "backtab"
	KeyBackspace = "backspace"
	KeySpace     = "space"
	KeyCtrlC     = "ctrl_c"
	KeyCtrlL     = "ctrl_l"
)

// csiSequences maps sequences following ESC [ to key names
var csiSequences = map[string]string{
	"A":  KeyUp,
	"B":  KeyDown,
	"C":  KeyRight,
	"D":  KeyLeft,
	"Z":  KeyBacktab,
	"H":  KeyHome,
	"F":  KeyEnd,
	"1~": KeyHome,
	"4~": KeyEnd,
	"7~": KeyHome,
	"8~": KeyEnd,
	"5~": KeyPageUp,
	"6~": KeyPageDown,
	"2~": KeyInsert,
	"3~": KeyDelete,

	"11~": "f1",
	"12~": "f2",
	"13~": "f3",
	"14~": "f4",
	"15~": "f5",
	"17~": "f6",
	"18~": "f7",
	"19~": "f8",
	"20~": "f9",
	"21~": "f10",
	"23~": "f11",
	"24~": "f12",
}

// ss3Sequences maps sequences following ESC O (application cursor mode)
var ss3Sequences = map[string]string{
	"A": KeyUp,
	"B": KeyDown,
	"C": KeyRight,
	"D": KeyLeft,
	"H": KeyHome,
	"F": KeyEnd,
	"P": "f1",
	"Q": "f2",
	"R": "f3",
	"S": "f4",
}

// controlName names a C0 control byte
func controlName(b byte) string {
	switch b {
	case 0x09:
		return KeyTab
	case 0x0d, 0x0a:
		return KeyEnter
	case 0x08, 0x7f:
		return KeyBackspace
	case 0x1b:
		return KeyEscape
	case 0x00:
		return "ctrl_space"
	}
	if b >= 0x01 && b <= 0x1a {
		return "ctrl_" + string(rune('a'+b-1))
	}
	return ""
}

// DecodeKeys splits one read of raw terminal input into key names
// A lone ESC is reported as escape; unknown sequences are dropped
func DecodeKeys(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); {
		b := buf[i]

		if b == 0x1b && i+1 < len(buf) {
			switch buf[i+1] {
			case '[':
				end := i + 2
				// Parameter bytes 0x30-0x3F, final byte 0x40-0x7E
				for end < len(buf) && buf[end] >= 0x30 && buf[end] <= 0x3f {
					end++
				}
				if end < len(buf) {
					if name, ok := csiSequences[string(buf[i+2:end+1])]; ok {
						keys = append(keys, name)
					}
					i = end + 1
					continue
				}
				i = len(buf)
				continue
			case 'O':
				if i+2 < len(buf) {
					if name, ok := ss3Sequences[string(buf[i+2:i+3])]; ok {
						keys = append(keys, name)
					}
					i += 3
					continue
				}
			default:
				// Alt+key arrives as ESC followed by the key
				r, size := utf8.DecodeRune(buf[i+1:])
				if r >= 0x20 && r != utf8.RuneError {
					keys = append(keys, "alt_"+string(r))
					i += 1 + size
					continue
				}
			}
		}

		if b < 0x20 || b == 0x7f {
			if name := controlName(b); name != "" {
				keys = append(keys, name)
			}
			i++
			continue
		}

		if b == ' ' {
			keys = append(keys, KeySpace)
			i++
			continue
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r != utf8.RuneError {
			keys = append(keys, string(r))
		}
		i += size
	}
	return keys
}
