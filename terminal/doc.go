// @focus: #sys { term }
// Package terminal provides the output and input boundary of the renderer.
//
// Features:
//   - Enumerated 16/256-color palette (Color)
//   - Output sinks receiving positioned cell writes: raw ANSI, tcell, in-memory Capture
//   - Raw-mode stdin/stdout backend with poll-based input
//   - Key decoding to canonical names shared by every input source
//
// The ANSI path bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
