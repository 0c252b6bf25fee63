// @lixen: #focus{sys[feed,pty,process]}
package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// Default pseudo-terminal size reported to the child
const (
	DefaultCols = 80
	DefaultRows = 24
)

// lineBuffer bounds how many undelivered lines the reader may queue
const lineBuffer = 64

// Feed runs a child process on a pseudo-terminal and delivers its output
// one line at a time with escape sequences removed
type Feed struct {
	cmd    *exec.Cmd
	pty    *os.File
	lines  chan string
	done   chan struct{}
	exited chan struct{}
	logger *log.Logger

	closeOnce sync.Once
	waitErr   error
}

// Option configures a Feed
type Option func(*Feed)

// WithLogger reports process lifecycle events to l
func WithLogger(l *log.Logger) Option {
	return func(f *Feed) {
		f.logger = l
	}
}

func (f *Feed) logf(format string, args ...any) {
	if f.logger != nil {
		f.logger.Printf(format, args...)
	}
}

// Start launches command on a new pty sized DefaultCols x DefaultRows
// Cancelling ctx kills the child
func Start(ctx context.Context, command string, args ...string) (*Feed, error) {
	return StartWithOptions(ctx, nil, command, args...)
}

// StartWithOptions is Start with options applied before launch
func StartWithOptions(ctx context.Context, opts []Option, command string, args ...string) (*Feed, error) {
	if command == "" {
		return nil, errors.New("feed: empty command")
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = append(os.Environ(),
		"TERM=dumb",
		"COLUMNS="+strconv.Itoa(DefaultCols),
		"LINES="+strconv.Itoa(DefaultRows),
	)

	f := &Feed{
		cmd:    cmd,
		lines:  make(chan string, lineBuffer),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: DefaultRows, Cols: DefaultCols})
	if err != nil {
		f.logf("feed: start %q failed: %v", command, err)
		return nil, fmt.Errorf("feed: start %s: %w", command, err)
	}
	f.pty = ptmx
	f.logf("feed: started %q pid %d", command, cmd.Process.Pid)

	go f.read(ctx)
	return f, nil
}

// Lines delivers output lines in order, closed once the child exits
func (f *Feed) Lines() <-chan string {
	return f.lines
}

// Resize reports a new window size to the child
func (f *Feed) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("feed: invalid size %dx%d", cols, rows)
	}
	return pty.Setsize(f.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Err returns the child's exit error once Lines is closed
func (f *Feed) Err() error {
	select {
	case <-f.exited:
		return f.waitErr
	default:
		return nil
	}
}

// Close kills the child, releases the pty and waits for the reader to stop
// Safe to call multiple times, optional once Lines has closed
func (f *Feed) Close() error {
	f.closeOnce.Do(func() {
		close(f.done)
		if f.cmd.Process != nil {
			f.cmd.Process.Kill()
		}
		f.pty.Close()
	})
	<-f.exited
	return nil
}

func (f *Feed) read(ctx context.Context) {
	defer close(f.exited)
	defer close(f.lines)

	r := bufio.NewReader(f.pty)
	for {
		raw, err := r.ReadString('\n')
		if raw != "" {
			if !f.send(ctx, CleanLine(raw)) {
				break
			}
		}
		// Linux reports EIO on the master once the child side is gone
		if err != nil {
			break
		}
	}

	f.waitErr = f.cmd.Wait()
	if f.waitErr != nil {
		f.logf("feed: %s exited: %v", f.cmd.Path, f.waitErr)
	}
	// Release the master side even when the feed ends without Close
	f.pty.Close()
}

func (f *Feed) send(ctx context.Context, line string) bool {
	select {
	case f.lines <- line:
		return true
	case <-f.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// tabWidth is the tab stop interval used when expanding tabs
const tabWidth = 8

// CleanLine turns one raw terminal line into plain text
// Escape sequences and the line terminator are removed, a carriage return
// inside the line keeps only the text written after it, tabs become spaces
func CleanLine(raw string) string {
	s := strings.TrimRight(raw, "\r\n")
	if i := strings.LastIndexByte(s, '\r'); i >= 0 {
		s = s[i+1:]
	}
	return ExpandTabs(StripANSI(s))
}

// ExpandTabs replaces each tab with spaces up to the next tab stop
// Columns are counted in runes, one per cell
func ExpandTabs(s string) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + tabWidth)
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// StripANSI removes CSI, OSC and two-byte escape sequences and drops
// control characters other than tab
func StripANSI(s string) string {
	if strings.IndexByte(s, 0x1b) < 0 && !hasControl(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != 0x1b {
			if c >= 0x20 || c == '\t' {
				if c != 0x7f {
					sb.WriteByte(c)
				}
			}
			continue
		}
		if i+1 >= len(s) {
			break
		}
		switch s[i+1] {
		case '[':
			// CSI: parameters and intermediates up to a final byte in 0x40-0x7e
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
		case ']':
			// OSC: terminated by BEL or ST (ESC \)
			j := i + 2
			for j < len(s) {
				if s[j] == 0x07 {
					break
				}
				if s[j] == 0x1b && j+1 < len(s) && s[j+1] == '\\' {
					j++
					break
				}
				j++
			}
			i = j
		case '(', ')', '*', '+':
			// Charset designation carries one more byte
			i += 2
		default:
			i++
		}
	}
	return sb.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < 0x20 && s[i] != '\t') || s[i] == 0x7f {
			return true
		}
	}
	return false
}
