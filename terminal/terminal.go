package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrClosed is returned by ReadKey once input has ended
var ErrClosed = errors.New("terminal input closed")

// Terminal drives a raw-mode ANSI terminal through a Backend
// Output writes go through an embedded ANSIOutput
type Terminal struct {
	*ANSIOutput

	backend Backend
	stopCh  chan struct{}
	pending []string

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal over the given backend, nil selects stdin/stdout
func New(backend Backend) *Terminal {
	if backend == nil {
		backend = NewBackend()
	}
	return &Terminal{
		ANSIOutput: NewANSIOutput(backendWriter{backend}),
		backend:    backend,
		stopCh:     make(chan struct{}),
	}
}

// Init enters raw mode, alternate screen, hides cursor
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiCursorHide)
	t.backend.Write(csiAutoWrapOff)
	t.invalidateCursor()

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	close(t.stopCh)

	t.backend.Write(csiSGR0)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alternate screen so the main buffer wraps again
	t.backend.Write(csiAutoWrapOn)
	t.backend.Fini()

	t.finalized = true
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// ReadKey blocks until the next key press and returns its name
func (t *Terminal) ReadKey() (string, error) {
	for len(t.pending) == 0 {
		buf, err := t.backend.Read(t.stopCh)
		if err != nil {
			return "", err
		}
		if buf == nil {
			return "", ErrClosed
		}
		t.pending = DecodeKeys(buf)
	}
	key := t.pending[0]
	t.pending = t.pending[1:]
	return key, nil
}

// backendWriter adapts Backend to io.Writer for the buffered output
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
