package terminal

import "errors"

// ErrUnsupportedPlatform is returned by the raw backend where it is not
// implemented, the tcell output works there instead
var ErrUnsupportedPlatform = errors.New("raw terminal backend not supported on this platform")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	Read(stopCh <-chan struct{}) ([]byte, error)
}
