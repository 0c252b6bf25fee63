//go:build !unix

package terminal

// unsupportedBackend stands in for the raw backend on platforms without
// termios, every operation fails with ErrUnsupportedPlatform
type unsupportedBackend struct{}

// NewBackend returns a backend whose Init fails with ErrUnsupportedPlatform
func NewBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error {
	return ErrUnsupportedPlatform
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int) {
	return 0, 0
}

func (unsupportedBackend) Write(p []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupportedBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}
