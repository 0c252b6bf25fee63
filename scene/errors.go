package scene

import "errors"

var (
	// ErrInvalidState is returned when an operation needs an active element and there is none
	ErrInvalidState = errors.New("scene: no valid active element")

	// ErrUnsupported is returned when the active element lacks the requested capability
	ErrUnsupported = errors.New("scene: operation not supported by element")
)
