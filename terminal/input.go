package terminal

import "errors"

var (
	// ErrNotTerminal is returned when raw input is requested on a non-tty
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrUnsupported is returned on platforms without termios
	ErrUnsupported = errors.New("raw terminal input not supported on this platform")
)

// InputSource yields at most one pending key per call without blocking
type InputSource interface {
	// Poll returns the next pending key, ok is false when nothing is pending
	Poll() (key rune, ok bool)
}

// InputDevice is an InputSource holding a terminal mode override
type InputDevice interface {
	InputSource

	// Close restores the previous terminal mode. Safe to call multiple times
	Close() error
}

// Opener acquires an InputDevice, callers must Close it on every exit path
type Opener func() (InputDevice, error)
