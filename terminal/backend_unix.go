//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawInput holds stdin in non-canonical, no-echo, non-blocking mode
// Output post-processing and signal keys stay enabled so frames keep "\n" semantics and Ctrl+C still interrupts
type RawInput struct {
	in      *os.File
	inFd    int
	oldTerm *term.State

	mu     sync.Mutex
	closed bool
	buf    [1]byte
}

// OpenRaw switches f into polling mode and returns the device that restores it
func OpenRaw(f *os.File) (*RawInput, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("save terminal state: %w", err)
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("read termios: %w", err)
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("write termios: %w", err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		term.Restore(fd, old)
		return nil, fmt.Errorf("set non-blocking: %w", err)
	}

	return &RawInput{
		in:      f,
		inFd:    fd,
		oldTerm: old,
	}, nil
}

// StdinOpener opens os.Stdin in polling mode
func StdinOpener() (InputDevice, error) {
	return OpenRaw(os.Stdin)
}

// Poll reads a single pending byte, returning immediately when none is queued
func (r *RawInput) Poll() (rune, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, false
	}

	n, err := unix.Read(r.inFd, r.buf[:])
	if err != nil || n == 0 {
		// EAGAIN/EWOULDBLOCK and EOF both mean nothing pending
		return 0, false
	}
	return rune(r.buf[0]), true
}

// Close flushes unread keys and restores blocking, canonical, echoing input
func (r *RawInput) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	// Keys typed during play must not leak into the next prompt
	flushInput(r.inFd)

	errNb := unix.SetNonblock(r.inFd, false)
	if err := term.Restore(r.inFd, r.oldTerm); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	if errNb != nil {
		return fmt.Errorf("clear non-blocking: %w", errNb)
	}
	return nil
}
