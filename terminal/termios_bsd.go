//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)

// fread selects the input queue for TIOCFLUSH
const fread = 0x1

// flushInput discards bytes received but not read
func flushInput(fd int) {
	unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, fread)
}
