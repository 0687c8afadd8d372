//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

// StdinOpener reports that polling input is unavailable
func StdinOpener() (InputDevice, error) {
	return nil, ErrUnsupported
}

// resetTerminalMode has nothing to restore without termios
func resetTerminalMode() {}
