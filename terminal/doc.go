// @focus: #sys { term }
// Package terminal provides the small slice of terminal control a character-stream
// game needs.
//
// Features:
//   - Non-canonical, no-echo, non-blocking stdin for per-frame key polling
//   - Scoped mode acquisition with restore on every exit path
//   - Basic (16), 256-color and true color foreground sequences from tcell colors
//   - Emergency restoration after a panic
//
// Sequences are emitted directly, terminfo/termcap is not consulted.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
