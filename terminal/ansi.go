// @focus: #terminal { ansi }
package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
)

// ClearHome clears the screen and homes the cursor
func ClearHome() []byte { return csiClear }

// SGRReset resets all attributes
func SGRReset() []byte { return csiSGR0 }

// CursorHide hides the cursor
func CursorHide() []byte { return csiCursorHide }

// CursorShow shows the cursor
func CursorShow() []byte { return csiCursorShow }

// appendSGR appends CSI n m
func appendSGR(buf []byte, n int) []byte {
	buf = append(buf, csi...)
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, 'm')
}
