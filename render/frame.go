// @focus: #render { frame }
package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/lixenwraith/gol-term/life"
	"github.com/lixenwraith/gol-term/terminal"
)

const (
	// AliveGlyph and DeadGlyph are two columns wide so cells look square
	AliveGlyph = "██"
	DeadGlyph  = "  "
)

// Renderer draws grid snapshots as full-screen ANSI frames
type Renderer struct {
	writer  *bufio.Writer
	palette Palette
	mode    terminal.ColorMode
	status  bool

	// Reused across frames to avoid per-frame allocation
	line []byte
	num  [20]byte
}

// New creates a renderer writing to w
func New(w io.Writer, palette Palette, mode terminal.ColorMode) *Renderer {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &Renderer{
		writer:  bufio.NewWriterSize(w, 8192),
		palette: palette,
		mode:    mode,
		status:  true,
	}
}

// SetStatusLine toggles the generation/population footer
func (r *Renderer) SetStatusLine(enabled bool) { r.status = enabled }

// Palette returns the color cycle in use
func (r *Renderer) Palette() Palette { return r.palette }

// Render clears the screen and draws g in the color of the given generation
// The grid is only read; the frame is flushed before returning
func (r *Renderer) Render(g *life.Grid, generation int) error {
	w := r.writer
	w.Write(terminal.ClearHome())

	fg := terminal.AppendFg(r.line[:0], r.palette.ColorFor(generation), r.mode)
	sgr0 := terminal.SGRReset()

	for y := 0; y < g.Height(); y++ {
		painted := false
		for x := 0; x < g.Width(); x++ {
			if g.Alive(x, y) {
				if !painted {
					w.Write(fg)
					painted = true
				}
				w.WriteString(AliveGlyph)
			} else {
				w.WriteString(DeadGlyph)
			}
		}
		if painted {
			w.Write(sgr0)
		}
		w.WriteByte('\n')
	}

	if r.status {
		w.WriteString("Generation ")
		w.Write(strconv.AppendInt(r.num[:0], int64(generation), 10))
		w.WriteString("  Population ")
		w.Write(strconv.AppendInt(r.num[:0], int64(g.Population()), 10))
		w.WriteString("  [r] reset  [q] quit\n")
	}

	r.line = fg[:0]
	return w.Flush()
}

// Clear blanks the screen and homes the cursor
func (r *Renderer) Clear() error {
	r.writer.Write(terminal.SGRReset())
	r.writer.Write(terminal.ClearHome())
	return r.writer.Flush()
}

// SetCursorVisible shows or hides the cursor
func (r *Renderer) SetCursorVisible(visible bool) error {
	if visible {
		r.writer.Write(terminal.CursorShow())
	} else {
		r.writer.Write(terminal.CursorHide())
	}
	return r.writer.Flush()
}
