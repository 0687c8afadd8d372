package render

import "github.com/gdamore/tcell/v2"

// Palette is the ordered color cycle applied to alive cells, one color per generation
type Palette []tcell.Color

// DefaultPalette is green, yellow, blue, magenta, cyan in classic ANSI order (SGR 32-36)
func DefaultPalette() Palette {
	return Palette{
		tcell.ColorGreen,
		tcell.ColorOlive,
		tcell.ColorNavy,
		tcell.ColorPurple,
		tcell.ColorTeal,
	}
}

// ColorFor selects palette[generation mod len(palette)]
// Negative generations are folded into range; an empty palette yields the default color
func (p Palette) ColorFor(generation int) tcell.Color {
	if len(p) == 0 {
		return tcell.ColorDefault
	}
	i := generation % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
