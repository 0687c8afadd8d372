package terminal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeBasic     ColorMode = iota // SGR 30-37 / 90-97
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeBasic:
		return "basic"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseColorMode resolves a -color flag value, "auto" and "" detect from environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "basic", "16", "ansi":
		return ColorModeBasic, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorModeBasic, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
// Falls back to basic colors, which every ANSI terminal renders
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}

	return ColorModeBasic
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int32{0, 95, 135, 175, 215, 255}

// AppendFg appends the foreground sequence for c in the given mode
// Default/reset colors and invalid colors emit the terminal default foreground
func AppendFg(buf []byte, c tcell.Color, mode ColorMode) []byte {
	if c == tcell.ColorDefault || c == tcell.ColorReset || !c.Valid() {
		return append(buf, csiDefaultFg...)
	}

	idx, isPalette := paletteIndex(c)

	switch mode {
	case ColorModeTrueColor:
		r, g, b := c.RGB()
		buf = append(buf, csiFgRGB...)
		buf = strconv.AppendInt(buf, int64(r), 10)
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(g), 10)
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(b), 10)
		return append(buf, 'm')

	case ColorMode256:
		if !isPalette {
			idx = nearest256(c.RGB())
		}
		buf = append(buf, csiFg256...)
		buf = strconv.AppendInt(buf, int64(idx), 10)
		return append(buf, 'm')

	default:
		if !isPalette || idx > 15 {
			idx = nearest16(c)
		}
		if idx < 8 {
			return appendSGR(buf, 30+idx)
		}
		return appendSGR(buf, 90+idx-8)
	}
}

// paletteIndex returns the xterm palette index of a non-RGB color
func paletteIndex(c tcell.Color) (int, bool) {
	if c.IsRGB() {
		return 0, false
	}
	idx := int(c - tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return 0, false
	}
	return idx, true
}

// nearest16 picks the closest of the 16 basic colors by squared RGB distance
func nearest16(c tcell.Color) int {
	r, g, b := c.RGB()
	best, bestDist := 0, int32(-1)
	for i := 0; i < 16; i++ {
		pr, pg, pb := tcell.PaletteColor(i).RGB()
		d := sq(r-pr) + sq(g-pg) + sq(b-pb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// nearest256 maps an RGB value onto the 6x6x6 color cube
func nearest256(r, g, b int32) int {
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

func cubeIndex(v int32) int {
	best := 0
	bestDist := abs(v - cubeValues[0])
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(v - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func sq(x int32) int32 { return x * x }

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
