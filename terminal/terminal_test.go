package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestAppendFgBasicMatchesClassicCodes(t *testing.T) {
	tests := []struct {
		color tcell.Color
		want  string
	}{
		{tcell.ColorGreen, "\x1b[32m"},
		{tcell.ColorOlive, "\x1b[33m"},
		{tcell.ColorNavy, "\x1b[34m"},
		{tcell.ColorPurple, "\x1b[35m"},
		{tcell.ColorTeal, "\x1b[36m"},
		{tcell.ColorRed, "\x1b[91m"},
		{tcell.ColorDefault, "\x1b[39m"},
	}
	for _, tt := range tests {
		got := string(AppendFg(nil, tt.color, ColorModeBasic))
		if got != tt.want {
			t.Errorf("Color %v: expected %q, got %q", tt.color, tt.want, got)
		}
	}
}

func TestAppendFgBasicApproximatesRGB(t *testing.T) {
	got := string(AppendFg(nil, tcell.NewRGBColor(0, 250, 5), ColorModeBasic))
	if got != "\x1b[92m" {
		t.Errorf("Expected bright green approximation, got %q", got)
	}
}

func TestAppendFg256(t *testing.T) {
	got := string(AppendFg(nil, tcell.ColorGreen, ColorMode256))
	if got != "\x1b[38;5;2m" {
		t.Errorf("Expected palette index 2, got %q", got)
	}

	got = string(AppendFg(nil, tcell.NewRGBColor(255, 0, 0), ColorMode256))
	if got != "\x1b[38;5;196m" {
		t.Errorf("Expected cube red 196, got %q", got)
	}
}

func TestAppendFgTrueColor(t *testing.T) {
	got := string(AppendFg(nil, tcell.NewRGBColor(12, 34, 56), ColorModeTrueColor))
	if got != "\x1b[38;2;12;34;56m" {
		t.Errorf("Expected RGB sequence, got %q", got)
	}
}

func TestAppendFgAppends(t *testing.T) {
	buf := []byte("x")
	buf = AppendFg(buf, tcell.ColorGreen, ColorModeBasic)
	if !bytes.HasPrefix(buf, []byte("x\x1b[")) {
		t.Errorf("Expected existing content to be kept, got %q", buf)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"basic", ColorModeBasic},
		{"ansi", ColorModeBasic},
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24bit", ColorModeTrueColor},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if err != nil {
			t.Errorf("ParseColorMode(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	if _, err := ParseColorMode("sepia"); err == nil {
		t.Error("Expected error for unknown color mode")
	}
}

func TestDetectColorMode(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	if m := DetectColorMode(); m != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM, got %v", m)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if m := DetectColorMode(); m != ColorMode256 {
		t.Errorf("Expected 256 from TERM, got %v", m)
	}

	t.Setenv("TERM", "vt100")
	if m := DetectColorMode(); m != ColorModeBasic {
		t.Errorf("Expected basic fallback, got %v", m)
	}
}

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput('x', NoKey, 'q')

	if k, ok := in.Poll(); !ok || k != 'x' {
		t.Errorf("Expected 'x', got %q ok=%v", k, ok)
	}
	if _, ok := in.Poll(); ok {
		t.Error("Expected NoKey entry to report nothing pending")
	}
	if k, ok := in.Poll(); !ok || k != 'q' {
		t.Errorf("Expected 'q', got %q ok=%v", k, ok)
	}
	if _, ok := in.Poll(); ok {
		t.Error("Expected exhausted script to report nothing pending")
	}
	if in.Polls() != 4 {
		t.Errorf("Expected 4 polls, got %d", in.Polls())
	}

	dev, err := in.Opener()()
	if err != nil {
		t.Fatalf("Opener failed: %v", err)
	}
	dev.Close()
	dev.Close()
	if in.Closed() != 2 {
		t.Errorf("Expected 2 closes recorded, got %d", in.Closed())
	}
}
