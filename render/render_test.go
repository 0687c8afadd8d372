package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gol-term/life"
	"github.com/lixenwraith/gol-term/terminal"
)

// stripSGR removes color sequences so visible columns can be counted
func stripSGR(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' && s[i] != 'H' && s[i] != 'J' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestPaletteColorForCycles(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(p))
	}
	if p.ColorFor(5) != p.ColorFor(0) {
		t.Error("Expected generation 5 to reuse generation 0 color")
	}
	for g := 0; g < 12; g++ {
		if got := p.ColorFor(g); got != p[g%5] {
			t.Errorf("Generation %d: expected %v, got %v", g, p[g%5], got)
		}
	}
	if got := p.ColorFor(-1); got != p[4] {
		t.Errorf("Expected negative generation to fold to last color, got %v", got)
	}
	if got := (Palette{}).ColorFor(3); got != tcell.ColorDefault {
		t.Errorf("Expected default color for empty palette, got %v", got)
	}
}

func TestRenderFrameLayout(t *testing.T) {
	g := life.NewGrid(4, 3)
	g.Set(0, 0, true)
	g.Set(3, 2, true)

	var out bytes.Buffer
	r := New(&out, nil, terminal.ColorModeBasic)
	r.SetStatusLine(false)

	if err := r.Render(g, 0); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	frame := out.String()
	if !strings.HasPrefix(frame, "\x1b[2J\x1b[H") {
		t.Errorf("Expected frame to start with clear+home, got %q", frame[:min(len(frame), 10)])
	}

	lines := strings.Split(strings.TrimSuffix(stripSGR(frame), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 rows, got %d: %q", len(lines), lines)
	}
	want := []string{
		"██" + "      ",
		"        ",
		"      " + "██",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestRenderColorFollowsGeneration(t *testing.T) {
	g := life.NewGrid(2, 2)
	g.Set(1, 1, true)

	var out bytes.Buffer
	r := New(&out, DefaultPalette(), terminal.ColorModeBasic)

	expected := []string{"\x1b[32m", "\x1b[33m", "\x1b[34m", "\x1b[35m", "\x1b[36m", "\x1b[32m"}
	for gen, code := range expected {
		out.Reset()
		if err := r.Render(g, gen); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.Contains(out.String(), code+AliveGlyph) {
			t.Errorf("Generation %d: expected %q before alive glyph in %q", gen, code, out.String())
		}
	}
}

func TestRenderDoesNotMutateGrid(t *testing.T) {
	s := life.NewSeeder(3, 0.4)
	g := life.NewGrid(30, 30)
	s.Seed(g)
	orig := g.Clone()

	var out bytes.Buffer
	r := New(&out, nil, terminal.ColorModeTrueColor)
	if err := r.Render(g, 17); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !g.Equal(orig) {
		t.Error("Expected grid to be unchanged by Render")
	}
}

func TestRenderRowWidth(t *testing.T) {
	s := life.NewSeeder(5, 0.5)
	g := life.NewGrid(30, 30)
	s.Seed(g)

	var out bytes.Buffer
	r := New(&out, nil, terminal.ColorMode256)
	r.SetStatusLine(false)
	if err := r.Render(g, 2); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows := strings.Split(strings.TrimSuffix(stripSGR(out.String()), "\n"), "\n")
	if len(rows) != 30 {
		t.Fatalf("Expected 30 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 60 {
			t.Errorf("Row %d: expected 60 columns, got %d", i, n)
		}
	}
}

func TestRenderStatusLine(t *testing.T) {
	g := life.NewGrid(3, 3)
	g.Set(0, 0, true)
	g.Set(1, 1, true)

	var out bytes.Buffer
	r := New(&out, nil, terminal.ColorModeBasic)
	if err := r.Render(g, 42); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out.String(), "Generation 42  Population 2") {
		t.Errorf("Expected status line, got %q", out.String())
	}
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, nil, terminal.ColorModeBasic)
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if out.String() != "\x1b[0m\x1b[2J\x1b[H" {
		t.Errorf("Unexpected clear sequence %q", out.String())
	}
}
