package life

// Config holds the immutable grid parameters of a session
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the 30x30 board seeded at 10%
func DefaultConfig() Config {
	return Config{
		Width:   30,
		Height:  30,
		Density: DefaultDensity,
	}
}

// Engine double-buffers a grid so stepping never allocates
type Engine struct {
	cur *Grid
	nxt *Grid
}

// NewEngine allocates both buffers for the configured size
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cur: NewGrid(cfg.Width, cfg.Height),
		nxt: NewGrid(cfg.Width, cfg.Height),
	}
}

// Grid returns the current generation
// The pointer is invalidated by the next Advance
func (e *Engine) Grid() *Grid { return e.cur }

// Reset repopulates the current generation
func (e *Engine) Reset(s *Seeder) {
	s.Seed(e.cur)
}

// Advance computes the next generation and swaps buffers
func (e *Engine) Advance() {
	// Buffers are allocated with equal size in NewEngine
	_ = StepInto(e.nxt, e.cur)
	e.cur, e.nxt = e.nxt, e.cur
}
