package life

import (
	"math/rand"
	"time"
)

// DefaultDensity is the probability of a cell starting alive
const DefaultDensity = 0.10

// Initialize overwrites every cell, each alive independently with probability density
func Initialize(g *Grid, rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// Seeder repopulates grids from a retained random source
// Not safe for concurrent use, rand.Rand is unsynchronized
type Seeder struct {
	rng     *rand.Rand
	density float64
}

// NewSeeder creates a seeder; seed 0 selects a time-based seed
func NewSeeder(seed int64, density float64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		rng:     rand.New(rand.NewSource(seed)),
		density: density,
	}
}

// Density returns the configured alive probability
func (s *Seeder) Density() float64 { return s.density }

// Seed repopulates g from the next values of the random stream
func (s *Seeder) Seed(g *Grid) {
	Initialize(g, s.rng, s.density)
}
