package life

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when step buffers differ in size
var ErrDimensionMismatch = errors.New("grid dimensions differ")

// NextState applies B3/S23: birth on 3, survival on 2 or 3
func NextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Neighbors counts alive cells among the 8 toroidal neighbours of (x, y)
// On grids narrower than 3 cells an offset may alias another, each offset is counted once
func Neighbors(g *Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		row := Wrap(y+dy+g.height, g.height) * g.width
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[row+Wrap(x+dx+g.width, g.width)] {
				count++
			}
		}
	}
	return count
}

// Step computes the next generation into a new grid, src is only read
func Step(src *Grid) *Grid {
	dst := NewGrid(src.width, src.height)
	// Dimensions match by construction
	_ = StepInto(dst, src)
	return dst
}

// StepInto computes the next generation of src into dst
// dst and src must be distinct grids of equal size
func StepInto(dst, src *Grid) error {
	if !dst.sameSize(src) {
		return fmt.Errorf("step %dx%d into %dx%d: %w",
			src.width, src.height, dst.width, dst.height, ErrDimensionMismatch)
	}
	if dst == src {
		return fmt.Errorf("step in place: source and destination are the same grid")
	}

	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			idx := y*src.width + x
			dst.cells[idx] = NextState(src.cells[idx], Neighbors(src, x, y))
		}
	}
	return nil
}
