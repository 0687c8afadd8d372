// @focus: #sim { grid }
package life

// Grid is a fixed-size toroidal field of cells
// Cells are row-major: cells[y*width + x]
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid allocates an all-dead grid
// Non-positive dimensions are clamped to 1
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Wrap maps any index onto [0, dim)
func Wrap(i, dim int) int {
	return ((i % dim) + dim) % dim
}

// Width returns the column count
func (g *Grid) Width() int { return g.width }

// Height returns the row count
func (g *Grid) Height() int { return g.height }

// Alive reports the cell state, coordinates wrap on both axes
func (g *Grid) Alive(x, y int) bool {
	return g.cells[Wrap(y, g.height)*g.width+Wrap(x, g.width)]
}

// Set writes the cell state, coordinates wrap on both axes
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[Wrap(y, g.height)*g.width+Wrap(x, g.width)] = alive
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Population counts alive cells
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]bool, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// sameSize reports matching dimensions
func (g *Grid) sameSize(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}
