package core

// Grid stores a 2D grid of byte-sized cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice for renderers. Callers must not write to it.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). The coordinates must be in bounds.
func (g *Grid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y). The coordinates must be in bounds.
func (g *Grid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
