package core

// Coord addresses a single cell.
type Coord struct {
	X, Y int
}

var (
	crossOffsets = []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	xOffsets     = []Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	plusOffsets  = append(append([]Coord(nil), crossOffsets...), xOffsets...)
)

// Neighborhood returns the offsets toggled alongside the target cell. The
// returned slice is shared and must not be modified.
func Neighborhood(mode Mode) []Coord {
	switch mode {
	case ModeX:
		return xOffsets
	case ModePlus:
		return plusOffsets
	default:
		return crossOffsets
	}
}

// Toggle steps the value at (x, y) and every in-bounds neighbor implied by
// mode forward (or backward when reverse is set) modulo colors. Neighbors
// past the edge are skipped, not wrapped. It returns the number of cells
// changed, or ErrOutOfBounds / ErrInvalidColors without touching the grid.
func Toggle(g *Grid, x, y int, mode Mode, colors int, reverse bool) (int, error) {
	if colors < MinColors || colors > MaxColors {
		return 0, ErrInvalidColors
	}
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	step := stepForward
	if reverse {
		step = stepBackward
	}
	g.data[g.Index(x, y)] = step(g.data[g.Index(x, y)], colors)
	changed := 1
	for _, off := range Neighborhood(mode) {
		nx, ny := x+off.X, y+off.Y
		if !g.InBounds(nx, ny) {
			continue
		}
		idx := g.Index(nx, ny)
		g.data[idx] = step(g.data[idx], colors)
		changed++
	}
	return changed, nil
}

func stepForward(v uint8, colors int) uint8 {
	return uint8((int(v) + 1) % colors)
}

func stepBackward(v uint8, colors int) uint8 {
	return uint8((int(v) - 1 + colors) % colors)
}

// IsSolved reports whether every cell holds the same value as cell (0, 0).
func IsSolved(g *Grid) bool {
	if g == nil || len(g.data) == 0 {
		return true
	}
	first := g.data[0]
	for _, v := range g.data {
		if v != first {
			return false
		}
	}
	return true
}
