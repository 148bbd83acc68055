// Package engine implements the 2048 board transform: slide a rectangular
// grid of tiles in one of four directions, merging equal neighbors once per
// move. All functions are pure; inputs are never mutated or aliased by the
// returned grids, so concurrent calls on different grids need no locking.
package engine

// Grid is a rectangular board in row-major order. A cell holds a positive
// power-of-two tile value, or 0 for empty. Cells are never negative.
type Grid [][]int

// Direction is one of the four cardinal move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// Clone returns a deep copy that shares no row storage with g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// Equal reports whether two grids have identical dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Validate reports whether the grid is rectangular: at least one row and one
// column, every row the same length as the first. Called before any transform.
func Validate(g Grid) bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return false
	}
	want := len(g[0])
	for _, row := range g[1:] {
		if len(row) != want {
			return false
		}
	}
	return true
}
