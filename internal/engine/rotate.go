package engine

// rotationFor maps a direction to the counter-clockwise rotation that turns
// its move into the canonical "move left". The inverse rotation is
// (360 - d) % 360, so rotating in and back out is the identity for every
// direction.
var rotationFor = map[Direction]int{
	DirUp:    90,
	DirRight: 180,
	DirDown:  270,
	DirLeft:  0,
}

// inverseRotation returns the degrees that undo a rotation by deg.
func inverseRotation(deg int) int {
	return (360 - deg) % 360
}

// RotateCCW returns a new grid rotated counter-clockwise by the given number
// of degrees, which must be one of 0, 90, 180 or 270. The input is never
// modified; 0 degrees still returns an independent copy.
func RotateCCW(g Grid, degrees int) Grid {
	switch degrees {
	case 0:
		return g.Clone()
	case 90:
		return rotate90(g)
	case 180:
		return rotate180(g)
	case 270:
		return rotate270(g)
	default:
		panic("engine: rotation degrees must be 0, 90, 180 or 270")
	}
}

// rotate90 turns columns into rows: out[c][r] = in[r][cols-1-c].
func rotate90(g Grid) Grid {
	rows, cols := len(g), len(g[0])
	out := NewGrid(cols, rows)
	for c := range cols {
		for r := range rows {
			out[c][r] = g[r][cols-1-c]
		}
	}
	return out
}

// rotate180 flips both axes: out[r][c] = in[rows-1-r][cols-1-c].
func rotate180(g Grid) Grid {
	rows, cols := len(g), len(g[0])
	out := NewGrid(rows, cols)
	for r := range rows {
		for c := range cols {
			out[r][c] = g[rows-1-r][cols-1-c]
		}
	}
	return out
}

// rotate270 is the inverse of rotate90: out[c][r] = in[rows-1-r][c].
func rotate270(g Grid) Grid {
	rows, cols := len(g), len(g[0])
	out := NewGrid(cols, rows)
	for c := range cols {
		for r := range rows {
			out[c][r] = g[rows-1-r][c]
		}
	}
	return out
}
