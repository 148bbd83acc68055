package engine

import "fmt"

// ShapeError reports a non-rectangular grid passed to Move. It signals a
// contract violation by the caller, not a recoverable runtime condition:
// board constructors only ever build rectangular grids.
type ShapeError struct {
	Rows int // number of rows in the offending grid
	Row  int // index of the first row with a mismatched length, -1 if empty
	Want int // expected row length
	Got  int // actual row length
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return "engine: grid must have at least one row and one column"
	}
	return fmt.Sprintf("engine: ragged grid: row %d has length %d, want %d", e.Row, e.Got, e.Want)
}

// shapeErr builds the ShapeError describing why Validate rejected g.
func shapeErr(g Grid) *ShapeError {
	if len(g) == 0 || len(g[0]) == 0 {
		return &ShapeError{Rows: len(g), Row: -1}
	}
	want := len(g[0])
	for r, row := range g {
		if len(row) != want {
			return &ShapeError{Rows: len(g), Row: r, Want: want, Got: len(row)}
		}
	}
	// Validate said invalid but no row differs; should be unreachable.
	return &ShapeError{Rows: len(g), Row: -1}
}

// MoveResult is the outcome of sliding a grid in one direction.
type MoveResult struct {
	Grid   Grid // post-move grid, same dimensions as the input
	Moved  bool // whether any tile moved or merged
	Gained int  // sum of values created by merges during this move
}

// Move slides the grid in the given direction and returns the resulting
// grid, whether anything moved, and the points gained from merges.
//
// The grid is first rotated counter-clockwise into the canonical "move left"
// orientation, every row is merged independently, and the result is rotated
// back. Move never mutates its input and returns a ShapeError for grids that
// are not rectangular.
func Move(g Grid, dir Direction) (MoveResult, error) {
	if !Validate(g) {
		return MoveResult{}, shapeErr(g)
	}

	deg := rotationFor[dir]
	rotated := RotateCCW(g, deg)

	merged := make(Grid, len(rotated))
	moved := false
	gained := 0
	for r, row := range rotated {
		res := MergeRowLeft(row)
		merged[r] = res.Row
		moved = moved || res.Moved
		gained += res.Gained
	}

	return MoveResult{
		Grid:   RotateCCW(merged, inverseRotation(deg)),
		Moved:  moved,
		Gained: gained,
	}, nil
}
