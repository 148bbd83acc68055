package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// Coord is a board position, x column and y row.
type Coord struct {
	X, Y int
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(g engine.Grid) []Coord {
	var cells []Coord
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(g engine.Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasMergeablePair returns true if any two horizontally or vertically
// adjacent cells hold equal values.
func HasMergeablePair(g engine.Grid) bool {
	for y, row := range g {
		for x, v := range row {
			if x+1 < len(row) && row[x+1] == v {
				return true
			}
			if y+1 < len(g) && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true while at least one move is still possible: an empty
// cell to slide into, or an adjacent equal pair to merge.
func CanMove(g engine.Grid) bool {
	return HasEmptyCell(g) || HasMergeablePair(g)
}

// MaxTile returns the highest tile value on the board, 0 for an empty board.
func MaxTile(g engine.Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
