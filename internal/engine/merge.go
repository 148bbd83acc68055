package engine

// RowResult is the outcome of collapsing a single row leftward.
type RowResult struct {
	Row    []int
	Moved  bool
	Gained int
}

// MergeRowLeft slides and merges one row toward index 0 using the classic
// 2048 rule: each tile merges at most once per move. The pass keeps a single
// pending tile; a merged value goes straight to the output and can never
// merge again within the same move, which enforces the rule structurally.
// The returned row is freshly allocated and has the same length as the input.
func MergeRowLeft(row []int) RowResult {
	out := make([]int, 0, len(row))
	gained := 0
	pending := 0

	for _, cell := range row {
		switch {
		case cell == 0:
			// Empty cells never block a later merge.
		case pending == 0:
			pending = cell
		case cell == pending:
			out = append(out, pending*2)
			gained += pending * 2
			pending = 0
		default:
			out = append(out, pending)
			pending = cell
		}
	}
	if pending != 0 {
		out = append(out, pending)
	}

	// Pad back to the original length.
	for len(out) < len(row) {
		out = append(out, 0)
	}

	moved := false
	for i := range row {
		if out[i] != row[i] {
			moved = true
			break
		}
	}

	return RowResult{Row: out, Moved: moved, Gained: gained}
}
