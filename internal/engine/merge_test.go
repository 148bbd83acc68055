package engine

import (
	"reflect"
	"testing"
)

func TestMergeRowLeft(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		want   []int
		moved  bool
		gained int
	}{
		{
			name:   "simple merge",
			input:  []int{2, 2, 0, 0},
			want:   []int{4, 0, 0, 0},
			moved:  true,
			gained: 4,
		},
		{
			name:   "merge with trailing tile",
			input:  []int{2, 2, 2, 0},
			want:   []int{4, 2, 0, 0},
			moved:  true,
			gained: 4,
		},
		{
			name:   "each tile merges once",
			input:  []int{2, 2, 2, 2},
			want:   []int{4, 4, 0, 0},
			moved:  true,
			gained: 8,
		},
		{
			name:   "gap does not block merge",
			input:  []int{2, 0, 2, 4},
			want:   []int{4, 4, 0, 0},
			moved:  true,
			gained: 4,
		},
		{
			name:   "no merge possible",
			input:  []int{2, 4, 8, 16},
			want:   []int{2, 4, 8, 16},
			moved:  false,
			gained: 0,
		},
		{
			name:   "already packed",
			input:  []int{4, 2, 0, 0},
			want:   []int{4, 2, 0, 0},
			moved:  false,
			gained: 0,
		},
		{
			name:   "empty row",
			input:  []int{0, 0, 0, 0},
			want:   []int{0, 0, 0, 0},
			moved:  false,
			gained: 0,
		},
		{
			name:   "single tile slides",
			input:  []int{0, 4, 0, 0},
			want:   []int{4, 0, 0, 0},
			moved:  true,
			gained: 0,
		},
		{
			name:   "compaction without merge",
			input:  []int{0, 2, 0, 4},
			want:   []int{2, 4, 0, 0},
			moved:  true,
			gained: 0,
		},
		{
			name:   "single cell row",
			input:  []int{2},
			want:   []int{2},
			moved:  false,
			gained: 0,
		},
		{
			name:   "wide row double merge",
			input:  []int{4, 4, 0, 4, 4, 2},
			want:   []int{8, 8, 2, 0, 0, 0},
			moved:  true,
			gained: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MergeRowLeft(tt.input)
			if !reflect.DeepEqual(res.Row, tt.want) {
				t.Errorf("MergeRowLeft(%v).Row = %v, want %v", tt.input, res.Row, tt.want)
			}
			if res.Moved != tt.moved {
				t.Errorf("MergeRowLeft(%v).Moved = %v, want %v", tt.input, res.Moved, tt.moved)
			}
			if res.Gained != tt.gained {
				t.Errorf("MergeRowLeft(%v).Gained = %d, want %d", tt.input, res.Gained, tt.gained)
			}
			if len(res.Row) != len(tt.input) {
				t.Errorf("MergeRowLeft(%v) changed row length to %d", tt.input, len(res.Row))
			}
		})
	}
}

func TestMergeRowLeftGainedAlwaysEven(t *testing.T) {
	rows := [][]int{
		{2, 2, 4, 4},
		{8, 8, 8, 0},
		{2, 4, 2, 4},
		{16, 0, 16, 16},
	}
	for _, row := range rows {
		res := MergeRowLeft(row)
		if res.Gained < 0 || res.Gained%2 != 0 {
			t.Errorf("MergeRowLeft(%v).Gained = %d, want even and non-negative", row, res.Gained)
		}
	}
}

func TestMergeRowLeftDoesNotMutateInput(t *testing.T) {
	row := []int{2, 0, 2, 4}
	MergeRowLeft(row)
	if !reflect.DeepEqual(row, []int{2, 0, 2, 4}) {
		t.Errorf("MergeRowLeft mutated its input: %v", row)
	}
}
