package engine

import "testing"

func TestRotateCCWFormulas(t *testing.T) {
	// 2x3 grid with distinct values so every index mapping is visible.
	in := Grid{
		{1, 2, 3},
		{4, 5, 6},
	}

	tests := []struct {
		degrees int
		want    Grid
	}{
		{
			degrees: 0,
			want:    Grid{{1, 2, 3}, {4, 5, 6}},
		},
		{
			degrees: 90,
			want:    Grid{{3, 6}, {2, 5}, {1, 4}},
		},
		{
			degrees: 180,
			want:    Grid{{6, 5, 4}, {3, 2, 1}},
		},
		{
			degrees: 270,
			want:    Grid{{4, 1}, {5, 2}, {6, 3}},
		},
	}

	for _, tt := range tests {
		got := RotateCCW(in, tt.degrees)
		if !got.Equal(tt.want) {
			t.Errorf("RotateCCW(%d) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	grids := []Grid{
		{{2}},
		{{2, 4}, {8, 16}},
		{{1, 2, 3}, {4, 5, 6}},
		{{0, 2, 0, 4}, {8, 0, 0, 0}, {0, 0, 16, 2}},
	}

	for _, g := range grids {
		for _, deg := range []int{90, 180, 270} {
			back := RotateCCW(RotateCCW(g, deg), inverseRotation(deg))
			if !back.Equal(g) {
				t.Errorf("rotate %d then %d changed grid %v to %v", deg, inverseRotation(deg), g, back)
			}
		}
	}
}

func TestDirectionRotationPairsAreInverse(t *testing.T) {
	g := Grid{
		{2, 0, 4},
		{0, 8, 0},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		deg := rotationFor[dir]
		back := RotateCCW(RotateCCW(g, deg), inverseRotation(deg))
		if !back.Equal(g) {
			t.Errorf("direction %v: canonical/inverse rotation pair is not identity", dir)
		}
	}
}

func TestRotateZeroReturnsIndependentCopy(t *testing.T) {
	g := Grid{{2, 4}, {8, 16}}
	out := RotateCCW(g, 0)

	out[0][0] = 99
	if g[0][0] != 2 {
		t.Error("RotateCCW(g, 0) aliases the input grid")
	}
}

func TestRotateInvalidDegreesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RotateCCW with 45 degrees should panic")
		}
	}()
	RotateCCW(Grid{{2}}, 45)
}
