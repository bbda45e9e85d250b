package node

import "testing"

func TestDepthToMaxSteps(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 0},
		{1, 8},
		{2, 16},
		{3, 32},
		{4, 64},
	}
	for _, tc := range cases {
		if got := depthToMaxSteps(tc.depth); got != tc.want {
			t.Errorf("depthToMaxSteps(%d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

func TestStepsToMinDepth(t *testing.T) {
	cases := []struct {
		steps uint64
		want  int
	}{
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
		{32, 3},
		{33, 4},
	}
	for _, tc := range cases {
		if got := stepsToMinDepth(tc.steps); got != tc.want {
			t.Errorf("stepsToMinDepth(%d) = %d, want %d", tc.steps, got, tc.want)
		}
	}
}

func TestStepZeroIsIdentity(t *testing.T) {
	n := Empty(1).Set(NewPos(0, 0), true).Set(NewPos(1, 1), true)
	if got := n.Step(0); got != n {
		t.Fatalf("Step(0) did not return the original node")
	}
}

func TestStepStillLifeBlockIsUnchanged(t *testing.T) {
	// A 2x2 block is a still life under B3/S23: each live cell has exactly
	// 3 live neighbors, each neighboring dead cell has at most 2.
	cells := []Pos{NewPos(0, 0), NewPos(1, 0), NewPos(0, 1), NewPos(1, 1)}
	n := Empty(1)
	for _, p := range cells {
		n = n.Set(p, true)
	}
	stepped := n.Step(1)
	if stepped.Population() != 4 {
		t.Fatalf("still life population after Step(1) = %d, want 4", stepped.Population())
	}
	for _, p := range cells {
		if !stepped.Get(p) {
			t.Fatalf("still life cell %+v died after Step(1)", p)
		}
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	// A horizontal row of 3 becomes a vertical column of 3 after one
	// generation, and back to horizontal after a second.
	n := Empty(1)
	n = n.Set(NewPos(-1, 0), true).Set(NewPos(0, 0), true).Set(NewPos(1, 0), true)

	vertical := n.Step(1)
	if vertical.Population() != 3 {
		t.Fatalf("blinker population after Step(1) = %d, want 3", vertical.Population())
	}
	for _, p := range []Pos{NewPos(0, -1), NewPos(0, 0), NewPos(0, 1)} {
		if !vertical.Get(p) {
			t.Errorf("blinker Step(1): expected live cell at %+v", p)
		}
	}
	if vertical.Get(NewPos(-1, 0)) || vertical.Get(NewPos(1, 0)) {
		t.Errorf("blinker Step(1): horizontal cells should have died")
	}

	horizontal := vertical.Step(1)
	if horizontal != n {
		t.Fatalf("blinker did not return to its original node after two Step(1) calls")
	}
}

func TestStepGliderTranslatesDiagonally(t *testing.T) {
	// The standard 5-cell glider translates by (+1,+1) every 4 generations
	// while preserving its shape and population.
	glider := []Pos{
		NewPos(1, 0),
		NewPos(2, 1),
		NewPos(0, 2), NewPos(1, 2), NewPos(2, 2),
	}
	n := Empty(2)
	for _, p := range glider {
		n = n.Set(p, true)
	}
	stepped := n.Step(4)
	if stepped.Population() != 5 {
		t.Fatalf("glider population after Step(4) = %d, want 5", stepped.Population())
	}
	delta := NewPos(1, 1)
	for _, p := range glider {
		moved := p.Add(delta)
		if !stepped.Get(moved) {
			t.Errorf("glider Step(4): expected live cell at %+v", moved)
		}
	}
}
