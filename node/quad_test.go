package node

import "testing"

func TestQuadrantFromPos(t *testing.T) {
	cases := []struct {
		pos  Pos
		want Quadrant
	}{
		{NewPos(-1, -1), NW},
		{NewPos(0, -1), NE},
		{NewPos(-1, 0), SW},
		{NewPos(0, 0), SE},
	}
	for _, tc := range cases {
		if got := QuadrantFromPos(tc.pos); got != tc.want {
			t.Errorf("QuadrantFromPos(%+v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestQuadrantOpposite(t *testing.T) {
	cases := []struct{ q, want Quadrant }{
		{NW, SE}, {SE, NW}, {NE, SW}, {SW, NE},
	}
	for _, tc := range cases {
		if got := tc.q.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestQuadAtAndWithAt(t *testing.T) {
	q := Quad[int]{NW: 1, NE: 2, SW: 3, SE: 4}
	for quadrant, want := range map[Quadrant]int{NW: 1, NE: 2, SW: 3, SE: 4} {
		if got := q.At(quadrant); got != want {
			t.Errorf("At(%v) = %d, want %d", quadrant, got, want)
		}
	}
	updated := q.WithAt(NE, 20)
	if updated.NE != 20 || q.NE != 2 {
		t.Errorf("WithAt mutated the receiver or failed to set: q=%+v updated=%+v", q, updated)
	}
}

func TestQuadMap(t *testing.T) {
	q := Quad[int]{NW: 1, NE: 2, SW: 3, SE: 4}
	doubled := QuadMap(q, func(v int) int { return v * 2 })
	want := Quad[int]{NW: 2, NE: 4, SW: 6, SE: 8}
	if doubled != want {
		t.Errorf("QuadMap result = %+v, want %+v", doubled, want)
	}
}

func TestQuadExpand(t *testing.T) {
	q := Quad[int]{NW: 1, NE: 2, SW: 3, SE: 4}
	expanded := QuadExpand(q, 0)
	if expanded.NW.SE != 1 || expanded.NE.SW != 2 || expanded.SW.NE != 3 || expanded.SE.NW != 4 {
		t.Fatalf("QuadExpand placed quadrants incorrectly: %+v", expanded)
	}
	if expanded.NW.NW != 0 || expanded.NW.NE != 0 || expanded.NW.SW != 0 {
		t.Fatalf("QuadExpand left non-empty filler: %+v", expanded.NW)
	}
}
