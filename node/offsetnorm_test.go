package node

import "testing"

func TestOffsetNormOfLeafIsIdentity(t *testing.T) {
	n := Empty(0).Set(NewPos(0, 0), true)
	delta, shrunk := n.OffsetNorm()
	if delta != (Pos{}) {
		t.Fatalf("OffsetNorm() of a leaf returned nonzero delta %+v", delta)
	}
	if shrunk != n {
		t.Fatalf("OffsetNorm() of a leaf did not return the node unchanged")
	}
}

func TestOffsetNormShrinksTowardCorner(t *testing.T) {
	// A single live cell far in the NW quadrant of a depth-3 node: every
	// level above it is empty except the NW corner, so OffsetNorm should
	// shrink repeatedly and the recovered offset should reproduce the cell.
	n := Empty(3)
	pos := NewPos(-(n.HalfWidth() - 1), -(n.HalfWidth() - 1))
	n = n.Set(pos, true)

	delta, shrunk := n.OffsetNorm()
	if shrunk.Depth() >= n.Depth() {
		t.Fatalf("OffsetNorm() did not shrink: got depth %d, want < %d", shrunk.Depth(), n.Depth())
	}
	if shrunk.Population() != 1 {
		t.Fatalf("OffsetNorm() result population = %d, want 1", shrunk.Population())
	}
	reconstructed := shrunk.Offset(delta)
	if !reconstructed.Get(pos) {
		t.Fatalf("shrunk.Offset(delta) did not reproduce the live cell at %+v (delta=%+v)", pos, delta)
	}
}

func TestOffsetNormSignatureAndDirection(t *testing.T) {
	cases := []struct {
		sig    int
		dx, dy int64
		found  bool
	}{
		{0, 0, 0, false},
		{8, -1, -1, true},
		{4, 1, -1, true},
		{2, -1, 1, true},
		{1, 1, 1, true},
		{12, 0, -1, true},
		{3, 0, 1, true},
		{10, -1, 0, true},
		{5, 1, 0, true},
		{7, 0, 0, false},
		{15, 0, 0, false},
		{9, 0, 0, false}, // nw + se: empty diagonal, ambiguous
	}
	for _, tc := range cases {
		dx, dy, found := offsetNormDirection(tc.sig)
		if found != tc.found || (found && (dx != tc.dx || dy != tc.dy)) {
			t.Errorf("offsetNormDirection(%d) = (%d, %d, %v), want (%d, %d, %v)",
				tc.sig, dx, dy, found, tc.dx, tc.dy, tc.found)
		}
	}
}

func TestOffsetNormStopsWhenAmbiguous(t *testing.T) {
	// Two live cells on opposite corners (NW and SE children occupied, NE
	// and SW empty): signature 9, not in the unambiguous table, so
	// OffsetNorm must not shrink at all.
	n := Empty(1)
	n = n.Set(NewPos(-n.HalfWidth(), -n.HalfWidth()), true)
	n = n.Set(NewPos(n.HalfWidth()-1, n.HalfWidth()-1), true)
	delta, shrunk := n.OffsetNorm()
	if shrunk != n || delta != (Pos{}) {
		t.Fatalf("OffsetNorm() shrank an ambiguous (diagonal) pattern: delta=%+v depth=%d, want depth=%d",
			delta, shrunk.Depth(), n.Depth())
	}
}
