package node

import "testing"

func TestReduceByZeroIsIdentity(t *testing.T) {
	n := buildFilledNode(t, 1)
	if got := n.ReduceBy(0); got != n {
		t.Fatalf("ReduceBy(0) did not return the original node")
	}
}

func TestReduceByOfEmptyStaysEmpty(t *testing.T) {
	n := Empty(2)
	reduced := n.ReduceBy(1)
	if !reduced.IsEmpty() {
		t.Fatalf("ReduceBy() of an empty node is not empty")
	}
	if reduced.Depth() != 1 {
		t.Fatalf("ReduceBy(1) depth = %d, want 1", reduced.Depth())
	}
}

func TestReduceByLowersDepthByAmount(t *testing.T) {
	n := buildFilledNode(t, 3)
	reduced := n.ReduceBy(2)
	if reduced.Depth() != 1 {
		t.Fatalf("ReduceBy(2) on a depth-3 node gave depth %d, want 1", reduced.Depth())
	}
}

func TestReduceByFullyLiveNodeStaysFullyLive(t *testing.T) {
	n := buildFilledNode(t, 2)
	reduced := n.ReduceBy(1)
	wantWidth := reduced.Width()
	if got, want := reduced.Population(), wantWidth*wantWidth; got != want {
		t.Fatalf("ReduceBy(1) of a fully-live node has population %d, want %d (fully live at its own size)", got, want)
	}
}

func TestReduceByUnionsLiveAreaIntoOneQuadrant(t *testing.T) {
	// Fill only the NW child of a depth-1 node (its own full 16x16 area);
	// ReduceBy(1) should collapse it to a depth-0 node whose NW 8x8 block
	// is entirely alive and the other three quadrants are entirely dead.
	n := Empty(1)
	half := n.HalfWidth()
	for y := -half; y < 0; y++ {
		for x := -half; x < 0; x++ {
			n = n.Set(NewPos(x, y), true)
		}
	}
	reduced := n.ReduceBy(1)
	if reduced.Depth() != 0 {
		t.Fatalf("ReduceBy(1) depth = %d, want 0", reduced.Depth())
	}
	reducedHalf := reduced.HalfWidth()
	for y := -reducedHalf; y < reducedHalf; y++ {
		for x := -reducedHalf; x < reducedHalf; x++ {
			want := x < 0 && y < 0
			if got := reduced.Get(NewPos(x, y)); got != want {
				t.Fatalf("reduced.Get(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
