package node

import "testing"

func TestEmptyIsCanonicalAndEmpty(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		e := Empty(depth)
		if e.Depth() != depth {
			t.Fatalf("Empty(%d).Depth() = %d", depth, e.Depth())
		}
		if !e.IsEmpty() || e.Population() != 0 {
			t.Fatalf("Empty(%d) is not empty: population=%d", depth, e.Population())
		}
		if Empty(depth) != e {
			t.Fatalf("Empty(%d) is not canonical across calls", depth)
		}
	}
}

func TestNewLeafInterning(t *testing.T) {
	b := blockFromGrid(t, `
o.......
........
........
........
........
........
........
........
`)
	q := Quad[Block]{NW: b, NE: EmptyBlock(), SW: EmptyBlock(), SE: EmptyBlock()}
	a := NewLeaf(q)
	c := NewLeaf(q)
	if a != c {
		t.Fatalf("NewLeaf did not return the same pointer for identical content")
	}
	if a.Population() != 1 {
		t.Fatalf("Population() = %d, want 1", a.Population())
	}
}

func TestNewInnerInterningAndDepth(t *testing.T) {
	leaf := Empty(0)
	live := NewLeaf4(blockFromGrid(t, `
o.......
........
........
........
........
........
........
........
`), EmptyBlock(), EmptyBlock(), EmptyBlock())

	a := NewInner4(live, leaf, leaf, leaf)
	c := NewInner4(live, leaf, leaf, leaf)
	if a != c {
		t.Fatalf("NewInner did not intern identical content to the same pointer")
	}
	if a.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", a.Depth())
	}
	if a.Population() != 1 {
		t.Fatalf("Population() = %d, want 1", a.Population())
	}
	inner, ok := a.Inner()
	if !ok || inner.NW != live {
		t.Fatalf("Inner() = %+v, %v", inner, ok)
	}
	if _, ok := a.Leaf(); ok {
		t.Fatalf("Leaf() reported ok on an inner node")
	}
}

func TestNodeWidthAccessors(t *testing.T) {
	n := Empty(0)
	if n.WidthLog2() != minWidthLog2 {
		t.Fatalf("WidthLog2() = %d, want %d", n.WidthLog2(), minWidthLog2)
	}
	if n.Width() != 1<<minWidthLog2 {
		t.Fatalf("Width() = %d, want %d", n.Width(), uint64(1)<<minWidthLog2)
	}
	if n.HalfWidth() != int64(n.Width())/2 {
		t.Fatalf("HalfWidth() = %d, want %d", n.HalfWidth(), n.Width()/2)
	}
}
