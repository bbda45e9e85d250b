package node

import "testing"

func TestBlockEmpty(t *testing.T) {
	b := EmptyBlock()
	if !b.IsEmpty() {
		t.Fatalf("EmptyBlock() is not empty")
	}
	if b.Population() != 0 {
		t.Fatalf("EmptyBlock() population = %d, want 0", b.Population())
	}
}

func TestBlockFromRowsRoundTrip(t *testing.T) {
	for _, rows := range []uint64{0, 1, 0xff00000000000000, 0xdeadbeefdeadbeef} {
		b := BlockFromRows(rows)
		if got := b.ToRows(); got != rows {
			t.Fatalf("ToRows() = %#x, want %#x", got, rows)
		}
	}
}

func TestBlockFromRowsArrayRoundTrip(t *testing.T) {
	rows := [8]byte{0x80, 0x01, 0xff, 0x00, 0x10, 0x20, 0x40, 0x81}
	b := BlockFromRowsArray(rows)
	if got := b.ToRowsArray(); got != rows {
		t.Fatalf("ToRowsArray() = %v, want %v", got, rows)
	}
}

func TestBlockPopulation(t *testing.T) {
	b := blockFromGrid(t, `
........
.o......
..o.....
ooo.....
........
........
........
........
`)
	if got := b.Population(); got != 5 {
		t.Fatalf("Population() = %d, want 5", got)
	}
	if b.IsEmpty() {
		t.Fatalf("glider block reported empty")
	}
}

func TestBlockExpand(t *testing.T) {
	b := blockFromGrid(t, `
........
........
........
........
........
........
........
.......o
`)
	n := b.expand()
	if n.Depth() != 0 {
		t.Fatalf("expand() depth = %d, want 0", n.Depth())
	}
	leaf, ok := n.Leaf()
	if !ok {
		t.Fatalf("expand() did not return a leaf")
	}
	if leaf.SE != b {
		t.Fatalf("expand() placed block in %+v, want SE quadrant", leaf)
	}
	if !leaf.NW.IsEmpty() || !leaf.NE.IsEmpty() || !leaf.SW.IsEmpty() {
		t.Fatalf("expand() left live cells outside the SE quadrant: %+v", leaf)
	}
}
