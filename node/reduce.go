package node

import (
	"github.com/golang/glog"

	"github.com/jyane/gol/node/cache"
)

const reduceCacheSize = 1 << 8

type reduceKey struct {
	node  *Node
	depth uint8
}

var reduceCache = cache.New[reduceKey, *Node](reduceCacheSize)

// ReduceBy zooms n out by amount levels: each cell of the result summarizes
// a 2^amount x 2^amount area of n, alive if any cell in that area was
// alive. ReduceBy(0) returns n unchanged.
func (n *Node) ReduceBy(amount uint8) *Node {
	if amount == 0 {
		return n
	}
	depth := n.Depth()
	if int(amount) > depth {
		return n.centerAtDepth(int(amount)).reduceTo(0)
	}
	return n.reduceTo(uint8(depth) - amount)
}

func (n *Node) reduceTo(depth uint8) *Node {
	key := reduceKey{node: n, depth: depth}
	if result, ok := reduceCache.Get(key); ok {
		return result
	}
	result := n.reduceToImpl(depth)
	reduceCache.Put(key, result)
	return result
}

func (n *Node) reduceToImpl(depth uint8) *Node {
	inner, ok := n.Inner()
	if !ok {
		glog.Fatalf("reduceTo target depth must be less than node depth")
	}
	if depth == 0 {
		return NewLeaf(Quad[Block]{
			NW: inner.NW.reduceToBlock(),
			NE: inner.NE.reduceToBlock(),
			SW: inner.SW.reduceToBlock(),
			SE: inner.SE.reduceToBlock(),
		})
	}
	return NewInner(Quad[*Node]{
		NW: inner.NW.reduceTo(depth - 1),
		NE: inner.NE.reduceTo(depth - 1),
		SW: inner.SW.reduceTo(depth - 1),
		SE: inner.SE.reduceTo(depth - 1),
	})
}

// reduceToBlock collapses n, whatever its depth, down to a single Block: a
// fair amount of constant work even when memoized one level up by reduceTo.
func (n *Node) reduceToBlock() Block {
	if leaf, ok := n.Leaf(); ok {
		return quadBlockReduceToBlock(leaf)
	}
	inner, _ := n.Inner()
	children := childrenOf(inner)
	if children.depth == 0 {
		reduced := QuadMap(children.leaf, quadBlockReduceToBlock)
		return quadBlockReduceToBlock(reduced)
	}
	packed := QuadMap(children.inner, quadNodeReduceTo16)
	nw := packed.NW << (4*8 + 4)
	ne := packed.NE << (4 * 8)
	sw := packed.SW << 4
	se := packed.SE
	return BlockFromRows(nw | ne | sw | se)
}

// reduceTo4 packs n's own four children's emptiness into a u64 with nw at
// bit 9, ne at bit 8, sw at bit 1 and se at bit 0 - the same bit layout a
// Quad[*Node]'s reduceTo16 expects to compose four of these together.
func (n *Node) reduceTo4() uint64 {
	var empty Quad[bool]
	if leaf, ok := n.Leaf(); ok {
		empty = QuadMap(leaf, Block.IsEmpty)
	} else {
		inner, _ := n.Inner()
		empty = QuadMap(inner, (*Node).IsEmpty)
	}
	rows := uint64(0)
	if !empty.NW {
		rows |= 1 << 9
	}
	if !empty.NE {
		rows |= 1 << 8
	}
	if !empty.SW {
		rows |= 2
	}
	if !empty.SE {
		rows |= 1
	}
	return rows
}

func quadNodeReduceTo16(q Quad[*Node]) uint64 {
	quad := QuadMap(q, (*Node).reduceTo4)
	nw := quad.NW << (2*8 + 2)
	ne := quad.NE << (2 * 8)
	sw := quad.SW << 2
	se := quad.SE
	return nw | ne | sw | se
}

func quadBlockReduceToBlock(q Quad[Block]) Block {
	nw, ne := q.NW.ToRows(), q.NE.ToRows()
	sw, se := q.SW.ToRows(), q.SE.ToRows()
	return BlockFromRows(zoomOutV(zoomOutH(nw, ne), zoomOutH(sw, se)))
}

func zoomOutH(w, e uint64) uint64 {
	w |= w << 1
	e |= e << 1
	c0 := w & 0x80_80_80_80_80_80_80_80
	c1 := (w << 1) & 0x40_40_40_40_40_40_40_40
	c2 := (w << 2) & 0x20_20_20_20_20_20_20_20
	c3 := (w << 3) & 0x10_10_10_10_10_10_10_10
	c4 := (e >> 4) & 0x08_08_08_08_08_08_08_08
	c5 := (e >> 3) & 0x04_04_04_04_04_04_04_04
	c6 := (e >> 2) & 0x02_02_02_02_02_02_02_02
	c7 := (e >> 1) & 0x01_01_01_01_01_01_01_01
	return c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7
}

func zoomOutV(n, s uint64) uint64 {
	n |= n << 8
	s |= s << 8
	r0 := n & 0xff_00_00_00_00_00_00_00
	r1 := (n << 8) & 0x00_ff_00_00_00_00_00_00
	r2 := (n << 16) & 0x00_00_ff_00_00_00_00_00
	r3 := (n << 24) & 0x00_00_00_ff_00_00_00_00
	r4 := (s >> 32) & 0x00_00_00_00_ff_00_00_00
	r5 := (s >> 24) & 0x00_00_00_00_00_ff_00_00
	r6 := (s >> 16) & 0x00_00_00_00_00_00_ff_00
	r7 := (s >> 8) & 0x00_00_00_00_00_00_00_ff
	return r0 | r1 | r2 | r3 | r4 | r5 | r6 | r7
}
