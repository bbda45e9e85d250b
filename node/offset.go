package node

import "github.com/golang/glog"

// Offset returns n translated by amount, expanding as needed so nothing
// that was in bounds is lost. Note this takes a delta (unlike Set, which
// takes an absolute position), so the in-range check is a strict `>`
// against max offset rather than `>=`.
func (n *Node) Offset(amount Pos) *Node {
	if amount == (Pos{}) {
		return n
	}
	maxOffset := n.HalfWidth()
	if amount.X < -maxOffset || amount.X > maxOffset || amount.Y < -maxOffset || amount.Y > maxOffset {
		return n.expand().Offset(amount)
	}

	width := n.Width()
	var x0, xc uint64
	if amount.X < 0 {
		x0 = 1
		xc = uint64(int64(width) + amount.X)
	} else {
		x0 = 0
		xc = uint64(amount.X)
	}
	var y0, yc uint64
	if amount.Y < 0 {
		y0 = 1
		yc = uint64(int64(width) + amount.Y)
	} else {
		y0 = 0
		yc = uint64(amount.Y)
	}

	empty := Empty(n.Depth())
	quad := n.expandQuad()
	asArray := [4][4]*Node{
		{empty, empty, empty, empty},
		{empty, quad.NW, quad.NE, empty},
		{empty, quad.SW, quad.SE, empty},
		{empty, empty, empty, empty},
	}
	offsetChild := func(xi, yi uint64) *Node {
		return offsetShrinkSENode(Quad[*Node]{
			NW: asArray[yi][xi],
			NE: asArray[yi][xi+1],
			SW: asArray[yi+1][xi],
			SE: asArray[yi+1][xi+1],
		}, xc, yc)
	}

	return NewInner(Quad[*Node]{
		NW: offsetChild(x0, y0),
		NE: offsetChild(x0+1, y0),
		SW: offsetChild(x0, y0+1),
		SE: offsetChild(x0+1, y0+1),
	})
}

func offsetShrinkSENode(q Quad[*Node], x, y uint64) *Node {
	if x == 0 && y == 0 {
		return q.SE
	}
	children := childrenOf(q)
	if children.depth == 0 {
		return NewLeaf(offsetShrinkSEQuadBlock(children.leaf, x, y))
	}
	return NewInner(offsetShrinkSEQuadNode(children.inner, x, y))
}

func offsetShrinkSEQuadNode(q Quad[Quad[*Node]], x, y uint64) Quad[*Node] {
	bit := uint(q.NW.NW.WidthLog2())
	mask := uint64(1)<<bit - 1
	xc := x & mask
	yc := y & mask
	asArray := [4][4]*Node{
		{q.NW.NW, q.NW.NE, q.NE.NW, q.NE.NE},
		{q.NW.SW, q.NW.SE, q.NE.SW, q.NE.SE},
		{q.SW.NW, q.SW.NE, q.SE.NW, q.SE.NE},
		{q.SW.SW, q.SW.SE, q.SE.SW, q.SE.SE},
	}
	offsetChild := func(xi, yi uint64) *Node {
		return offsetShrinkSENode(Quad[*Node]{
			NW: asArray[yi][xi],
			NE: asArray[yi][xi+1],
			SW: asArray[yi+1][xi],
			SE: asArray[yi+1][xi+1],
		}, xc, yc)
	}
	x0 := (^x >> bit) & 1
	y0 := (^y >> bit) & 1
	return Quad[*Node]{
		NW: offsetChild(x0, y0),
		NE: offsetChild(x0+1, y0),
		SW: offsetChild(x0, y0+1),
		SE: offsetChild(x0+1, y0+1),
	}
}

func offsetShrinkSEQuadBlock(q Quad[Quad[Block]], x, y uint64) Quad[Block] {
	const bit = blockWidthLog2
	const mask = uint64(1)<<bit - 1
	xc := x & mask
	yc := y & mask
	asArray := [4][4]Block{
		{q.NW.NW, q.NW.NE, q.NE.NW, q.NE.NE},
		{q.NW.SW, q.NW.SE, q.NE.SW, q.NE.SE},
		{q.SW.NW, q.SW.NE, q.SE.NW, q.SE.NE},
		{q.SW.SW, q.SW.SE, q.SE.SW, q.SE.SE},
	}
	offsetChild := func(xi, yi uint64) Block {
		return blockOffsetShrinkSE(Quad[Block]{
			NW: asArray[yi][xi],
			NE: asArray[yi][xi+1],
			SW: asArray[yi+1][xi],
			SE: asArray[yi+1][xi+1],
		}, xc, yc)
	}
	x0 := (^x >> bit) & 1
	y0 := (^y >> bit) & 1
	return Quad[Block]{
		NW: offsetChild(x0, y0),
		NE: offsetChild(x0+1, y0),
		SW: offsetChild(x0, y0+1),
		SE: offsetChild(x0+1, y0+1),
	}
}

// blockOffsetShrinkSE shrinks and clips a 16x16 area, stored as a 2x2 of
// Blocks, into a single 8x8 Block after shifting it by (x, y) cells in the
// south-east direction.
func blockOffsetShrinkSE(q Quad[Block], x, y uint64) Block {
	nw, ne, sw, se := q.NW.ToRows(), q.NE.ToRows(), q.SW.ToRows(), q.SE.ToRows()
	return BlockFromRows(offsetH(offsetV(nw, sw, y), offsetV(ne, se, y), x))
}

var offsetHMasks = [8]uint64{
	0,
	0x01_01_01_01_01_01_01_01,
	0x03_03_03_03_03_03_03_03,
	0x07_07_07_07_07_07_07_07,
	0x0f_0f_0f_0f_0f_0f_0f_0f,
	0x1f_1f_1f_1f_1f_1f_1f_1f,
	0x3f_3f_3f_3f_3f_3f_3f_3f,
	0x7f_7f_7f_7f_7f_7f_7f_7f,
}

func offsetH(w, e, amount uint64) uint64 {
	if amount == 0 {
		return e
	}
	if amount >= 8 {
		glog.Fatalf("offset x invalid: %d", amount)
	}
	wMask := offsetHMasks[amount]
	w = (w & wMask) << (8 - amount)
	e = (e &^ wMask) >> amount
	return w | e
}

func offsetV(n, s, amount uint64) uint64 {
	if amount == 0 {
		return s
	}
	if amount >= 8 {
		glog.Fatalf("offset y invalid: %d", amount)
	}
	n = n << (64 - amount*8)
	s = s >> (amount * 8)
	return n | s
}
