package node

// OffsetNorm finds a translation that shrinks n by recentering on its
// non-empty content, shaking off empty borders one level at a time. It
// returns (deltaPos, shrunk) such that the original content at the world
// origin corresponds to shrunk at deltaPos: i.e. shrunk.Offset(deltaPos)
// reproduces (a possibly still-buffered version of) n.
//
// At each inner level the four children's emptiness forms a 4-bit
// signature (nw=8, ne=4, sw=2, se=1). Eight signatures admit an unambiguous
// recentering direction - a single corner, or a pair of children sharing
// an edge - and are handled below; the rest (no children occupied, three
// or more, or an empty diagonal pair) have no safe single-step shrink and
// stop the recursion, leaving the node as-is from that point on. The
// recursion also stops when the chosen window would drop live cells.
func (n *Node) OffsetNorm() (Pos, *Node) {
	if _, ok := n.Leaf(); ok {
		return Pos{}, n
	}
	delta := Pos{}
	cur := n
	for {
		inner, ok := cur.Inner()
		if !ok {
			break
		}
		dx, dy, found := offsetNormDirection(offsetNormSignature(inner))
		if !found {
			break
		}
		next := offsetNormShift(inner, dx, dy)
		if next.Population() != cur.Population() {
			break
		}
		shift := next.HalfWidth()
		delta = delta.Add(NewPos(dx*shift, dy*shift))
		cur = next
	}
	return delta, cur
}

func offsetNormSignature(q Quad[*Node]) int {
	sig := 0
	if !q.NW.IsEmpty() {
		sig |= 8
	}
	if !q.NE.IsEmpty() {
		sig |= 4
	}
	if !q.SW.IsEmpty() {
		sig |= 2
	}
	if !q.SE.IsEmpty() {
		sig |= 1
	}
	return sig
}

// offsetNormDirection maps a child-emptiness signature to the (dx, dy)
// shift, each in {-1, 0, 1}, that moves the window toward the occupied
// content. found is false when the signature has no unambiguous direction.
func offsetNormDirection(sig int) (dx, dy int64, found bool) {
	switch sig {
	case 0:
		return 0, 0, false
	case 8: // nw only
		return -1, -1, true
	case 4: // ne only
		return 1, -1, true
	case 2: // sw only
		return -1, 1, true
	case 1: // se only
		return 1, 1, true
	case 12: // nw + ne: top edge
		return 0, -1, true
	case 3: // sw + se: bottom edge
		return 0, 1, true
	case 10: // nw + sw: left edge
		return -1, 0, true
	case 5: // ne + se: right edge
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// offsetNormShift builds the node one depth shallower than q's members by
// picking a 2x2 window out of the 4x4 grid of q's grandchildren, offset by
// (dx, dy) from the centered (0, 0) window that Quad[Quad[T]].center would
// pick.
func offsetNormShift(q Quad[*Node], dx, dy int64) *Node {
	children := childrenOf(q)
	row0 := int(1 + dy)
	col0 := int(1 + dx)
	if children.depth == 0 {
		l := children.leaf
		grid := [4][4]Block{
			{l.NW.NW, l.NW.NE, l.NE.NW, l.NE.NE},
			{l.NW.SW, l.NW.SE, l.NE.SW, l.NE.SE},
			{l.SW.NW, l.SW.NE, l.SE.NW, l.SE.NE},
			{l.SW.SW, l.SW.SE, l.SE.SW, l.SE.SE},
		}
		return NewLeaf(Quad[Block]{
			NW: grid[row0][col0],
			NE: grid[row0][col0+1],
			SW: grid[row0+1][col0],
			SE: grid[row0+1][col0+1],
		})
	}
	i := children.inner
	grid := [4][4]*Node{
		{i.NW.NW, i.NW.NE, i.NE.NW, i.NE.NE},
		{i.NW.SW, i.NW.SE, i.NE.SW, i.NE.SE},
		{i.SW.NW, i.SW.NE, i.SE.NW, i.SE.NE},
		{i.SW.SW, i.SW.SE, i.SE.SW, i.SE.SE},
	}
	return NewInner(Quad[*Node]{
		NW: grid[row0][col0],
		NE: grid[row0][col0+1],
		SW: grid[row0+1][col0],
		SE: grid[row0+1][col0+1],
	})
}
