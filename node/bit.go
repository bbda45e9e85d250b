package node

import "github.com/golang/glog"

// Or returns the cell-wise logical OR of n and rhs, promoting the
// shallower operand to the other's depth first.
func (n *Node) Or(rhs *Node) *Node {
	if n.Depth() > rhs.Depth() {
		return n.bitorImpl(rhs.centerAtDepth(n.Depth()))
	}
	return n.centerAtDepth(rhs.Depth()).bitorImpl(rhs)
}

func (n *Node) bitorImpl(rhs *Node) *Node {
	if n.IsEmpty() {
		return rhs
	}
	if rhs.IsEmpty() {
		return n
	}
	nLeaf, nIsLeaf := n.Leaf()
	rLeaf, rIsLeaf := rhs.Leaf()
	if nIsLeaf && rIsLeaf {
		return NewLeaf(Quad[Block]{
			NW: nLeaf.NW.Or(rLeaf.NW),
			NE: nLeaf.NE.Or(rLeaf.NE),
			SW: nLeaf.SW.Or(rLeaf.SW),
			SE: nLeaf.SE.Or(rLeaf.SE),
		})
	}
	nInner, nIsInner := n.Inner()
	rInner, rIsInner := rhs.Inner()
	if nIsInner && rIsInner {
		return NewDepthInner(n.Depth(), Quad[*Node]{
			NW: nInner.NW.bitorImpl(rInner.NW),
			NE: nInner.NE.bitorImpl(rInner.NE),
			SW: nInner.SW.bitorImpl(rInner.SW),
			SE: nInner.SE.bitorImpl(rInner.SE),
		})
	}
	glog.Fatalf("inconsistent depth")
	return nil
}

// Xor returns the cell-wise logical XOR of n and rhs, promoting the
// shallower operand to the other's depth first.
func (n *Node) Xor(rhs *Node) *Node {
	if n.Depth() > rhs.Depth() {
		return n.bitxorImpl(rhs.centerAtDepth(n.Depth()))
	}
	return n.centerAtDepth(rhs.Depth()).bitxorImpl(rhs)
}

func (n *Node) bitxorImpl(rhs *Node) *Node {
	if n.IsEmpty() {
		return rhs
	}
	if rhs.IsEmpty() {
		return n
	}
	nLeaf, nIsLeaf := n.Leaf()
	rLeaf, rIsLeaf := rhs.Leaf()
	if nIsLeaf && rIsLeaf {
		return NewLeaf(Quad[Block]{
			NW: nLeaf.NW.Xor(rLeaf.NW),
			NE: nLeaf.NE.Xor(rLeaf.NE),
			SW: nLeaf.SW.Xor(rLeaf.SW),
			SE: nLeaf.SE.Xor(rLeaf.SE),
		})
	}
	nInner, nIsInner := n.Inner()
	rInner, rIsInner := rhs.Inner()
	if nIsInner && rIsInner {
		return NewDepthInner(n.Depth(), Quad[*Node]{
			NW: nInner.NW.bitxorImpl(rInner.NW),
			NE: nInner.NE.bitxorImpl(rInner.NE),
			SW: nInner.SW.bitxorImpl(rInner.SW),
			SE: nInner.SE.bitxorImpl(rInner.SE),
		})
	}
	glog.Fatalf("inconsistent depth")
	return nil
}

// Or returns the cell-wise logical OR of two blocks.
func (b Block) Or(rhs Block) Block {
	return BlockFromRows(b.ToRows() | rhs.ToRows())
}

// Xor returns the cell-wise logical XOR of two blocks.
func (b Block) Xor(rhs Block) Block {
	return BlockFromRows(b.ToRows() ^ rhs.ToRows())
}
