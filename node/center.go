package node

import "github.com/golang/glog"

// childrenResult is the result of looking one level past a Quad[*Node]'s
// own children: either every child is a leaf, exposing their four
// Quad[Block] contents, or every child is inner, exposing their four
// Quad[*Node] contents (one depth shallower than q's own children).
type childrenResult struct {
	depth int // q's children's own depth; 0 means the leaf case
	leaf  Quad[Quad[Block]]
	inner Quad[Quad[*Node]]
}

// childrenOf transposes a Quad[*Node] (four equal-depth nodes) into a view
// of their shared child structure, aborting the process (via glog.Fatalf) on a
// mismatched depth - this should never happen for content built through
// the ops in this package.
func childrenOf(q Quad[*Node]) childrenResult {
	depth := q.NW.Depth()
	if q.NE.Depth() != depth || q.SW.Depth() != depth || q.SE.Depth() != depth {
		glog.Fatalf("inconsistent node depth")
	}
	if depth == 0 {
		nw, _ := q.NW.Leaf()
		ne, _ := q.NE.Leaf()
		sw, _ := q.SW.Leaf()
		se, _ := q.SE.Leaf()
		return childrenResult{depth: 0, leaf: Quad[Quad[Block]]{NW: nw, NE: ne, SW: sw, SE: se}}
	}
	nw, _ := q.NW.Inner()
	ne, _ := q.NE.Inner()
	sw, _ := q.SW.Inner()
	se, _ := q.SE.Inner()
	return childrenResult{depth: depth, inner: Quad[Quad[*Node]]{NW: nw, NE: ne, SW: sw, SE: se}}
}

// quadOfQuadCenter picks the inner corner of each sub-quad, i.e. the
// center quadrant of a larger grid built from four quadrants-of-quadrants.
func quadOfQuadCenter[T any](q Quad[Quad[T]]) Quad[T] {
	return Quad[T]{NW: q.NW.SE, NE: q.NE.SW, SW: q.SW.NE, SE: q.SE.NW}
}

// nodeQuadCenter returns the depth-quad content one level smaller than q:
// the center quadrant of the conceptually-larger area the four nodes in q
// tile together.
func nodeQuadCenter(q Quad[*Node]) depthQuad {
	children := childrenOf(q)
	if children.depth == 0 {
		return leafDepthQuad(quadOfQuadCenter(children.leaf))
	}
	return innerDepthQuad(children.depth, quadOfQuadCenter(children.inner))
}

// nodeQuadCenterNode is nodeQuadCenter wrapped back into an interned Node.
func nodeQuadCenterNode(q Quad[*Node]) *Node {
	dq := nodeQuadCenter(q)
	if dq.IsLeaf() {
		return NewLeaf(dq.leaf)
	}
	return NewDepthInner(dq.Depth(), dq.inner)
}

// expand returns a node one depth deeper than n, with n's content centered
// and surrounded by a border of empty space equal to n's own half-width.
// Not present in the original Rust source at the Node level (only
// Quad[T].expand exists there); authored here from its usage sites
// (Node::set, Node::offset, Node::step all call `self.expand()` when the
// node is too small) and from QuadExpand's placement semantics.
func (n *Node) expand() *Node {
	if n.Depth() == 0 {
		leaf, _ := n.Leaf()
		expanded := QuadExpand(leaf, EmptyBlock())
		children := QuadMap(expanded, func(q Quad[Block]) *Node { return NewLeaf(q) })
		return NewInner(children)
	}
	inner, _ := n.Inner()
	expanded := QuadExpand(inner, Empty(n.Depth()-1))
	children := QuadMap(expanded, func(q Quad[*Node]) *Node { return NewInner(q) })
	return NewDepthInner(n.Depth()+1, children)
}

// centerAtDepth repeatedly expands n, keeping its content centered, until
// it reaches the given depth. Authored here (not present as such in the
// Rust snapshot read) from its call sites in bit.go, reduce.go and step.go.
func (n *Node) centerAtDepth(depth int) *Node {
	cur := n
	for cur.Depth() < depth {
		cur = cur.expand()
	}
	return cur
}

// expandQuad expands n by one depth level and returns its four new
// children directly, skipping the final newNode wrap - used by Offset,
// which needs to further recombine those children rather than keep them
// wrapped in the expanded node.
func (n *Node) expandQuad() Quad[*Node] {
	if n.Depth() == 0 {
		leaf, _ := n.Leaf()
		expanded := QuadExpand(leaf, EmptyBlock())
		return QuadMap(expanded, func(q Quad[Block]) *Node { return NewLeaf(q) })
	}
	inner, _ := n.Inner()
	expanded := QuadExpand(inner, Empty(n.Depth()-1))
	return QuadMap(expanded, func(q Quad[*Node]) *Node { return NewInner(q) })
}
