package node

import "github.com/golang/glog"

// Quadrant names one of the four children of an inner node or block.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// QuadrantFromPos returns the quadrant a position relative to a node's
// center falls in: north/south by the sign of y, west/east by the sign of
// x, ties broken toward east/south.
func QuadrantFromPos(p Pos) Quadrant {
	if p.Y < 0 {
		if p.X < 0 {
			return NW
		}
		return NE
	}
	if p.X < 0 {
		return SW
	}
	return SE
}

// Opposite returns the diagonally opposite quadrant.
func (q Quadrant) Opposite() Quadrant {
	switch q {
	case NW:
		return SE
	case NE:
		return SW
	case SW:
		return NE
	case SE:
		return NW
	default:
		glog.Fatalf("invalid quadrant: %d", q)
		return NW
	}
}

// Quad holds one value per quadrant, in NW, NE, SW, SE order.
type Quad[T any] struct {
	NW, NE, SW, SE T
}

// At returns the value for the given quadrant.
func (q Quad[T]) At(quadrant Quadrant) T {
	switch quadrant {
	case NW:
		return q.NW
	case NE:
		return q.NE
	case SW:
		return q.SW
	case SE:
		return q.SE
	default:
		glog.Fatalf("invalid quadrant: %d", quadrant)
		var zero T
		return zero
	}
}

// WithAt returns a copy of q with the given quadrant replaced.
func (q Quad[T]) WithAt(quadrant Quadrant, v T) Quad[T] {
	switch quadrant {
	case NW:
		q.NW = v
	case NE:
		q.NE = v
	case SW:
		q.SW = v
	case SE:
		q.SE = v
	default:
		glog.Fatalf("invalid quadrant: %d", quadrant)
	}
	return q
}

// QuadMap applies f to every quadrant value, preserving position.
func QuadMap[T, U any](q Quad[T], f func(T) U) Quad[U] {
	return Quad[U]{NW: f(q.NW), NE: f(q.NE), SW: f(q.SW), SE: f(q.SE)}
}

// QuadExpand places each quadrant's value in the corner of a fresh 2x2
// grid closest to the center, with every other cell set to empty. This is
// the building block for growing a node one depth level while keeping its
// content centered (see Node.expand in center.go).
func QuadExpand[T any](q Quad[T], empty T) Quad[Quad[T]] {
	return Quad[Quad[T]]{
		NW: Quad[T]{NW: empty, NE: empty, SW: empty, SE: q.NW},
		NE: Quad[T]{NW: empty, NE: empty, SW: q.NE, SE: empty},
		SW: Quad[T]{NW: empty, NE: q.SW, SW: empty, SE: empty},
		SE: Quad[T]{NW: q.SE, NE: empty, SW: empty, SE: empty},
	}
}

// depthQuad is either a leaf quad of blocks (depth 0) or an inner quad of
// child nodes at depth-1 each, tagged with this quad's own depth. Go has
// no tagged-union type, so the discriminant is carried explicitly instead
// of matching Rust's `DepthQuad<L, I>` enum.
type depthQuad struct {
	depth int // 0 means Leaf
	leaf  Quad[Block]
	inner Quad[*Node]
}

func leafDepthQuad(q Quad[Block]) depthQuad {
	return depthQuad{depth: 0, leaf: q}
}

func innerDepthQuad(depth int, q Quad[*Node]) depthQuad {
	if depth <= 0 {
		glog.Fatalf("inner depth quad must have depth > 0, got %d", depth)
	}
	return depthQuad{depth: depth, inner: q}
}

func (d depthQuad) Depth() int {
	return d.depth
}

func (d depthQuad) IsLeaf() bool {
	return d.depth == 0
}
