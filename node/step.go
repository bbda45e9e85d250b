package node

import (
	"math/bits"

	"github.com/golang/glog"

	"github.com/jyane/gol/node/cache"
)

const stepCacheSize = 1 << 24

type stepKey struct {
	node  *Node
	steps uint64
}

var stepCache = cache.New[stepKey, *Node](stepCacheSize)

// depthToMaxSteps returns the most generations a depth-d node can
// meaningfully advance at once: a depth-0 (16x16) node can't produce a
// buffered 8x8 result at all, so its max is 0; a depth-1 node can step up
// to 8 generations, doubling for each depth beyond that.
func depthToMaxSteps(depth int) uint64 {
	if depth == 0 {
		return 0
	}
	return 1 << uint(blockWidthLog2-1+depth)
}

// stepsToMinDepth returns the shallowest depth whose max-steps budget can
// cover the requested step count in one top-level call. steps must be > 0.
func stepsToMinDepth(steps uint64) int {
	if steps <= BlockWidth {
		return 1
	}
	floor := bits.Len64(steps) - 1 - (blockWidthLog2 - 1)
	if steps&(steps-1) == 0 {
		return floor
	}
	return floor + 1
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

// Step advances n by the given number of generations under B3/S23 rules,
// buffering and re-centering as needed so no live cell is lost off an edge
// during the computation.
func (n *Node) Step(steps uint64) *Node {
	if steps == 0 {
		return n
	}
	minDepth := stepsToMinDepth(steps)
	depth := n.unbufferdDepth(minDepth-1) + 2
	root := n.centerAtDepth(depth)
	result := root.stepCenter(steps)
	hits, misses := stepCache.Stats()
	glog.V(1).Infof("step cache_perf hit=%d miss=%d", hits, misses)
	return result
}

// unbufferdDepth finds the smallest depth at or above targetDepth at which
// n has no live content within one ring of blocks from its border (i.e.
// could safely be stepped without first expanding further).
func (n *Node) unbufferdDepth(targetDepth int) int {
	if n.Depth() <= targetDepth {
		return targetDepth
	}
	inner, _ := n.Inner()
	return unbufferdDepthInner(inner, targetDepth)
}

func unbufferdDepthInner(inner Quad[*Node], targetDepth int) int {
	childDepth := inner.NW.Depth()
	if childDepth < targetDepth {
		return targetDepth
	}
	children := childrenOf(inner)
	if children.depth == 0 {
		if isBuffered(children.leaf) {
			return childDepth
		}
		return childDepth + 1
	}
	if isBuffered(children.inner) {
		return unbufferdDepthInner(quadOfQuadCenter(children.inner), targetDepth)
	}
	return childDepth + 1
}

// isBuffered reports whether every grandchild except the four that make up
// the shared center is empty - i.e. live content is at least one block away
// from q's own border on every side.
func isBuffered[T Population](q Quad[Quad[T]]) bool {
	return q.NW.NW.IsEmpty() && q.NW.NE.IsEmpty() && q.NW.SW.IsEmpty() &&
		q.NE.NW.IsEmpty() && q.NE.NE.IsEmpty() && q.NE.SE.IsEmpty() &&
		q.SW.NW.IsEmpty() && q.SW.SW.IsEmpty() && q.SW.SE.IsEmpty() &&
		q.SE.NE.IsEmpty() && q.SE.SW.IsEmpty() && q.SE.SE.IsEmpty()
}

func (n *Node) stepCenter(steps uint64) *Node {
	key := stepKey{node: n, steps: steps}
	if result, ok := stepCache.Get(key); ok {
		return result
	}
	result := n.stepCenterImpl(steps)
	stepCache.Put(key, result)
	return result
}

func (n *Node) stepCenterImpl(steps uint64) *Node {
	maxSteps := depthToMaxSteps(n.Depth())
	firstHalf := saturatingSub(steps, maxSteps/2)
	secondHalf := steps - firstHalf

	inner, _ := n.Inner()
	children := childrenOf(inner)
	if children.depth == 0 {
		hood := overlapsHood(children.leaf)
		stepped := hoodMap(hood, func(q Quad[Block]) Block { return quadBlockStepCenter(q, firstHalf) })
		regrouped := overlapsQuad(stepped)
		final := QuadMap(regrouped, func(q Quad[Block]) Block { return quadBlockStepCenter(q, secondHalf) })
		return NewLeaf(final)
	}
	hood := overlapsHood(children.inner)
	stepped := hoodMap(hood, func(q Quad[*Node]) *Node { return quadNodeStepCenter(q, firstHalf) })
	regrouped := overlapsQuad(stepped)
	final := QuadMap(regrouped, func(q Quad[*Node]) *Node { return quadNodeStepCenter(q, secondHalf) })
	return NewInner(final)
}

// quadNodeStepCenter steps four equal-depth nodes forward together,
// wrapping them into a single parent node first so the memoized NODE-level
// stepCenter can be reused.
func quadNodeStepCenter(q Quad[*Node], steps uint64) *Node {
	if steps == 0 {
		return nodeQuadCenterNode(q)
	}
	return NewInner(q).stepCenter(steps)
}

// Hood is an overlapping 3x3 retiling of a Quad[Quad[T]]: each of its nine
// fields is itself a Quad[T] the same size as one of the original four
// quadrants, but shifted by half a quadrant so neighbors share cells. This
// is what lets step_center advance the four quadrants independently while
// still seeing the cells just across each quadrant's border.
type Hood[T any] struct {
	NW, N, NE T
	W, C, E   T
	SW, S, SE T
}

func hoodMap[T, U any](h Hood[T], f func(T) U) Hood[U] {
	return Hood[U]{
		NW: f(h.NW), N: f(h.N), NE: f(h.NE),
		W: f(h.W), C: f(h.C), E: f(h.E),
		SW: f(h.SW), S: f(h.S), SE: f(h.SE),
	}
}

func overlapsHood[T any](q Quad[Quad[T]]) Hood[Quad[T]] {
	n := Quad[T]{NW: q.NW.NE, NE: q.NE.NW, SW: q.NW.SE, SE: q.NE.SW}
	w := Quad[T]{NW: q.NW.SW, NE: q.NW.SE, SW: q.SW.NW, SE: q.SW.NE}
	c := quadOfQuadCenter(q)
	e := Quad[T]{NW: q.NE.SW, NE: q.NE.SE, SW: q.SE.NW, SE: q.SE.NE}
	s := Quad[T]{NW: q.SW.NE, NE: q.SE.NW, SW: q.SW.SE, SE: q.SE.SW}
	return Hood[Quad[T]]{NW: q.NW, N: n, NE: q.NE, W: w, C: c, E: e, SW: q.SW, S: s, SE: q.SE}
}

func overlapsQuad[T any](h Hood[T]) Quad[Quad[T]] {
	return Quad[Quad[T]]{
		NW: Quad[T]{NW: h.NW, NE: h.N, SW: h.W, SE: h.C},
		NE: Quad[T]{NW: h.N, NE: h.NE, SW: h.C, SE: h.E},
		SW: Quad[T]{NW: h.W, NE: h.C, SW: h.SW, SE: h.S},
		SE: Quad[T]{NW: h.C, NE: h.E, SW: h.S, SE: h.SE},
	}
}

// quadBlockStepCenter advances a 2x2 grid of Blocks (a 16x16 area) by up to
// 4 generations and returns the center 8x8 result. It reshapes the four
// blocks into four 4-row-tall, double-width row groups so each generation
// can be computed with simple shifts, rather than re-deriving neighbor
// counts from scratch at every step.
func quadBlockStepCenter(q Quad[Block], steps uint64) Block {
	nw, ne := q.NW.ToRows(), q.NE.ToRows()
	sw, se := q.SW.ToRows(), q.SE.ToRows()
	rows := [4]uint64{
		shapeNorth(nw, ne),
		shapeSouth(nw, ne),
		shapeNorth(sw, se),
		shapeSouth(sw, se),
	}
	for i := uint64(0); i < steps; i++ {
		stepRowsOnce(&rows)
	}
	return BlockFromRows(unshapeCenter(rows[1], rows[2]))
}

func shapeNorth(w, e uint64) uint64 {
	r0w := w & 0xff_00_00_00_00_00_00_00
	r0e := (e >> 8) & 0x00_ff_00_00_00_00_00_00
	r1w := (w >> 8) & 0x00_00_ff_00_00_00_00_00
	r1e := (e >> 16) & 0x00_00_00_ff_00_00_00_00
	r2w := (w >> 16) & 0x00_00_00_00_ff_00_00_00
	r2e := (e >> 24) & 0x00_00_00_00_00_ff_00_00
	r3w := (w >> 24) & 0x00_00_00_00_00_00_ff_00
	r3e := (e >> 32) & 0x00_00_00_00_00_00_00_ff
	return r0w | r0e | r1w | r1e | r2w | r2e | r3w | r3e
}

func shapeSouth(w, e uint64) uint64 {
	r0w := (w << 32) & 0xff_00_00_00_00_00_00_00
	r0e := (e << 24) & 0x00_ff_00_00_00_00_00_00
	r1w := (w << 24) & 0x00_00_ff_00_00_00_00_00
	r1e := (e << 16) & 0x00_00_00_ff_00_00_00_00
	r2w := (w << 16) & 0x00_00_00_00_ff_00_00_00
	r2e := (e << 8) & 0x00_00_00_00_00_ff_00_00
	r3w := (w << 8) & 0x00_00_00_00_00_00_ff_00
	r3e := e & 0x00_00_00_00_00_00_00_ff
	return r0w | r0e | r1w | r1e | r2w | r2e | r3w | r3e
}

func unshapeCenter(n, s uint64) uint64 {
	r0 := (n << 4) & 0xff_00_00_00_00_00_00_00
	r1 := (n << 12) & 0x00_ff_00_00_00_00_00_00
	r2 := (n << 20) & 0x00_00_ff_00_00_00_00_00
	r3 := (n << 28) & 0x00_00_00_ff_00_00_00_00
	r4 := (s >> 28) & 0x00_00_00_00_ff_00_00_00
	r5 := (s >> 20) & 0x00_00_00_00_00_ff_00_00
	r6 := (s >> 12) & 0x00_00_00_00_00_00_ff_00
	r7 := (s >> 4) & 0x00_00_00_00_00_00_00_ff
	return r0 | r1 | r2 | r3 | r4 | r5 | r6 | r7
}

func stepRowsOnce(rows *[4]uint64) {
	shift := func(prev, row, next uint64) uint64 {
		return stepRow((prev<<48)|(row>>16), row, (row<<16)|(next>>48))
	}
	*rows = [4]uint64{
		shift(0, rows[0], rows[1]),
		shift(rows[0], rows[1], rows[2]),
		shift(rows[1], rows[2], rows[3]),
		shift(rows[2], rows[3], 0),
	}
}

// stepRow computes one generation of a double-width row given the rows
// directly above and below it, via a three-input bitwise adder network
// (bit_sum) that tallies each cell's live-neighbor count across both axes
// without ever materializing the count as an integer.
func stepRow(above, row, below uint64) uint64 {
	bitSum := func(a, b, c uint64) (uint64, uint64) {
		return a ^ b ^ c, a&b | a&c | b&c
	}
	i0, i1 := bitSum(above, row, below)
	a0, a1 := bitSum(i0<<1, above^below, i0>>1)
	b0, b1 := bitSum(i1<<1, above&below, i1>>1)
	return (row | a0) & (a1 ^ b0) & ^b1
}
