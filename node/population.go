package node

// Population is implemented by every value that can report a live-cell
// count: Block directly, and *Node via its memoized field (see node.go).
// If Population returns math.MaxUint64 the true count may be larger
// (kept for parity with the upstream contract; in practice a single
// engine instance never approaches that many live cells).
type Population interface {
	Population() uint64
	IsEmpty() bool
}

var (
	_ Population = Block{}
	_ Population = (*Node)(nil)
)

func saturatingAdd(a, b uint64) uint64 {
	s := a + b
	if s < a {
		return ^uint64(0)
	}
	return s
}

// quadPopulation sums the population of every quadrant. Go's generics
// can't express "Quad[T] implements Population whenever T does" directly
// (no conditional-method trick like Rust's blanket impl), so this free
// function is used at each of the two concrete instantiations that need
// it (Quad[Block] and Quad[*Node]) instead.
func quadPopulation[T Population](q Quad[T]) uint64 {
	total := q.NW.Population()
	total = saturatingAdd(total, q.NE.Population())
	total = saturatingAdd(total, q.SW.Population())
	total = saturatingAdd(total, q.SE.Population())
	return total
}

func quadIsEmpty[T Population](q Quad[T]) bool {
	return q.NW.IsEmpty() && q.NE.IsEmpty() && q.SW.IsEmpty() && q.SE.IsEmpty()
}

// depthQuadPopulation computes the population of freshly-assembled
// content before it becomes a cached Node field (see newNode).
func depthQuadPopulation(d depthQuad) uint64 {
	if d.IsLeaf() {
		return quadPopulation(d.leaf)
	}
	return quadPopulation(d.inner)
}
