package node

import (
	"runtime"
	"sync"
	"weak"

	"github.com/golang/glog"
)

const (
	maxWidthLog2 = 63
	// minWidthLog2 is the offset between a node's depth and its width_log2:
	// a depth-0 (leaf) node is a 2x2-of-Block grid, i.e. width 2*BlockWidth.
	minWidthLog2 = blockWidthLog2 + 1

	// MaxDepth bounds how many Inner layers a Node may nest. spec.md states
	// this bound explicitly as 54; see DESIGN.md for why that is kept even
	// though the upstream Rust source derives 59 from maxWidthLog2(63) -
	// minWidthLog2(4).
	MaxDepth = 54
)

// Node is a hash-consed handle to an immutable quadtree node: either a
// leaf of four Blocks (depth 0) or an inner node of four child Nodes one
// depth shallower. Two Nodes with structurally identical content are
// always the same pointer (see newNode), so equality and hashing reduce
// to Go's built-in pointer identity - no custom Equal/Hash is needed,
// unlike the Rust source which hand-rolls PartialEq/Hash on top of Rc.
type Node struct {
	quad       depthQuad
	population uint64
}

var (
	internMu    sync.Mutex
	internTable = map[depthQuad]weak.Pointer[Node]{}

	// emptyNodes holds one strong reference per depth so Empty never has
	// to re-intern (and never evicts) the all-dead node of each size.
	emptyNodes [MaxDepth + 1]*Node
)

func init() {
	leaf := newNode(leafDepthQuad(Quad[Block]{}))
	emptyNodes[0] = leaf
	for d := 1; d <= MaxDepth; d++ {
		prev := emptyNodes[d-1]
		emptyNodes[d] = newNode(innerDepthQuad(d, Quad[*Node]{NW: prev, NE: prev, SW: prev, SE: prev}))
	}
}

// newNode interns content, returning the canonical *Node for it. This is
// the Go analog of the Rust source's thread-local weak_table::WeakHashSet:
// a package-level map guarded by a mutex (Go has no thread-locals, and
// spec.md defines the engine as single-threaded cooperative, so one
// process-wide table is the correct realization), with dead entries
// reclaimed via weak.Pointer + runtime.AddCleanup instead of a crate.
func newNode(content depthQuad) *Node {
	if content.Depth() > MaxDepth {
		glog.Fatalf("node depth %d exceeds MaxDepth %d", content.Depth(), MaxDepth)
	}
	validateDepth(content)

	internMu.Lock()
	defer internMu.Unlock()

	if w, ok := internTable[content]; ok {
		if n := w.Value(); n != nil {
			return n
		}
	}

	n := &Node{quad: content, population: depthQuadPopulation(content)}
	internTable[content] = weak.Make(n)
	runtime.AddCleanup(n, deleteInternEntry, content)
	return n
}

func deleteInternEntry(content depthQuad) {
	internMu.Lock()
	defer internMu.Unlock()
	if w, ok := internTable[content]; ok && w.Value() == nil {
		delete(internTable, content)
	}
}

func validateDepth(content depthQuad) {
	if content.IsLeaf() {
		return
	}
	want := content.Depth() - 1
	for _, child := range [4]*Node{content.inner.NW, content.inner.NE, content.inner.SW, content.inner.SE} {
		if child.Depth() != want {
			glog.Fatalf("inconsistent node depth: want %d, got %d", want, child.Depth())
		}
	}
}

// NewLeaf interns an inner-most node built directly from four 8x8 blocks.
func NewLeaf(q Quad[Block]) *Node {
	return newNode(leafDepthQuad(q))
}

// NewLeaf4 is a convenience wrapper over NewLeaf.
func NewLeaf4(nw, ne, sw, se Block) *Node {
	return NewLeaf(Quad[Block]{NW: nw, NE: ne, SW: sw, SE: se})
}

// NewInner interns a node one depth deeper than its (equal-depth) children.
func NewInner(q Quad[*Node]) *Node {
	return NewDepthInner(q.NW.Depth()+1, q)
}

// NewInner4 is a convenience wrapper over NewInner.
func NewInner4(nw, ne, sw, se *Node) *Node {
	return NewInner(Quad[*Node]{NW: nw, NE: ne, SW: sw, SE: se})
}

// NewDepthInner interns an inner node at an explicit depth.
func NewDepthInner(depth int, q Quad[*Node]) *Node {
	return newNode(innerDepthQuad(depth, q))
}

// Empty returns the canonical all-dead node at the given depth.
func Empty(depth int) *Node {
	if depth < 0 || depth > MaxDepth {
		glog.Fatalf("invalid empty node depth: %d", depth)
	}
	return emptyNodes[depth]
}

func (n *Node) depthQuad() depthQuad {
	return n.quad
}

// Depth returns the node's nesting depth: 0 for a leaf of Blocks.
func (n *Node) Depth() int {
	return n.quad.Depth()
}

// WidthLog2 returns log2 of the node's width in cells.
func (n *Node) WidthLog2() int {
	return n.Depth() + minWidthLog2
}

// Width returns the node's width in cells.
func (n *Node) Width() uint64 {
	return 1 << n.WidthLog2()
}

// HalfWidth returns half the node's width, as a signed coordinate bound.
func (n *Node) HalfWidth() int64 {
	return 1 << (n.WidthLog2() - 1)
}

// Leaf returns the node's four child Blocks and true, or the zero value
// and false if the node is not a leaf.
func (n *Node) Leaf() (Quad[Block], bool) {
	if n.quad.IsLeaf() {
		return n.quad.leaf, true
	}
	return Quad[Block]{}, false
}

// Inner returns the node's four child Nodes and true, or the zero value
// and false if the node is a leaf.
func (n *Node) Inner() (Quad[*Node], bool) {
	if n.quad.IsLeaf() {
		return Quad[*Node]{}, false
	}
	return n.quad.inner, true
}

// Population returns the memoized count of live cells in the node.
func (n *Node) Population() uint64 {
	return n.population
}

// IsEmpty reports whether the node has no live cells.
func (n *Node) IsEmpty() bool {
	return n.population == 0
}
