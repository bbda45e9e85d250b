package node

// Pos is an absolute cell coordinate. X increases to the east, Y increases
// to the south.
type Pos struct {
	X, Y int64
}

// NewPos constructs a Pos.
func NewPos(x, y int64) Pos {
	return Pos{X: x, Y: y}
}

// Add returns p + other.
func (p Pos) Add(other Pos) Pos {
	return Pos{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Pos) Sub(other Pos) Pos {
	return Pos{X: p.X - other.X, Y: p.Y - other.Y}
}

// Map applies f to both coordinates.
func (p Pos) Map(f func(int64) int64) Pos {
	return Pos{X: f(p.X), Y: f(p.Y)}
}

// reCenter converts a position relative to a parent's center into a
// position relative to one of its children's centers: the child is offset
// from the parent center by childHalfWidth toward whichever side p already
// falls on. Not present in the original source (an older snapshot); the
// semantics are inferred from its only call site (Node.getInBounds /
// Node.setInBounds descending one quadrant per level).
func (p Pos) reCenter(childHalfWidth int64) Pos {
	return Pos{X: reCenterCoord(p.X, childHalfWidth), Y: reCenterCoord(p.Y, childHalfWidth)}
}

func reCenterCoord(v, childHalfWidth int64) int64 {
	if v < 0 {
		return v + childHalfWidth
	}
	return v - childHalfWidth
}
