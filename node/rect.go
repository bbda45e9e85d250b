package node

// side is a 1-dimensional inclusive [min, max] interval.
type side struct {
	min, max int64
}

func sideMinMax(min, max int64) side {
	return side{min: min, max: max}
}

func sideNew(a, b int64) side {
	if a < b {
		return sideMinMax(a, b)
	}
	return sideMinMax(b, a)
}

func sideJust(a int64) side {
	return sideMinMax(a, a)
}

func (s side) isEmpty() bool {
	return s.max < s.min
}

func (s side) Min() int64 {
	return s.min
}

// mid is the floor of the average of min and max, computed branchlessly
// (see num-integer's average_floor: http://aggregate.org/MAGIC/#Average%20of%20Integers).
func (s side) mid() int64 {
	return (s.min & s.max) + ((s.min ^ s.max) >> 1)
}

func (s side) Max() int64 {
	return s.max
}

func (s *side) extend(a int64) {
	if a < s.min {
		s.min = a
	}
	if a > s.max {
		s.max = a
	}
}

func (s *side) union(other side) {
	if other.min < s.min {
		s.min = other.min
	}
	if other.max > s.max {
		s.max = other.max
	}
}

func (s *side) intersection(other side) {
	if other.min > s.min {
		s.min = other.min
	}
	if other.max < s.max {
		s.max = other.max
	}
}

func (s *side) offset(a int64) {
	s.min += a
	s.max += a
}

// Rect is an axis-aligned rectangle that inclusively contains a min and
// max point.
type Rect struct {
	x, y side
}

// Everything is the rectangle containing every position.
var Everything = RectSymmetricMinMax(minInt64, maxInt64)

// Nothing is the empty rectangle.
var Nothing = RectSymmetricMinMax(maxInt64, minInt64)

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

func rectFromSides(x, y side) Rect {
	return Rect{x: x, y: y}
}

// RectSymmetricMinMax builds a square rect whose x and y sides are both
// [min, max].
func RectSymmetricMinMax(min, max int64) Rect {
	s := sideMinMax(min, max)
	return rectFromSides(s, s)
}

// RectMinMax builds a rect from an explicit min and max corner, without
// reordering the coordinates.
func RectMinMax(min, max Pos) Rect {
	return rectFromSides(sideMinMax(min.X, max.X), sideMinMax(min.Y, max.Y))
}

// RectNew builds a rect from any two corners, reordering as needed.
func RectNew(a, b Pos) Rect {
	return rectFromSides(sideNew(a.X, b.X), sideNew(a.Y, b.Y))
}

// RectJust builds a rect containing exactly one position.
func RectJust(a Pos) Rect {
	return rectFromSides(sideJust(a.X), sideJust(a.Y))
}

// IsEmpty reports whether the rect contains no positions.
func (r Rect) IsEmpty() bool {
	return r.x.isEmpty() || r.y.isEmpty()
}

func (r Rect) North() int64 { return r.y.min }
func (r Rect) South() int64 { return r.y.max }
func (r Rect) West() int64  { return r.x.min }
func (r Rect) East() int64  { return r.x.max }

func (r *Rect) SetNorth(v int64) { r.y.min = v }
func (r *Rect) SetSouth(v int64) { r.y.max = v }
func (r *Rect) SetWest(v int64)  { r.x.min = v }
func (r *Rect) SetEast(v int64)  { r.x.max = v }

func (r Rect) NW() Pos { return NewPos(r.x.Min(), r.y.Min()) }
func (r Rect) NC() Pos { return NewPos(r.x.mid(), r.y.Min()) }

// NE returns the north-east corner. The original Rust source has this
// (and CE, SE below) accidentally return the same point as NW/CW/SW — a
// copy-paste bug. This port uses the mathematically correct corner.
func (r Rect) NE() Pos { return NewPos(r.x.Max(), r.y.Min()) }

func (r Rect) CW() Pos { return NewPos(r.x.Min(), r.y.mid()) }
func (r Rect) CC() Pos { return NewPos(r.x.mid(), r.y.mid()) }
func (r Rect) CE() Pos { return NewPos(r.x.Max(), r.y.mid()) }

func (r Rect) SW() Pos { return NewPos(r.x.Min(), r.y.Max()) }
func (r Rect) SC() Pos { return NewPos(r.x.mid(), r.y.Max()) }
func (r Rect) SE() Pos { return NewPos(r.x.Max(), r.y.Max()) }

// Extend grows the rect, if needed, to include pos.
func (r *Rect) Extend(pos Pos) {
	r.x.extend(pos.X)
	r.y.extend(pos.Y)
}

// Union grows the rect, if needed, to include every position in other.
func (r *Rect) Union(other Rect) {
	r.x.union(other.x)
	r.y.union(other.y)
}

// Intersection shrinks the rect to only the positions also in other.
func (r *Rect) Intersection(other Rect) {
	r.x.intersection(other.x)
	r.y.intersection(other.y)
}

// Offset translates the rect by pos.
func (r *Rect) Offset(pos Pos) {
	r.x.offset(pos.X)
	r.y.offset(pos.Y)
}
