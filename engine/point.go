package engine

// Point is a board coordinate. Row grows downward and Col grows
// rightward, so (0, 0) is the top-left corner of the grid and cells are
// indexed grid[row][col].
type Point struct {
	Row, Col int
}

func (p Point) add(q Point) Point {
	return Point{p.Row + q.Row, p.Col + q.Col}
}

// Cardinal and intercardinal step offsets, clockwise from north.
var (
	cardinalSteps      = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	intercardinalSteps = [4]Point{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// PointSet is an unordered set of board coordinates.
type PointSet map[Point]struct{}

// NewPointSet builds a PointSet from the given points.
func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s.add(p)
	}
	return s
}

// Contains reports whether p is in the set.
func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) add(p Point) {
	s[p] = struct{}{}
}

// Points returns the set's members as a slice, in no particular order.
func (s PointSet) Points() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}
