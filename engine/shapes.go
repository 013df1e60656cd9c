package engine

import "strings"

// ShapeKind identifies one of the 21 polyomino shapes. Every player
// starts with exactly one piece of each kind.
type ShapeKind uint8

const (
	ShapeOne ShapeKind = iota // monomino
	ShapeTwo
	ShapeThree
	ShapeC // L-tromino
	ShapeFour
	ShapeSeven
	ShapeS
	ShapeLetterO // square tetromino
	ShapeA       // T-tetromino
	ShapeF
	ShapeFive
	ShapeL
	ShapeN
	ShapeP
	ShapeT
	ShapeU
	ShapeV
	ShapeW
	ShapeX
	ShapeY
	ShapeZ

	NumShapeKinds = 21
)

var shapeLetters = [NumShapeKinds]string{
	"1", "2", "3", "C", "4", "7", "S", "O", "A", "F",
	"5", "L", "N", "P", "T", "U", "V", "W", "X", "Y", "Z",
}

// String returns the single display letter for the kind, as used in the
// text grid format.
func (k ShapeKind) String() string {
	if int(k) >= NumShapeKinds {
		return "?"
	}
	return shapeLetters[k]
}

// SquareCount returns the number of squares in the kind's canonical
// shape (1 for the monomino, up to 5 for the pentominoes).
func (k ShapeKind) SquareCount() int {
	return len(shapeTemplates[k].Squares)
}

// KindForLetter returns the ShapeKind displayed as the given letter.
func KindForLetter(letter string) (ShapeKind, bool) {
	for k, l := range shapeLetters {
		if l == letter {
			return ShapeKind(k), true
		}
	}
	return 0, false
}

// Shape is a polyomino template: square offsets relative to an origin
// point. Templates are built once at package init and shared read-only;
// pieces own deep copies (see NewPiece).
type Shape struct {
	Kind          ShapeKind
	Origin        Point
	Transformable bool
	Squares       []Point
}

// clone returns a deep copy whose Squares slice is independently owned.
func (s Shape) clone() Shape {
	out := s
	out.Squares = make([]Point, len(s.Squares))
	copy(out.Squares, s.Squares)
	return out
}

// The in-place transforms below operate on offsets relative to the
// origin. A shape without an explicit origin marker (the monomino) is
// not transformable; transforming it is a no-op, never an error.

func (s *Shape) flipHorizontally() {
	if !s.Transformable {
		return
	}
	for i, sq := range s.Squares {
		s.Squares[i] = Point{sq.Row, -sq.Col}
	}
}

func (s *Shape) rotateLeft() {
	if !s.Transformable {
		return
	}
	for i, sq := range s.Squares {
		s.Squares[i] = Point{-sq.Col, sq.Row}
	}
}

func (s *Shape) rotateRight() {
	if !s.Transformable {
		return
	}
	for i, sq := range s.Squares {
		s.Squares[i] = Point{sq.Col, -sq.Row}
	}
}

// Shape definitions. Three markers: X is a filled square, O is a filled
// square that is also the origin, @ is the origin without a square.
// A definition with no origin marker defaults its origin to the
// top-left cell and is not transformable.
var shapeDefinitions = [NumShapeKinds]string{
	ShapeOne: `
X
`,
	ShapeTwo: `
OX
`,
	ShapeThree: `
XOX
`,
	ShapeC: `
OX
X
`,
	ShapeFour: `
XOXX
`,
	ShapeSeven: `
XX
 O
 X
`,
	ShapeS: `
@XX
XX
`,
	ShapeLetterO: `
OX
XX
`,
	ShapeA: `
 X
XOX
`,
	ShapeF: `
 XX
XO
 X
`,
	ShapeFive: `
X
X
O
X
X
`,
	ShapeL: `
X
X
O
XX
`,
	ShapeN: `
 X
 X
XO
X
`,
	ShapeP: `
XX
OX
X
`,
	ShapeT: `
XXX
 O
 X
`,
	ShapeU: `
X X
XOX
`,
	ShapeV: `
  X
  X
XXO
`,
	ShapeW: `
  X
 XX
XO
`,
	ShapeX: `
 X
XOX
 X
`,
	ShapeY: `
 X
XO
 X
 X
`,
	ShapeZ: `
XX
 O
 XX
`,
}

// shapeTemplates holds the parsed catalog. Built exactly once, at
// package init; never mutated afterwards.
var shapeTemplates [NumShapeKinds]Shape

func init() {
	for k := ShapeKind(0); k < NumShapeKinds; k++ {
		shapeTemplates[k] = parseShape(k, shapeDefinitions[k])
	}
}

// Template returns the canonical shape template for kind. The returned
// value shares the catalog's Squares slice; callers must treat it as
// read-only and go through NewPiece for an owned, transformable copy.
func Template(kind ShapeKind) Shape {
	return shapeTemplates[kind]
}

// parseShape builds a Shape from its textual definition. Square offsets
// are measured from the origin marker; with no marker the origin is the
// block's top-left cell and the shape is not transformable.
func parseShape(kind ShapeKind, def string) Shape {
	var lines []string
	for _, line := range strings.Split(def, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	origin := Point{}
	hasOrigin := false
	var squares []Point
	for r, line := range lines {
		for c, ch := range line {
			switch ch {
			case 'X':
				squares = append(squares, Point{r, c})
			case 'O':
				origin = Point{r, c}
				hasOrigin = true
				squares = append(squares, origin)
			case '@':
				origin = Point{r, c}
				hasOrigin = true
			}
		}
	}

	rel := make([]Point, len(squares))
	for i, sq := range squares {
		rel[i] = Point{sq.Row - origin.Row, sq.Col - origin.Col}
	}
	return Shape{Kind: kind, Origin: origin, Transformable: hasOrigin, Squares: rel}
}
