package engine

import "fmt"

// Piece orients one shape on the board. Every Piece owns a deep copy of
// its shape so that transforming one piece never affects another piece
// built from the same template. The anchor is the absolute board point
// the shape's relative squares are projected from; geometry queries and
// transforms require it to have been set.
type Piece struct {
	Shape Shape

	anchor   Point
	anchored bool
}

// NewPiece builds a piece from the catalog template for kind.
func NewPiece(kind ShapeKind) *Piece {
	return &Piece{Shape: shapeTemplates[kind].clone()}
}

// NewOrientedPiece builds a piece pre-transformed from the canonical
// orientation: flipped horizontally first when flipped is true, then
// right-rotated rotation (mod 4) times.
func NewOrientedPiece(kind ShapeKind, flipped bool, rotation int) *Piece {
	p := NewPiece(kind)
	if flipped {
		p.Shape.flipHorizontally()
	}
	for i := 0; i < ((rotation%4)+4)%4; i++ {
		p.Shape.rotateRight()
	}
	return p
}

// SetAnchor assigns the anchor point. It always succeeds and may be
// called again, e.g. while a UI previews candidate positions.
func (p *Piece) SetAnchor(anchor Point) {
	p.anchor = anchor
	p.anchored = true
}

// Anchor returns the anchor point and whether it has been set.
func (p *Piece) Anchor() (Point, bool) {
	return p.anchor, p.anchored
}

func (p *Piece) checkAnchor() error {
	if !p.anchored {
		return fmt.Errorf("%w: shape %s", ErrNoAnchor, p.Shape.Kind)
	}
	return nil
}

// FlipHorizontally flips the piece across the vertical axis through its
// origin, in place. A no-op for non-transformable shapes. Returns
// ErrNoAnchor if the anchor is unset.
func (p *Piece) FlipHorizontally() error {
	if err := p.checkAnchor(); err != nil {
		return err
	}
	p.Shape.flipHorizontally()
	return nil
}

// RotateLeft rotates the piece 90 degrees counterclockwise, in place.
func (p *Piece) RotateLeft() error {
	if err := p.checkAnchor(); err != nil {
		return err
	}
	p.Shape.rotateLeft()
	return nil
}

// RotateRight rotates the piece 90 degrees clockwise, in place.
func (p *Piece) RotateRight() error {
	if err := p.checkAnchor(); err != nil {
		return err
	}
	p.Shape.rotateRight()
	return nil
}

// Squares returns the absolute board points covered by the piece in its
// current position and orientation.
func (p *Piece) Squares() ([]Point, error) {
	if err := p.checkAnchor(); err != nil {
		return nil, err
	}
	out := make([]Point, len(p.Shape.Squares))
	for i, off := range p.Shape.Squares {
		out[i] = p.anchor.add(off)
	}
	return out, nil
}

// CardinalNeighbors returns every point one orthogonal step from any of
// the piece's squares, excluding the piece's own squares.
func (p *Piece) CardinalNeighbors() (PointSet, error) {
	squares, err := p.Squares()
	if err != nil {
		return nil, err
	}
	own := NewPointSet(squares...)
	neighbors := make(PointSet)
	for _, sq := range squares {
		for _, step := range cardinalSteps {
			n := sq.add(step)
			if !own.Contains(n) {
				neighbors.add(n)
			}
		}
	}
	return neighbors, nil
}

// IntercardinalNeighbors returns every point diagonally adjacent to any
// of the piece's squares, excluding the piece's own squares and its
// cardinal neighbors.
func (p *Piece) IntercardinalNeighbors() (PointSet, error) {
	squares, err := p.Squares()
	if err != nil {
		return nil, err
	}
	own := NewPointSet(squares...)
	cardinal, err := p.CardinalNeighbors()
	if err != nil {
		return nil, err
	}
	neighbors := make(PointSet)
	for _, sq := range squares {
		for _, step := range intercardinalSteps {
			n := sq.add(step)
			if !own.Contains(n) && !cardinal.Contains(n) {
				neighbors.add(n)
			}
		}
	}
	return neighbors, nil
}
