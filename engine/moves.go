package engine

import (
	"fmt"
	"sort"
	"strings"
)

// AvailableMoves enumerates every legal move for the current player:
// each remaining shape kind, in each distinct orientation, anchored at
// each board coordinate. Orientations that are translations of one
// another are deduplicated, so symmetric shapes contribute fewer
// candidates: the X pentomino has one distinct orientation, the L
// pentomino eight.
func (g *Game) AvailableMoves() []*Piece {
	var moves []*Piece
	size := g.board.Size()
	for _, kind := range g.RemainingShapes(g.curr) {
		for _, orientation := range distinctOrientations(kind) {
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					piece := &Piece{Shape: orientation.clone()}
					piece.SetAnchor(Point{r, c})
					legal, err := g.LegalToPlace(piece)
					if err == nil && legal {
						moves = append(moves, piece)
					}
				}
			}
		}
	}
	return moves
}

// distinctOrientations returns the distinct shapes reachable from
// kind's template by flips and rotations. Orientations whose offset
// sets differ only by a translation place the same cells at shifted
// anchors, so they are collapsed to one.
func distinctOrientations(kind ShapeKind) []Shape {
	seen := make(map[string]struct{})
	var out []Shape
	for _, flipped := range []bool{false, true} {
		for rotation := 0; rotation < 4; rotation++ {
			shape := NewOrientedPiece(kind, flipped, rotation).Shape
			sig := orientationSignature(shape.Squares)
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			out = append(out, shape)
		}
	}
	return out
}

// orientationSignature normalizes offsets to a translation-invariant
// canonical string: shift so the minimum row and column are zero, then
// sort.
func orientationSignature(squares []Point) string {
	minRow, minCol := squares[0].Row, squares[0].Col
	for _, sq := range squares[1:] {
		if sq.Row < minRow {
			minRow = sq.Row
		}
		if sq.Col < minCol {
			minCol = sq.Col
		}
	}
	normalized := make([]Point, len(squares))
	for i, sq := range squares {
		normalized[i] = Point{sq.Row - minRow, sq.Col - minCol}
	}
	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].Row != normalized[j].Row {
			return normalized[i].Row < normalized[j].Row
		}
		return normalized[i].Col < normalized[j].Col
	})
	var b strings.Builder
	for _, sq := range normalized {
		fmt.Fprintf(&b, "%d,%d;", sq.Row, sq.Col)
	}
	return b.String()
}
