package engine

// Cell is one square of the board. A zero Player means the cell is
// empty; otherwise Player is the owning player number (1-based) and
// Kind is the shape of the piece covering it.
type Cell struct {
	Player int
	Kind   ShapeKind
}

// Occupied reports whether a piece covers this cell.
func (c Cell) Occupied() bool {
	return c.Player != 0
}

// Board is a fixed-size occupancy grid. It knows nothing about game
// rules beyond bounds and occupancy; legality lives in Game.
type Board struct {
	size int
	grid [][]Cell
}

// NewBoard builds an empty size x size board.
func NewBoard(size int) *Board {
	b := &Board{size: size}
	b.reset()
	return b
}

func (b *Board) reset() {
	b.grid = make([][]Cell, b.size)
	for r := range b.grid {
		b.grid[r] = make([]Cell, b.size)
	}
}

// Size returns the number of squares per side.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the cell at p, which must be in bounds.
func (b *Board) At(p Point) Cell {
	return b.grid[p.Row][p.Col]
}

// Grid returns a copy of the current grid state.
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.size)
	for r := range b.grid {
		out[r] = make([]Cell, b.size)
		copy(out[r], b.grid[r])
	}
	return out
}

// WallCollision reports whether any of the piece's squares would land
// outside the board.
func (b *Board) WallCollision(piece *Piece) (bool, error) {
	squares, err := piece.Squares()
	if err != nil {
		return false, err
	}
	for _, sq := range squares {
		if !b.InBounds(sq) {
			return true, nil
		}
	}
	return false, nil
}

// Collision reports whether the piece would land outside the board or
// on an already occupied cell.
func (b *Board) Collision(piece *Piece) (bool, error) {
	squares, err := piece.Squares()
	if err != nil {
		return false, err
	}
	for _, sq := range squares {
		if !b.InBounds(sq) || b.grid[sq.Row][sq.Col].Occupied() {
			return true, nil
		}
	}
	return false, nil
}

// Commit writes the piece's squares into the grid for player. The
// caller is responsible for having verified legality; Commit performs
// no checks of its own and will overwrite occupied cells if misused.
func (b *Board) Commit(piece *Piece, player int) error {
	squares, err := piece.Squares()
	if err != nil {
		return err
	}
	for _, sq := range squares {
		b.grid[sq.Row][sq.Col] = Cell{Player: player, Kind: piece.Shape.Kind}
	}
	return nil
}
