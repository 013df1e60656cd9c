// Package engine implements the Blokus board game rules.
//
// The package is a pure, single-actor state machine: shape catalog and
// piece geometry, the occupancy board, and the Game type that enforces
// legality, turn order, inventories, scoring and termination. It has no
// I/O and no locking; callers that share a Game across goroutines must
// serialize access externally (see internal/session).
package engine

import "fmt"

// MaxPlayers is the most players a game supports.
const MaxPlayers = 4

// MinBoardSize is the smallest supported board side length.
const MinBoardSize = 5

// Placement records one committed move.
type Placement struct {
	Player int
	Kind   ShapeKind
}

// Game holds the complete state of one Blokus game: the board, the set
// of start positions, the retirement set, the turn pointer, the move
// counter and the placement history. Per-player inventories are derived
// from the board, so the board is the single source of truth for what
// has been played.
type Game struct {
	numPlayers int
	board      *Board
	starts     PointSet
	retired    map[int]struct{}
	curr       int
	numMoves   int
	history    []Placement
}

// NewGame validates the configuration and builds a game with an empty
// board. It fails with ErrInvalidConfig if numPlayers is outside 1-4,
// size is below 5, any start position is off the board, or there are
// fewer start positions than players.
func NewGame(numPlayers, size int, startPositions []Point) (*Game, error) {
	if numPlayers < 1 || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: num players %d, want 1-%d", ErrInvalidConfig, numPlayers, MaxPlayers)
	}
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: board size %d, want >= %d", ErrInvalidConfig, size, MinBoardSize)
	}
	for _, p := range startPositions {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			return nil, fmt.Errorf("%w: start position (%d, %d) off a %dx%d board", ErrInvalidConfig, p.Row, p.Col, size, size)
		}
	}
	starts := NewPointSet(startPositions...)
	if len(starts) < numPlayers {
		return nil, fmt.Errorf("%w: %d start positions for %d players", ErrInvalidConfig, len(starts), numPlayers)
	}
	return &Game{
		numPlayers: numPlayers,
		board:      NewBoard(size),
		starts:     starts,
		retired:    make(map[int]struct{}),
		curr:       1,
	}, nil
}

// NumPlayers returns the number of players. Players are numbered
// consecutively from 1.
func (g *Game) NumPlayers() int {
	return g.numPlayers
}

// Size returns the board side length.
func (g *Game) Size() int {
	return g.board.Size()
}

// Board returns the underlying board for read access.
func (g *Game) Board() *Board {
	return g.board
}

// Grid returns a copy of the current board state.
func (g *Game) Grid() [][]Cell {
	return g.board.Grid()
}

// StartPositions returns a copy of the start position set.
func (g *Game) StartPositions() PointSet {
	return NewPointSet(g.starts.Points()...)
}

// CurrentPlayer returns the player who must move next. While the game
// is in progress this is never a retired or exhausted player; once the
// game is over the value is not meaningful.
func (g *Game) CurrentPlayer() int {
	return g.curr
}

// RetiredPlayers returns the players who have retired, ascending.
func (g *Game) RetiredPlayers() []int {
	out := make([]int, 0, len(g.retired))
	for p := 1; p <= g.numPlayers; p++ {
		if g.isRetired(p) {
			out = append(out, p)
		}
	}
	return out
}

// MoveCount returns the number of successful placements so far.
func (g *Game) MoveCount() int {
	return g.numMoves
}

// History returns a copy of the placement history, oldest first.
func (g *Game) History() []Placement {
	out := make([]Placement, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) isRetired(player int) bool {
	_, ok := g.retired[player]
	return ok
}

// RemainingShapes returns the shape kinds player has not yet played, in
// kind order. Inventories are derived from the board, so a kind leaves
// the list exactly when a piece of that kind is committed.
func (g *Game) RemainingShapes(player int) []ShapeKind {
	var played [NumShapeKinds]bool
	for _, row := range g.board.grid {
		for _, cell := range row {
			if cell.Player == player {
				played[cell.Kind] = true
			}
		}
	}
	remaining := make([]ShapeKind, 0, NumShapeKinds)
	for k := ShapeKind(0); k < NumShapeKinds; k++ {
		if !played[k] {
			remaining = append(remaining, k)
		}
	}
	return remaining
}

func (g *Game) isExhausted(player int) bool {
	return len(g.RemainingShapes(player)) == 0
}

// LegalToPlace reports whether the current player may place the piece.
//
// It fails with ErrAlreadyPlayed if the player has already played the
// piece's shape kind, and with ErrNoAnchor if the anchor is unset; both
// are contract violations, not move outcomes. Collisions, a missed
// start position on the opening move, and adjacency violations all
// report a plain false.
func (g *Game) LegalToPlace(piece *Piece) (bool, error) {
	if !g.shapeRemaining(g.curr, piece.Shape.Kind) {
		return false, fmt.Errorf("player %d: %w: %s", g.curr, ErrAlreadyPlayed, piece.Shape.Kind)
	}
	squares, err := piece.Squares()
	if err != nil {
		return false, err
	}
	if collides, err := g.board.Collision(piece); err != nil || collides {
		return false, err
	}

	// Opening round: each player's first move must cover a start
	// position; adjacency rules do not apply yet.
	if g.numMoves < g.numPlayers-len(g.retired) {
		for _, sq := range squares {
			if g.starts.Contains(sq) {
				return true, nil
			}
		}
		return false, nil
	}

	// No orthogonal contact with the player's own pieces.
	cardinal, err := piece.CardinalNeighbors()
	if err != nil {
		return false, err
	}
	for n := range cardinal {
		if g.board.InBounds(n) && g.board.At(n).Player == g.curr {
			return false, nil
		}
	}

	// At least one diagonal contact with the player's own pieces.
	intercardinal, err := piece.IntercardinalNeighbors()
	if err != nil {
		return false, err
	}
	for n := range intercardinal {
		if g.board.InBounds(n) && g.board.At(n).Player == g.curr {
			return true, nil
		}
	}
	return false, nil
}

func (g *Game) shapeRemaining(player int, kind ShapeKind) bool {
	for _, k := range g.RemainingShapes(player) {
		if k == kind {
			return true
		}
	}
	return false
}

// MaybePlace places the piece for the current player if it is legal,
// then advances the turn. It returns false without mutating anything
// when the current player is retired or the move is illegal, and
// propagates the contract-violation errors of LegalToPlace.
func (g *Game) MaybePlace(piece *Piece) (bool, error) {
	if g.isRetired(g.curr) {
		return false, nil
	}
	legal, err := g.LegalToPlace(piece)
	if err != nil || !legal {
		return false, err
	}
	if err := g.board.Commit(piece, g.curr); err != nil {
		return false, err
	}
	g.history = append(g.history, Placement{Player: g.curr, Kind: piece.Shape.Kind})
	g.numMoves++
	g.advanceTurn()
	return true, nil
}

// Retire withdraws the current player from all future turns and
// advances to the next eligible player. Idempotent.
func (g *Game) Retire() {
	g.retired[g.curr] = struct{}{}
	g.advanceTurn()
}

// advanceTurn moves the turn pointer to the next player that is neither
// retired nor out of shapes, wrapping modulo the player count. The loop
// is capped at the player count; if nobody is eligible the game is over
// and the pointer value is meaningless.
func (g *Game) advanceTurn() {
	next := g.curr%g.numPlayers + 1
	for i := 0; i < g.numPlayers; i++ {
		if !g.isRetired(next) && !g.isExhausted(next) {
			g.curr = next
			return
		}
		next = next%g.numPlayers + 1
	}
	g.curr = next
}

// GameOver reports whether every player is retired or has played all of
// their shapes.
func (g *Game) GameOver() bool {
	for p := 1; p <= g.numPlayers; p++ {
		if !g.isRetired(p) && !g.isExhausted(p) {
			return false
		}
	}
	return true
}

// Reset restores the game to its initial state: empty board, player 1
// to move, zero moves, no retirements, empty history. The board size,
// player count and start positions are kept.
func (g *Game) Reset() {
	g.board.reset()
	g.retired = make(map[int]struct{})
	g.curr = 1
	g.numMoves = 0
	g.history = nil
}
