package engine

import (
	"errors"
	"reflect"
	"testing"
)

// newMiniGame builds the standard 2-player 5x5 test game with start
// positions at opposite corners.
func newMiniGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(2, 5, []Point{{0, 0}, {4, 4}})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// mustPlace places kind anchored at pt for the current player and fails
// the test if the move is rejected.
func mustPlace(t *testing.T, g *Game, kind ShapeKind, pt Point) {
	t.Helper()
	p := NewPiece(kind)
	p.SetAnchor(pt)
	ok, err := g.MaybePlace(p)
	if err != nil {
		t.Fatalf("place %s at %v: %v", kind, pt, err)
	}
	if !ok {
		t.Fatalf("place %s at %v rejected", kind, pt)
	}
}

// TestNewGameValidation covers the construction contract.
func TestNewGameValidation(t *testing.T) {
	starts := []Point{{0, 0}, {4, 4}}
	cases := []struct {
		name    string
		players int
		size    int
		starts  []Point
	}{
		{"zero players", 0, 5, starts},
		{"five players", 5, 5, starts},
		{"small board", 2, 4, starts},
		{"start off board", 2, 5, []Point{{0, 0}, {5, 5}}},
		{"negative start", 2, 5, []Point{{-1, 0}, {4, 4}}},
		{"too few starts", 2, 5, []Point{{0, 0}}},
	}
	for _, tc := range cases {
		if _, err := NewGame(tc.players, tc.size, tc.starts); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: error = %v, want ErrInvalidConfig", tc.name, err)
		}
	}

	g, err := NewGame(2, 5, starts)
	if err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if g.CurrentPlayer() != 1 || g.MoveCount() != 0 {
		t.Errorf("fresh game state: player %d, moves %d", g.CurrentPlayer(), g.MoveCount())
	}
}

// TestOpeningMoves: both players open on their start positions; exactly
// two cells end up occupied.
func TestOpeningMoves(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	if g.CurrentPlayer() != 2 {
		t.Fatalf("current player = %d, want 2", g.CurrentPlayer())
	}
	mustPlace(t, g, ShapeOne, Point{4, 4})
	if g.CurrentPlayer() != 1 {
		t.Fatalf("current player = %d, want 1", g.CurrentPlayer())
	}

	occupied := 0
	for r, row := range g.Grid() {
		for c, cell := range row {
			if !cell.Occupied() {
				continue
			}
			occupied++
			pt := Point{r, c}
			switch pt {
			case Point{0, 0}:
				if cell.Player != 1 {
					t.Errorf("cell (0,0) owned by %d, want 1", cell.Player)
				}
			case Point{4, 4}:
				if cell.Player != 2 {
					t.Errorf("cell (4,4) owned by %d, want 2", cell.Player)
				}
			default:
				t.Errorf("unexpected occupied cell %v", pt)
			}
		}
	}
	if occupied != 2 {
		t.Errorf("occupied cells = %d, want 2", occupied)
	}
	if g.MoveCount() != 2 {
		t.Errorf("move count = %d, want 2", g.MoveCount())
	}
}

// TestAlreadyPlayedShape: probing with a shape the player has already
// committed is a contract violation, not an illegal move.
func TestAlreadyPlayedShape(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	mustPlace(t, g, ShapeOne, Point{4, 4})

	p := NewPiece(ShapeOne)
	p.SetAnchor(Point{2, 2})
	if _, err := g.MaybePlace(p); !errors.Is(err, ErrAlreadyPlayed) {
		t.Errorf("MaybePlace error = %v, want ErrAlreadyPlayed", err)
	}
	if _, err := g.LegalToPlace(p); !errors.Is(err, ErrAlreadyPlayed) {
		t.Errorf("LegalToPlace error = %v, want ErrAlreadyPlayed", err)
	}
}

// TestOpeningMustCoverStart: an opening move with no collisions is
// still illegal if it covers no start position.
func TestOpeningMustCoverStart(t *testing.T) {
	g := newMiniGame(t)
	p := NewPiece(ShapeOne)
	p.SetAnchor(Point{2, 2})

	legal, err := g.LegalToPlace(p)
	if err != nil {
		t.Fatal(err)
	}
	if legal {
		t.Error("opening move away from start positions should be illegal")
	}

	ok, err := g.MaybePlace(p)
	if err != nil || ok {
		t.Fatalf("MaybePlace = %v, %v; want false, nil", ok, err)
	}
	for _, row := range g.Grid() {
		for _, cell := range row {
			if cell.Occupied() {
				t.Fatal("grid mutated by rejected move")
			}
		}
	}
}

// TestAdjacencyRules: after the opening round, orthogonal contact with
// the player's own pieces is forbidden and diagonal contact required.
func TestAdjacencyRules(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	mustPlace(t, g, ShapeOne, Point{4, 4})

	// Orthogonally touches player 1's square at (0,0).
	edge := NewPiece(ShapeTwo)
	edge.SetAnchor(Point{1, 0})
	legal, err := g.LegalToPlace(edge)
	if err != nil {
		t.Fatal(err)
	}
	if legal {
		t.Error("orthogonal self-contact should be illegal")
	}

	// Touches (0,0) only diagonally.
	corner := NewPiece(ShapeTwo)
	corner.SetAnchor(Point{1, 1})
	legal, err = g.LegalToPlace(corner)
	if err != nil {
		t.Fatal(err)
	}
	if !legal {
		t.Error("diagonal-only self-contact should be legal")
	}

	ok, err := g.MaybePlace(corner)
	if err != nil || !ok {
		t.Fatalf("MaybePlace = %v, %v", ok, err)
	}
	for _, pt := range []Point{{1, 1}, {1, 2}} {
		cell := g.Board().At(pt)
		if cell.Player != 1 || cell.Kind != ShapeTwo {
			t.Errorf("cell %v = %+v, want player 1 TWO", pt, cell)
		}
	}
}

// TestNoDiagonalContactIllegal: a piece touching nothing of the
// player's own is illegal after the opening round.
func TestNoDiagonalContactIllegal(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	mustPlace(t, g, ShapeOne, Point{4, 4})

	floating := NewPiece(ShapeTwo)
	floating.SetAnchor(Point{3, 0})
	legal, err := g.LegalToPlace(floating)
	if err != nil {
		t.Fatal(err)
	}
	if legal {
		t.Error("move with no self-contact should be illegal")
	}
}

// TestFailedPlaceLeavesStateUnchanged verifies full-state equality
// around a rejected placement.
func TestFailedPlaceLeavesStateUnchanged(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	mustPlace(t, g, ShapeOne, Point{4, 4})

	gridBefore := g.Grid()
	currBefore := g.CurrentPlayer()
	movesBefore := g.MoveCount()
	historyBefore := g.History()
	remainingBefore := g.RemainingShapes(1)

	bad := NewPiece(ShapeTwo)
	bad.SetAnchor(Point{1, 0}) // orthogonal self-contact
	ok, err := g.MaybePlace(bad)
	if err != nil || ok {
		t.Fatalf("MaybePlace = %v, %v; want false, nil", ok, err)
	}

	if !reflect.DeepEqual(g.Grid(), gridBefore) {
		t.Error("grid changed by rejected move")
	}
	if g.CurrentPlayer() != currBefore {
		t.Error("turn pointer changed by rejected move")
	}
	if g.MoveCount() != movesBefore {
		t.Error("move counter changed by rejected move")
	}
	if !reflect.DeepEqual(g.History(), historyBefore) {
		t.Error("history changed by rejected move")
	}
	if !reflect.DeepEqual(g.RemainingShapes(1), remainingBefore) {
		t.Error("inventory changed by rejected move")
	}
}

// TestRemainingShapesShrink: each placement removes exactly its kind.
func TestRemainingShapesShrink(t *testing.T) {
	g := newMiniGame(t)
	if got := len(g.RemainingShapes(1)); got != NumShapeKinds {
		t.Fatalf("fresh inventory size = %d", got)
	}
	mustPlace(t, g, ShapeOne, Point{0, 0})

	remaining := g.RemainingShapes(1)
	if len(remaining) != NumShapeKinds-1 {
		t.Fatalf("inventory size after placement = %d", len(remaining))
	}
	for _, k := range remaining {
		if k == ShapeOne {
			t.Error("played shape still in inventory")
		}
	}
}

// TestRetirement: retiring advances the turn pointer and is skipped
// thereafter; retiring everyone ends the game.
func TestRetirement(t *testing.T) {
	g, err := NewGame(3, 5, []Point{{0, 0}, {4, 4}, {0, 4}})
	if err != nil {
		t.Fatal(err)
	}

	g.Retire() // player 1
	if g.CurrentPlayer() != 2 {
		t.Fatalf("current player = %d, want 2", g.CurrentPlayer())
	}
	g.Retire() // player 2
	if g.CurrentPlayer() != 3 {
		t.Fatalf("current player = %d, want 3", g.CurrentPlayer())
	}
	if g.GameOver() {
		t.Fatal("game should not be over with one active player")
	}
	g.Retire() // player 3

	if !g.GameOver() {
		t.Fatal("game should be over once everyone retired")
	}
	if got := g.RetiredPlayers(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("retired players = %v", got)
	}
	// Everyone holds a full inventory, so everyone ties.
	if got := g.Winners(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("winners = %v, want all three", got)
	}
}

// TestRetireIdempotent: retiring an already-retired player changes
// nothing.
func TestRetireIdempotent(t *testing.T) {
	g, err := NewGame(1, 5, []Point{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	g.Retire()
	g.Retire()
	if got := g.RetiredPlayers(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("retired players = %v, want [1]", got)
	}
	if !g.GameOver() {
		t.Error("single retired player should end the game")
	}
}

// TestTurnSkipsExhausted: a player with an empty inventory is skipped
// by turn advancement even if not retired.
func TestTurnSkipsExhausted(t *testing.T) {
	g, err := NewGame(2, 10, []Point{{0, 0}, {9, 9}})
	if err != nil {
		t.Fatal(err)
	}
	// Hand player 2 a fully played inventory by stamping one cell of
	// every kind into the bottom rows.
	for k := ShapeKind(0); k < NumShapeKinds; k++ {
		r := 7 + int(k)/10
		c := int(k) % 10
		g.board.grid[r][c] = Cell{Player: 2, Kind: k}
	}
	if !g.isExhausted(2) {
		t.Fatal("player 2 should be exhausted")
	}

	mustPlace(t, g, ShapeOne, Point{0, 0})
	if g.CurrentPlayer() != 1 {
		t.Errorf("current player = %d, want 1 (player 2 skipped)", g.CurrentPlayer())
	}
	if g.GameOver() {
		t.Fatal("player 1 still has shapes")
	}

	g.Retire()
	if !g.GameOver() {
		t.Fatal("game should be over: player 1 retired, player 2 exhausted")
	}
	// Player 2 played everything (score 15) and beats retired player 1.
	if got := g.Winners(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("winners = %v, want [2]", got)
	}
}

// TestSinglePlayerExhaustion: with every shape played, a single-player
// game is over and that player wins.
func TestSinglePlayerExhaustion(t *testing.T) {
	g, err := NewGame(1, 5, []Point{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	for k := ShapeKind(0); k < NumShapeKinds; k++ {
		g.board.grid[int(k)/5][int(k)%5] = Cell{Player: 1, Kind: k}
		g.history = append(g.history, Placement{Player: 1, Kind: k})
	}

	if !g.GameOver() {
		t.Fatal("game should be over with inventory exhausted")
	}
	if got := g.Winners(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("winners = %v, want [1]", got)
	}
}

// TestWinnersNilInProgress: winners are undefined before game over.
func TestWinnersNilInProgress(t *testing.T) {
	g := newMiniGame(t)
	if got := g.Winners(); got != nil {
		t.Errorf("winners = %v before game over, want nil", got)
	}
}

// TestReset restores the initial state but keeps the configuration.
func TestReset(t *testing.T) {
	g := newMiniGame(t)
	mustPlace(t, g, ShapeOne, Point{0, 0})
	g.Retire() // player 2

	g.Reset()
	if g.CurrentPlayer() != 1 || g.MoveCount() != 0 {
		t.Errorf("after reset: player %d, moves %d", g.CurrentPlayer(), g.MoveCount())
	}
	if len(g.RetiredPlayers()) != 0 {
		t.Error("retired set not cleared by reset")
	}
	if len(g.History()) != 0 {
		t.Error("history not cleared by reset")
	}
	for _, row := range g.Grid() {
		for _, cell := range row {
			if cell.Occupied() {
				t.Fatal("board not cleared by reset")
			}
		}
	}
	if got := len(g.RemainingShapes(1)); got != NumShapeKinds {
		t.Errorf("inventory after reset = %d", got)
	}
}
