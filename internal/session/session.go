// Package session wraps engine games for concurrent callers. The
// engine is a pure single-actor state machine; a Session serializes all
// access to one game behind a mutex, and a Manager tracks live sessions
// by ID.
package session

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/josephcrivera/Blokus-Game-Simulation/engine"
)

// OnGameEndFunc runs once when a session's game reaches a terminal
// state, with the winning players and every player's final score.
type OnGameEndFunc func(id uuid.UUID, winners []int, scores map[int]int)

// Session owns one engine.Game instance. All mutation goes through the
// session so the engine never sees concurrent access.
type Session struct {
	ID uuid.UUID

	mu    sync.Mutex
	game  *engine.Game
	log   *logrus.Entry
	ended bool

	// OnGameEnd, if set, is invoked exactly once when the game ends.
	OnGameEnd OnGameEndFunc
}

// New creates a session around a freshly constructed game.
func New(numPlayers, size int, startPositions []engine.Point, logger *logrus.Logger) (*Session, error) {
	g, err := engine.NewGame(numPlayers, size, startPositions)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Session{
		ID:   id,
		game: g,
		log: logger.WithFields(logrus.Fields{
			"game_id": id,
			"players": numPlayers,
			"size":    size,
		}),
	}, nil
}

// Place attempts the move for the current player and reports whether it
// was committed. Contract-violation errors from the engine pass
// through.
func (s *Session) Place(piece *engine.Piece) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.game.CurrentPlayer()
	ok, err := s.game.MaybePlace(piece)
	if err != nil {
		s.log.WithError(err).WithField("shape", piece.Shape.Kind.String()).Warn("placement rejected")
		return false, err
	}
	if ok {
		s.log.WithFields(logrus.Fields{
			"player": player,
			"shape":  piece.Shape.Kind.String(),
			"move":   s.game.MoveCount(),
		}).Debug("piece placed")
		s.checkEndLocked()
	}
	return ok, nil
}

// Retire retires the current player.
func (s *Session) Retire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.game.CurrentPlayer()
	s.game.Retire()
	s.log.WithField("player", player).Debug("player retired")
	s.checkEndLocked()
}

// Reset starts the game over and re-arms the end-of-game callback.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	s.ended = false
	s.log.Debug("game reset")
}

// Playout drives the game to completion with uniformly random legal
// moves, retiring any player who has none. Useful for simulations and
// smoke tests; the move choice carries no strategy.
func (s *Session) Playout(rng *rand.Rand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.game.GameOver() {
		moves := s.game.AvailableMoves()
		if len(moves) == 0 {
			s.game.Retire()
			s.checkEndLocked()
			continue
		}
		move := moves[rng.Intn(len(moves))]
		ok, err := s.game.MaybePlace(move)
		if err != nil {
			return err
		}
		if !ok {
			// Enumerated moves are pre-checked; a rejection here means
			// the player has no real options left.
			s.game.Retire()
		}
		s.checkEndLocked()
	}
	return nil
}

// checkEndLocked fires the end-of-game callback on the transition to a
// terminal state. Caller holds s.mu.
func (s *Session) checkEndLocked() {
	if s.ended || !s.game.GameOver() {
		return
	}
	s.ended = true

	winners := s.game.Winners()
	scores := make(map[int]int, s.game.NumPlayers())
	for p := 1; p <= s.game.NumPlayers(); p++ {
		scores[p] = s.game.Score(p)
	}
	s.log.WithFields(logrus.Fields{
		"winners": winners,
		"scores":  scores,
		"moves":   s.game.MoveCount(),
	}).Info("game over")

	if s.OnGameEnd != nil {
		s.OnGameEnd(s.ID, winners, scores)
	}
}

// State is a read-only snapshot of a session's game.
type State struct {
	CurrentPlayer  int
	MoveCount      int
	RetiredPlayers []int
	GameOver       bool
	Winners        []int
	Grid           [][]engine.Cell
}

// Snapshot returns a consistent view of the game state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		CurrentPlayer:  s.game.CurrentPlayer(),
		MoveCount:      s.game.MoveCount(),
		RetiredPlayers: s.game.RetiredPlayers(),
		GameOver:       s.game.GameOver(),
		Winners:        s.game.Winners(),
		Grid:           s.game.Grid(),
	}
}

// Score returns a player's current score.
func (s *Session) Score(player int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Score(player)
}

// RemainingShapes returns the player's unplayed shape kinds.
func (s *Session) RemainingShapes(player int) []engine.ShapeKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.RemainingShapes(player)
}

// NumPlayers returns the session's player count.
func (s *Session) NumPlayers() int {
	return s.game.NumPlayers()
}
