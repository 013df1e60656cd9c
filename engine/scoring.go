package engine

// Scoring bonuses for a player who has played all 21 shapes.
const (
	allPlayedBonus    = 15
	lastPieceOneBonus = 20
)

// Score returns player's score. With unplayed shapes remaining, the
// score is the negative sum of their square counts. With every shape
// played, the score is 15, or 20 when the player's final placement was
// the monomino.
func (g *Game) Score(player int) int {
	remaining := g.RemainingShapes(player)
	if len(remaining) > 0 {
		score := 0
		for _, k := range remaining {
			score -= k.SquareCount()
		}
		return score
	}

	for i := len(g.history) - 1; i >= 0; i-- {
		if g.history[i].Player != player {
			continue
		}
		if g.history[i].Kind == ShapeOne {
			return lastPieceOneBonus
		}
		break
	}
	return allPlayedBonus
}

// Winners returns the players with the highest score once the game is
// over, or nil while it is still in progress. Ties are possible.
func (g *Game) Winners() []int {
	if !g.GameOver() {
		return nil
	}
	best := g.Score(1)
	for p := 2; p <= g.numPlayers; p++ {
		if s := g.Score(p); s > best {
			best = s
		}
	}
	var winners []int
	for p := 1; p <= g.numPlayers; p++ {
		if g.Score(p) == best {
			winners = append(winners, p)
		}
	}
	return winners
}
