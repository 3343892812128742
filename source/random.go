package source

import (
	"errors"

	"mancala/engine"
	"mancala/game"

	"golang.org/x/exp/rand"
)

// Random answers with a uniformly chosen legal move. It exists for
// playthrough tests that need whole rounds driven without scripting every
// turn; the seed makes failures reproducible.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (s *Random) NextMove(state *game.GameState, player int) (engine.TurnResult, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return engine.TurnResult{}, errors.New("no legal moves")
	}
	return engine.TurnResult{Pit: moves[s.rng.Intn(len(moves))]}, nil
}
