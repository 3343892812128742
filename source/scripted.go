package source

import (
	"fmt"

	"mancala/engine"
	"mancala/game"
)

// Scripted replays a fixed pit sequence, one entry per turn it is asked
// for. Used by tests and replays; it errors once the script runs out so a
// stuck round fails loudly instead of hanging.
type Scripted struct {
	moves []int
	next  int
}

func NewScripted(moves ...int) *Scripted {
	return &Scripted{moves: moves}
}

func (s *Scripted) NextMove(state *game.GameState, player int) (engine.TurnResult, error) {
	if s.next >= len(s.moves) {
		return engine.TurnResult{}, fmt.Errorf("scripted source exhausted after %d moves", len(s.moves))
	}
	pit := s.moves[s.next]
	s.next++
	return engine.TurnResult{Pit: pit}, nil
}
