package engine

import "mancala/game"

// MaxMoves bounds a single round so a misbehaving move source cannot spin
// the loop forever.
const MaxMoves = 10000

// TurnResult is what a move source hands back for one turn: either a pit
// to sow from, or a request to leave the round. Quitting is cooperative;
// the engine surfaces it in the result instead of exiting the process.
type TurnResult struct {
	Pit  int
	Quit bool
}

// MoveSource supplies moves for one player. Implementations get a snapshot
// of the current state and may query it freely (validation, legal moves)
// before answering. The engine depends only on this interface, never on a
// concrete input mechanism.
type MoveSource interface {
	NextMove(state *game.GameState, player int) (TurnResult, error)
}

// Update is a post-mutation snapshot handed to the observer after every
// applied move, so a presentation layer can redraw the board.
type Update struct {
	Move  game.Outcome
	State *game.GameState
}

// Observer receives updates as the round progresses. It must not retain
// and mutate the snapshot's board expecting to affect the engine.
type Observer func(Update)

// Result is the outcome of a full round.
type Result struct {
	game.Result
	Moves int
	Quit  bool // a player left before the round finished
}
