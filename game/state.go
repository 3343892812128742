package game

// GameState is the dynamic state of one round: the board, whose turn it is,
// and how many moves have been applied. A round starts from NewGameState
// and is mutated exclusively through Play.
type GameState struct {
	Board   Board
	Current int // player to act next, 0 or 1
	Moves   int // moves applied so far
}

// Outcome describes a single applied move, for logging and for the render
// collaborator.
type Outcome struct {
	Player    int
	Pit       int
	Last      int   // slot that received the final seed
	Path      []int // slots seeded, in drop order
	Captured  int   // seeds moved to the store by the capture rule
	ExtraTurn bool
}

// Result is the final accounting of a round.
type Result struct {
	Scores [2]int
	Winner int // -1 on a tie
	Tie    bool
}

// NewGameState returns a fresh round: canonical board, player 0 to act.
func NewGameState() *GameState {
	return &GameState{Board: NewBoard()}
}

// Copy returns an independent snapshot of the state.
func (gs *GameState) Copy() *GameState {
	snapshot := *gs
	return &snapshot
}

// Over reports whether the round has ended: either player's six pits are
// all empty. Stores are not consulted, so one side emptying ends the round
// even while the other side still holds seeds.
func (gs *GameState) Over() bool {
	return gs.Board.PitSum(0) == 0 || gs.Board.PitSum(1) == 0
}

// LegalMoves lists the non-empty pits the current player may sow from.
// Empty exactly when the current player's side is cleared.
func (gs *GameState) LegalMoves() []int {
	var moves []int
	for pit := gs.Current * 7; pit < gs.Current*7+PitsPerPlayer; pit++ {
		if gs.Board[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// Play applies one move for the current player: validate, sow, capture,
// then either grant an extra turn (final seed landed in the mover's own
// store) or pass the turn. On a validation error the state is untouched.
//
// Callers check Over before requesting a move; Play itself does not
// re-check termination.
func (gs *GameState) Play(pit int) (Outcome, error) {
	player := gs.Current
	if err := Validate(gs.Board, pit, player); err != nil {
		return Outcome{}, err
	}

	last, path := gs.Board.Sow(pit, player)
	captured := gs.Board.Capture(last, player)

	outcome := Outcome{
		Player:   player,
		Pit:      pit,
		Last:     last,
		Path:     path,
		Captured: captured,
	}
	if last == StoreIndex(player) {
		outcome.ExtraTurn = true
	} else {
		gs.Current = 1 - player
	}
	gs.Moves++
	return outcome, nil
}

// Score sums the seven slots belonging to the player, store included.
// Remaining pit seeds are not swept into stores at round end; the score is
// taken over the board exactly as the last move left it.
func (gs *GameState) Score(player int) int {
	return gs.Board.PitSum(player) + gs.Board[StoreIndex(player)]
}

// Result computes the final scores and winner. Winner is the player with
// the strictly higher score, -1 when tied.
func (gs *GameState) Result() Result {
	r := Result{Scores: [2]int{gs.Score(0), gs.Score(1)}}
	switch {
	case r.Scores[0] > r.Scores[1]:
		r.Winner = 0
	case r.Scores[1] > r.Scores[0]:
		r.Winner = 1
	default:
		r.Winner = -1
		r.Tie = true
	}
	return r
}
