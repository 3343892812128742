package engine

import (
	"errors"
	"fmt"

	"mancala/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine drives one round of Mancala: it asks the active player's source
// for a move, applies it to the state, and reports updates. It never
// initiates I/O itself; all input and output happens behind MoveSource and
// Observer. Strictly synchronous, one move in flight at a time.
type Engine struct {
	State    *game.GameState
	Names    [2]string
	sources  [2]MoveSource
	observer Observer
	id       uuid.UUID
}

type Option func(*Engine)

// WithObserver registers a callback invoked after every applied move.
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithState starts the round from a prepared state instead of the
// canonical initial board.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		e.State = state
	}
}

// New returns an engine for one round, player 0 to act first.
func New(names [2]string, sources [2]MoveSource, options ...Option) *Engine {
	e := &Engine{
		State:   game.NewGameState(),
		Names:   names,
		sources: sources,
		id:      uuid.New(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the round to completion and returns the final accounting.
// Termination is checked before every turn is requested; once a side's six
// pits are empty no further moves are accepted. A source error aborts the
// round, a Quit turn ends it early with Result.Quit set.
func (e *Engine) Run() (Result, error) {
	log.Info().
		Str("round", e.id.String()).
		Str("player0", e.Names[0]).
		Str("player1", e.Names[1]).
		Msg("round started")

	for turns := 0; turns < MaxMoves; turns++ {
		if e.State.Over() {
			return e.finish(false), nil
		}

		player := e.State.Current
		turn, err := e.sources[player].NextMove(e.State.Copy(), player)
		if err != nil {
			return Result{}, fmt.Errorf("move source for %s: %w", e.Names[player], err)
		}
		if turn.Quit {
			log.Info().
				Str("round", e.id.String()).
				Str("player", e.Names[player]).
				Msg("player quit")
			result := e.finish(true)
			return result, nil
		}

		outcome, err := e.State.Play(turn.Pit)
		if err != nil {
			// Rejected move, nothing mutated. Sources normally pre-validate,
			// so just ask again.
			log.Warn().
				Str("round", e.id.String()).
				Str("player", e.Names[player]).
				Int("pit", turn.Pit).
				Err(err).
				Msg("move rejected")
			continue
		}

		log.Info().
			Str("round", e.id.String()).
			Str("player", e.Names[player]).
			Int("pit", outcome.Pit).
			Int("last", outcome.Last).
			Int("captured", outcome.Captured).
			Bool("extra_turn", outcome.ExtraTurn).
			Str("board", e.State.Board.String()).
			Msg("move applied")

		if e.observer != nil {
			e.observer(Update{Move: outcome, State: e.State.Copy()})
		}
	}

	return Result{}, errors.New("round did not finish within the move limit")
}

func (e *Engine) finish(quit bool) Result {
	result := Result{
		Result: e.State.Result(),
		Moves:  e.State.Moves,
		Quit:   quit,
	}
	event := log.Info().
		Str("round", e.id.String()).
		Int("score0", result.Scores[0]).
		Int("score1", result.Scores[1]).
		Bool("quit", quit)
	if result.Tie {
		event.Msg("round tied")
	} else {
		event.Str("winner", e.Names[result.Winner]).Msg("round over")
	}
	return result
}
