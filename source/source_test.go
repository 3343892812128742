package source

import (
	"testing"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestScripted(t *testing.T) {
	src := NewScripted(2, 0)
	state := game.NewGameState()

	turn, err := src.NextMove(state, 0)
	require.NoError(t, err)
	require.Equal(t, 2, turn.Pit)

	turn, err = src.NextMove(state, 0)
	require.NoError(t, err)
	require.Equal(t, 0, turn.Pit)

	_, err = src.NextMove(state, 0)
	require.ErrorContains(t, err, "exhausted")
}

func TestRandom(t *testing.T) {
	t.Run("always answers with a legal move", func(t *testing.T) {
		src := NewRandom(1)
		state := game.NewGameState()
		state.Board[1] = 0
		state.Board[4] = 0

		for i := 0; i < 50; i++ {
			turn, err := src.NextMove(state, 0)
			require.NoError(t, err)
			require.NoError(t, game.Validate(state.Board, turn.Pit, 0))
		}
	})

	t.Run("errors when the side is empty", func(t *testing.T) {
		src := NewRandom(1)
		state := game.NewGameState()
		state.Board = game.Board{0, 0, 0, 0, 0, 0, 24, 4, 4, 4, 4, 4, 4, 0}

		_, err := src.NextMove(state, 0)
		require.Error(t, err)
	})
}
