package render

import (
	"strings"
	"testing"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	names := [2]string{"Ada", "Bea"}

	t.Run("initial board", func(t *testing.T) {
		frame := Frame(names, game.NewBoard(), 0)

		require.Contains(t, frame, "Ada *")
		require.NotContains(t, frame, "Bea *")
		require.Contains(t, frame, "[ 0]  4  4  4  4  4  4")
		require.Contains(t, frame, " 4  4  4  4  4  4 [ 0]")
	})

	t.Run("marks the active player", func(t *testing.T) {
		frame := Frame(names, game.NewBoard(), 1)
		require.Contains(t, frame, "Bea *")
		require.NotContains(t, frame, "Ada *")
	})

	t.Run("pure over its inputs", func(t *testing.T) {
		b := game.NewBoard()
		first := Frame(names, b, 0)
		second := Frame(names, b, 0)
		require.Equal(t, first, second)
		require.Equal(t, game.NewBoard(), b)
	})

	t.Run("rows follow board orientation", func(t *testing.T) {
		var b game.Board
		for slot := range b {
			b[slot] = slot
		}
		frame := Frame(names, b, 0)
		lines := strings.Split(frame, "\n")

		// player 0 row: store then pits f..a; player 1 row: pits g..l then store
		require.Contains(t, lines[1], "[ 6]  5  4  3  2  1  0")
		require.Contains(t, lines[3], " 7  8  9 10 11 12 [13]")
	})
}

func TestResultLine(t *testing.T) {
	names := [2]string{"Ada", "Bea"}

	require.Equal(t, "Bea wins 26 to 22.",
		ResultLine(names, game.Result{Scores: [2]int{22, 26}, Winner: 1}))
	require.Equal(t, "Ada wins 25 to 23.",
		ResultLine(names, game.Result{Scores: [2]int{25, 23}, Winner: 0}))
	require.Equal(t, "Tie game!",
		ResultLine(names, game.Result{Scores: [2]int{24, 24}, Winner: -1, Tie: true}))
}
