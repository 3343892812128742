// Package render turns immutable board snapshots into display frames.
// Rendering is pure: no terminal handle, no shared template state, the
// caller decides where a frame goes.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"mancala/game"
)

// Frame lays the board out the traditional way: player 0's row runs right
// to left above the divider with their store on the left, player 1's row
// runs left to right below it with their store on the right. The active
// player's name is marked with an asterisk.
func Frame(names [2]string, b game.Board, active int) string {
	var buf bytes.Buffer
	pad := strings.Repeat(" ", len(names[1]))

	fmt.Fprintf(&buf, "%s  f  e  d  c  b  a      %s%s\n", pad, names[0], mark(active == 0))
	fmt.Fprintf(&buf, "%s[%2d]", pad, b[game.Store0])
	for pit := game.PitsPerPlayer - 1; pit >= 0; pit-- {
		fmt.Fprintf(&buf, " %2d", b[pit])
	}
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "%s----------------------\n", pad)
	fmt.Fprintf(&buf, "%s    ", pad)
	for pit := 7; pit < 7+game.PitsPerPlayer; pit++ {
		fmt.Fprintf(&buf, " %2d", b[pit])
	}
	fmt.Fprintf(&buf, " [%2d]\n", b[game.Store1])
	fmt.Fprintf(&buf, "%s      g  h  i  j  k  l  %s%s\n", pad, names[1], mark(active == 1))

	return buf.String()
}

// ResultLine formats the end-of-round message.
func ResultLine(names [2]string, r game.Result) string {
	if r.Tie {
		return "Tie game!"
	}
	winner, loser := r.Scores[r.Winner], r.Scores[1-r.Winner]
	return fmt.Sprintf("%s wins %d to %d.", names[r.Winner], winner, loser)
}

func mark(active bool) string {
	if active {
		return " *"
	}
	return ""
}
