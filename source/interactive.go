package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mancala/engine"
	"mancala/game"
)

// pitLetters maps user-facing pit labels onto board indexes: the position
// of a letter in the string is its slot index. The stores at 6 and 13 have
// no letter and cannot be selected.
const pitLetters = "abcdef.ghijkl"

// Interactive reads pit selections line by line, re-prompting until the
// input names a pit the player may actually sow from. Entering "q" (or
// closing the input) quits cooperatively; the engine decides what happens
// next, the source never exits the process.
type Interactive struct {
	scanner *bufio.Scanner
	out     io.Writer
	names   [2]string
}

func NewInteractive(in io.Reader, out io.Writer, names [2]string) *Interactive {
	return &Interactive{
		scanner: bufio.NewScanner(in),
		out:     out,
		names:   names,
	}
}

func (s *Interactive) NextMove(state *game.GameState, player int) (engine.TurnResult, error) {
	for {
		fmt.Fprintf(s.out, "%s, select one of your pits that is not empty (or enter q to quit): ", s.names[player])
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return engine.TurnResult{}, err
			}
			// input closed, same as quitting
			return engine.TurnResult{Quit: true}, nil
		}
		line := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
		if line == "q" {
			return engine.TurnResult{Quit: true}, nil
		}

		pit, err := ParsePit(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if err := game.Validate(state.Board, pit, player); err != nil {
			fmt.Fprintln(s.out, rejection(err))
			continue
		}
		return engine.TurnResult{Pit: pit}, nil
	}
}

// ParsePit translates a pit letter (a-f for player 0, g-l for player 1)
// into a board index.
func ParsePit(s string) (int, error) {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, errors.New("please enter a single letter")
	}
	pit := strings.IndexByte(pitLetters, s[0])
	if pit < 0 {
		return 0, errors.New("please enter a letter corresponding to one of your non-empty pits")
	}
	return pit, nil
}

func rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrStoreNotSelectable):
		return "Sorry, you can't select the store."
	case errors.Is(err, game.ErrNotYourPit):
		return "Sorry, you don't control that pit."
	case errors.Is(err, game.ErrEmptyPit):
		return "Sorry, that pit is empty."
	default:
		return err.Error()
	}
}
