package game

import (
	"bytes"
	"fmt"
)

// Board layout: slots 0-5 are player 0's pits, slot 6 is player 0's store,
// slots 7-12 are player 1's pits, slot 13 is player 1's store.
const (
	PitsPerPlayer = 6
	SlotCount     = 14
	SeedsPerPit   = 4
	Store0        = 6
	Store1        = 13
	TotalSeeds    = 48
)

// Board holds the seed count of every slot, stores included. Seeds are only
// ever moved between slots, so the total stays at TotalSeeds for the whole
// round.
type Board [SlotCount]int

// NewBoard returns the canonical starting board: four seeds in every pit,
// empty stores.
func NewBoard() Board {
	var b Board
	for player := 0; player < 2; player++ {
		for pit := 0; pit < PitsPerPlayer; pit++ {
			b[player*7+pit] = SeedsPerPit
		}
	}
	return b
}

// StoreIndex returns the store slot of the given player.
func StoreIndex(player int) int {
	return player*7 + 6
}

// OwnsSlot reports whether the slot (pit or store) belongs to the player.
// Ownership is positional: player i owns slots i*7 through i*7+6.
func OwnsSlot(slot, player int) bool {
	return player*7 <= slot && slot <= player*7+6
}

// Opposite returns the pit directly across the board. Only meaningful for
// pit indexes, never stores.
func Opposite(pit int) int {
	return 12 - pit
}

// PitSum returns the number of seeds left in the player's six pits. The
// store is excluded; a player whose PitSum is zero ends the round.
func (b Board) PitSum(player int) int {
	sum := 0
	for pit := player * 7; pit < player*7+PitsPerPlayer; pit++ {
		sum += b[pit]
	}
	return sum
}

// Total returns the seed count across all 14 slots.
func (b Board) Total() int {
	sum := 0
	for _, seeds := range b {
		sum += seeds
	}
	return sum
}

// String renders the board on one line for logging, stores bracketed:
// "4 4 4 4 4 4 [0] 4 4 4 4 4 4 [0]".
func (b Board) String() string {
	var buf bytes.Buffer
	for slot, seeds := range b {
		if slot > 0 {
			buf.WriteByte(' ')
		}
		if slot == Store0 || slot == Store1 {
			fmt.Fprintf(&buf, "[%d]", seeds)
		} else {
			fmt.Fprintf(&buf, "%d", seeds)
		}
	}
	return buf.String()
}
