package game

// Capture applies the single-seed capture rule after a sow ending at slot
// last. It triggers only when last is one of the player's own pits (not
// their store) holding exactly one seed, i.e. it was empty before the final
// seed landed. The player's store then receives that seed plus everything
// in the directly opposite pit, and both pits are emptied.
//
// Returns the number of seeds captured, zero when the rule does not apply.
func (b *Board) Capture(last, player int) int {
	store := StoreIndex(player)
	if last == store || !OwnsSlot(last, player) {
		return 0
	}
	if b[last] != 1 {
		return 0
	}
	opposite := Opposite(last)
	captured := b[opposite] + b[last]
	b[store] += captured
	b[opposite] = 0
	b[last] = 0
	return captured
}
