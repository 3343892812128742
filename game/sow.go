package game

// Sow picks up every seed in the pit and drops them one at a time into the
// following slots in circular order. The opponent's store is skipped: it
// receives nothing and costs no seed, the lap is simply one slot longer.
//
// It returns the slot that received the final seed plus the ordered list of
// slots seeded, so an animation layer can replay the exact drop sequence.
// The pit must be non-empty; callers go through Validate first.
func (b *Board) Sow(pit, player int) (last int, path []int) {
	seeds := b[pit]
	b[pit] = 0

	skip := StoreIndex(1 - player)
	path = make([]int, 0, seeds)
	slot := pit
	for placed := 0; placed < seeds; {
		slot = (slot + 1) % SlotCount
		if slot == skip {
			// virtual pass over the opponent's store
			continue
		}
		b[slot]++
		path = append(path, slot)
		placed++
	}
	return slot, path
}
