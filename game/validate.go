package game

import "errors"

// Move rejections. All are recoverable: the caller may re-prompt and try
// again, nothing on the board has changed.
var (
	ErrStoreNotSelectable = errors.New("stores cannot be played from")
	ErrNotYourPit         = errors.New("pit belongs to the other player")
	ErrEmptyPit           = errors.New("pit is empty")
)

// Validate checks whether the player may sow from the pit. It is a pure
// query over the board and never mutates it, so an input layer can call it
// repeatedly while re-prompting.
func Validate(b Board, pit, player int) error {
	if pit == Store0 || pit == Store1 {
		return ErrStoreNotSelectable
	}
	if !OwnsSlot(pit, player) {
		return ErrNotYourPit
	}
	if b[pit] == 0 {
		return ErrEmptyPit
	}
	return nil
}
