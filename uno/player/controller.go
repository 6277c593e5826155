package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Controller makes the decisions of one seat.
type Controller interface {
	// Play returns a hand index out of playable, or -1 to draw. With drawn set
	// the only candidate is the card just drawn and -1 keeps it.
	Play(state game.State, playable []int, drawn bool) (int, error)
	PickColor(state game.State) (color.Color, error)
	PickSwapTarget(state game.State) (int, error)
	// Counter returns a hand index out of counters, or -1 to take the cards.
	Counter(state game.State, counters []int) (int, error)
	// Reject reports a decision the game refused.
	Reject(err error)
}

// UnoCaller is implemented by controllers that declare their last card.
type UnoCaller interface {
	CallUno(state game.State) (bool, error)
}
