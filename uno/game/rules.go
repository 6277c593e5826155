package game

import (
	"github.com/ratel-online/uno/consts"
)

// Rules are the options fixed at game creation.
type Rules struct {
	// HandSize is the number of cards dealt to each player.
	HandSize int
	// StackDraws lets a player hit by a draw card answer with a draw card of
	// at least the same amount, passing the accumulated total on.
	StackDraws bool
	// RandomStart picks the opening player at random instead of seat 0.
	RandomStart bool
	// ColorRoulette makes the next player draw until the declared color
	// shows up after a color choice wild.
	ColorRoulette bool
	// Seed fixes the shuffle; zero uses the shared generator.
	Seed int64
}

func DefaultRules() Rules {
	return Rules{HandSize: consts.HandSize}
}

func (r Rules) validate() error {
	if r.HandSize <= 0 {
		return consts.ErrorsInvalidConfiguration
	}
	return nil
}
