package player

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// Drive asks each seat's controller for decisions until the game is over and
// returns the winner. Refused decisions go back to the controller; errors
// flagged Exit, or any other controller error, end the loop. Once the deck is
// empty and a full round passes without a card played, Drive returns
// consts.ErrorsStalled.
func Drive(ctx context.Context, g *game.Game, controllers []Controller) (int, error) {
	if len(controllers) != len(g.PlayerNames()) {
		return -1, consts.ErrorsInvalidConfiguration
	}
	if g.Phase() == game.PhaseSetup {
		return -1, consts.ErrorsInvalidState
	}
	passes := 0
	for g.Phase() != game.PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		seat := g.CurrentPlayer()
		phase, discard := g.Phase(), g.DiscardSize()
		err := step(g, seat, controllers[seat])
		if err == nil {
			passes = countPasses(g, phase, discard, passes)
			if passes >= len(controllers) {
				log.Infof("deck is empty and nobody played for %d turns\n", passes)
				return -1, consts.ErrorsStalled
			}
			continue
		}
		if e, ok := err.(consts.Error); ok && !e.Exit {
			controllers[seat].Reject(err)
			continue
		}
		return -1, err
	}
	return g.Winner(), nil
}

func step(g *game.Game, seat int, controller Controller) error {
	state := g.State(seat)
	switch g.Phase() {
	case game.PhaseAwaitingPlay, game.PhaseAwaitingDrawnCard:
		drawn := g.Phase() == game.PhaseAwaitingDrawnCard
		index, err := controller.Play(state, g.PlayableIndexes(seat), drawn)
		if err != nil {
			return err
		}
		switch {
		case index >= 0:
			_, err = g.SubmitPlay(seat, index)
		case drawn:
			_, err = g.Pass(seat)
		default:
			_, err = g.Draw(seat)
		}
		if err != nil {
			return err
		}
		return callUno(g, seat, controller)
	case game.PhaseAwaitingColor:
		chosen, err := controller.PickColor(state)
		if err != nil {
			return err
		}
		_, err = g.SubmitColorChoice(seat, chosen)
		return err
	case game.PhaseAwaitingSwapTarget:
		target, err := controller.PickSwapTarget(state)
		if err != nil {
			return err
		}
		_, err = g.SubmitSwapTarget(seat, target)
		return err
	case game.PhaseAwaitingCounter:
		index, err := controller.Counter(state, g.PlayableIndexes(seat))
		if err != nil {
			return err
		}
		_, err = g.SubmitCounterDecision(seat, index >= 0, index)
		return err
	default:
		log.Errorf("unexpected phase %s\n", g.Phase())
		return consts.ErrorsInvalidState
	}
}

// countPasses tracks consecutive turns that ended with an empty deck and
// nothing new on the discard pile.
func countPasses(g *game.Game, phase game.Phase, discard int, passes int) int {
	if g.DeckSize() > 0 || g.DiscardSize() != discard {
		return 0
	}
	if phase == game.PhaseAwaitingPlay || phase == game.PhaseAwaitingCounter {
		return passes + 1
	}
	return passes
}

func callUno(g *game.Game, seat int, controller Controller) error {
	caller, ok := controller.(UnoCaller)
	if !ok || !g.MissedUno(seat) || g.Phase() == game.PhaseGameOver {
		return nil
	}
	called, err := caller.CallUno(g.State(seat))
	if err != nil || !called {
		return err
	}
	if err := g.CallUno(seat); err != nil {
		return err
	}
	ui.Print(msg.Message.PlayerCalledUno(g.PlayerNames()[seat]))
	return nil
}
