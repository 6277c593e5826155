package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// resolvePlay puts a card that already left actor's hand on the pile and
// applies it.
func (g *Game) resolvePlay(actor int, played card.Card) {
	g.pile.Add(played)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: g.players[actor].name,
		Card:       played,
	})
	if !played.Wild() {
		g.activeColor = played.Color()
	}
	g.phase = PhaseAwaitingPlay
	if g.players[actor].NoCards() {
		g.finish(actor)
		return
	}
	g.resolve(actor, played, played.Actions())
}

// resolve applies actions in order. It stops at the first action needing a
// decision and keeps the rest for later.
func (g *Game) resolve(actor int, played card.Card, actions []action.Action) {
	steps := 1
	for i, cardAction := range actions {
		switch cardAction := cardAction.(type) {
		case action.PickColorAction:
			g.pending = pending{actor: actor, card: played, actions: actions[i+1:]}
			g.phase = PhaseAwaitingColor
			return
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
			g.effect(actor, event.EffectReverse, -1)
			if len(g.players) == 2 && played.Rank() == card.Reverse {
				steps = 2
			}
		case action.SkipTurnAction:
			g.effect(actor, event.EffectSkip, g.cycler.Peek(1))
			steps = 2
		case action.DrawCardsAction:
			if g.stackDraw(cardAction.Amount()) {
				return
			}
			steps = 2
		case action.RotateHandsAction:
			g.rotateHands(actor)
		case action.SwapHandsAction:
			g.pending = pending{actor: actor, card: played}
			g.phase = PhaseAwaitingSwapTarget
			return
		case action.PlayAllColorAction:
			if g.playAllColor(actor) {
				return
			}
		case action.RedealAction:
			g.redeal(actor)
		}
	}
	g.cycler.Advance(steps)
}

// stackDraw hits the next player with amount cards on top of any pending
// total. It reports true when the victim is given the chance to counter.
func (g *Game) stackDraw(amount int) bool {
	victim := g.cycler.Peek(1)
	total := g.stack + amount
	if g.rules.StackDraws && g.players[victim].canCounter(amount) {
		g.stack = total
		g.threshold = amount
		g.cycler.Set(victim)
		g.phase = PhaseAwaitingCounter
		return true
	}
	g.stack, g.threshold = 0, 0
	g.forceDraw(victim, total)
	return false
}

// rotateHands moves every hand one seat against the direction of play.
func (g *Game) rotateHands(actor int) {
	hands := make([][]card.Card, len(g.players))
	for i, player := range g.players {
		hands[i] = player.hand.Cards()
	}
	for i, player := range g.players {
		player.hand.Replace(hands[g.cycler.from(i, 1)])
	}
	g.effect(actor, event.EffectRotateHands, -1)
}

func (g *Game) swapHands(actor int, target int) {
	actorHand := g.players[actor].hand.Cards()
	targetHand := g.players[target].hand.Replace(actorHand)
	g.players[actor].hand.Replace(targetHand)
	g.effect(actor, event.EffectSwapHands, target)
}

// playAllColor discards every card of the color in effect. It reports true
// when that empties the hand.
func (g *Game) playAllColor(actor int) bool {
	player := g.players[actor]
	taken := player.hand.TakeColor(g.activeColor)
	g.pile.Add(taken...)
	g.effect(actor, event.EffectPlayAllColor, -1)
	if player.NoCards() {
		g.finish(actor)
		return true
	}
	return false
}

// redeal starts over with a fresh deck; the next player places a new
// starting card.
func (g *Game) redeal(actor int) {
	g.deck = g.newDeck()
	g.pile = NewPile()
	g.activeColor = color.None
	g.stack, g.threshold = 0, 0
	g.deal()
	g.effect(actor, event.EffectRedeal, -1)
	log.Infof("%s redealt the cards\n", g.players[actor].name)
}

// roulette makes the next player draw until a card of the color in effect
// comes up, or the deck runs out.
func (g *Game) roulette(actor int) {
	victim := g.cycler.Peek(1)
	g.effect(actor, event.EffectRoulette, victim)

	drawn := make([]card.Card, 0)
	for {
		cards := g.players[victim].Draw(g.deck, 1)
		if len(cards) == 0 {
			break
		}
		drawn = append(drawn, cards...)
		if cards[0].Color() == g.activeColor {
			break
		}
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: g.players[victim].name,
		Cards:      drawn,
	})
	g.cycler.Advance(2)
}

func (g *Game) effect(actor int, effect event.Effect, target int) {
	payload := event.EffectAppliedPayload{
		PlayerName: g.players[actor].name,
		Effect:     effect,
	}
	if target >= 0 {
		payload.TargetName = g.players[target].name
	}
	g.events.EffectApplied.Emit(payload)
}
