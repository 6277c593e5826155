package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type humanPlayer struct {
	name string
}

func NewHumanPlayer(name string) Controller {
	return humanPlayer{name: name}
}

func (p humanPlayer) Play(state game.State, playable []int, drawn bool) (int, error) {
	if drawn {
		ui.Print(msg.Message.HumanPlayerDrewCards(pick(state.CurrentPlayerHand, playable)))
		return p.selectCard(state, playable, "keep it")
	}

	ui.Print(msg.Message.HumanPlayerTurnStarted(p.name))
	ui.Println(state)
	if len(playable) == 0 {
		if state.LastPlayedCard == nil {
			ui.Print(msg.Message.HumanPlayerCannotOpen(p.name, state.CurrentPlayerHand))
		} else {
			ui.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, *state.LastPlayedCard, state.CurrentPlayerHand))
		}
		return -1, nil
	}
	if state.LastPlayedCard == nil {
		return p.selectCard(state, playable, "")
	}
	return p.selectCard(state, playable, "draw a card")
}

func (p humanPlayer) PickColor(state game.State) (color.Color, error) {
	return ui.PromptColor()
}

func (p humanPlayer) PickSwapTarget(state game.State) (int, error) {
	return ui.PromptSeat(state.PlayerSequence, seatOf(state))
}

func (p humanPlayer) Counter(state game.State, counters []int) (int, error) {
	ui.Print(msg.Message.HumanPlayerMustCounter(p.name, state.PendingDraw))
	return p.selectCard(state, counters, "take the cards")
}

func (p humanPlayer) CallUno(state game.State) (bool, error) {
	return ui.PromptConfirm("One card left, call UNO?")
}

func (p humanPlayer) Reject(err error) {
	ui.Println(err)
}

func (p humanPlayer) selectCard(state game.State, candidates []int, passOption string) (int, error) {
	selected, err := ui.PromptCardSelection("Select a card to play:", pick(state.CurrentPlayerHand, candidates), passOption)
	if err != nil || selected < 0 {
		return -1, err
	}
	return candidates[selected], nil
}

func pick(hand []card.Card, indexes []int) []card.Card {
	cards := make([]card.Card, 0, len(indexes))
	for _, index := range indexes {
		cards = append(cards, hand[index])
	}
	return cards
}

func seatOf(state game.State) int {
	for i, name := range state.PlayerSequence {
		if name == state.Seat {
			return i
		}
	}
	return -1
}
