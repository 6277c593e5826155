package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(playerName string, card card.Card) string {
	return Sprintfln("%s opened with %s", playerName, card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) string {
	return Sprintlns([]string{
		Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard),
		Sprintf("Your hand is %s", hand),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerMustCounter(playerName string, pending int) string {
	return Sprintfln("%s, %d card(s) are coming your way!", playerName, pending)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	switch len(cards) {
	case 0:
		return Sprintfln("%s could not draw, the deck is empty!", playerName)
	case 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return Sprintfln("%s calls %s!", playerName, color.Red.Paint("UNO"))
}

func (m MessageWriter) EffectApplied(payload event.EffectAppliedPayload) string {
	switch payload.Effect {
	case event.EffectSkip:
		return Sprintfln("%s's turn skipped!", payload.TargetName)
	case event.EffectReverse:
		return Sprintln("Turn order has been reversed!")
	case event.EffectRotateHands:
		return Sprintln("Every hand moves one seat!")
	case event.EffectSwapHands:
		return Sprintfln("%s swapped hands with %s!", payload.PlayerName, payload.TargetName)
	case event.EffectPlayAllColor:
		return Sprintfln("%s dumped every card of the color in play!", payload.PlayerName)
	case event.EffectRedeal:
		return Sprintfln("%s starts it all over, new cards for everyone!", payload.PlayerName)
	case event.EffectRoulette:
		return Sprintfln("%s spins the color roulette!", payload.TargetName)
	case event.EffectDrawStacked:
		return Sprintfln("%s stacks the draw!", payload.PlayerName)
	default:
		return Sprintfln("%s: %s", payload.PlayerName, payload.Effect)
	}
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) NoWinner() string {
	return Sprintfln("The deck is empty and nobody can play, the game ends without a winner.")
}

func (m MessageWriter) HumanPlayerCannotOpen(playerName string, hand []card.Card) string {
	return Sprintlns([]string{
		Sprintf("%s, black cards can not open the game!", playerName),
		Sprintf("Your hand is %s", hand),
	})
}
