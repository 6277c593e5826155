package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewWildCard(card.WildColorChoice),
		},
		{
			PlayerName: "Somebody",
			Card:       card.New(color.Green, card.DrawTwo),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestFirstCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.FirstCardPlayed.AddListener(listener)

	payload := event.FirstCardPlayedPayload{PlayerName: "Someone", Card: card.NewNumberCard(color.Red, 3)}
	bus.FirstCardPlayed.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

func TestCardsDrawn(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.CardsDrawn.AddListener(listener)

	payload := event.CardsDrawnPayload{
		PlayerName: "Someone",
		Cards:      []card.Card{card.NewNumberCard(color.Blue, 1), card.New(color.Blue, card.Skip)},
	}
	bus.CardsDrawn.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}
