package player

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// Announcer narrates the table to the terminal.
type Announcer struct{}

func NewAnnouncer(bus *event.Bus) Announcer {
	announcer := Announcer{}
	bus.Subscribe(announcer)
	return announcer
}

func (a Announcer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	ui.Print(msg.Message.FirstCardPlayed(payload.PlayerName, payload.Card))
}

func (a Announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	ui.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (a Announcer) OnColorPicked(payload event.ColorPickedPayload) {
	ui.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (a Announcer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	ui.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (a Announcer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	ui.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (a Announcer) OnEffectApplied(payload event.EffectAppliedPayload) {
	ui.Print(msg.Message.EffectApplied(payload))
}

func (a Announcer) OnGameOver(payload event.GameOverPayload) {
	ui.Print(msg.Message.WinnerFound(payload.WinnerName))
}
