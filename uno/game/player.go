package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Player struct {
	name      string
	hand      *Hand
	unoCalled bool
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

// Draw moves up to amount cards from the deck into the hand and returns them.
func (p *Player) Draw(deck *Deck, amount int) []card.Card {
	cards := deck.Draw(amount)
	if len(cards) > 0 {
		p.hand.AddCards(cards)
		p.unoCalled = false
	}
	return cards
}

// Play removes the card at index when it is playable; the hand is untouched otherwise.
func (p *Player) Play(index int, top card.Card, active color.Color) (card.Card, bool) {
	candidate, ok := p.hand.At(index)
	if !ok || !candidate.IsPlayable(top, active) {
		return card.Card{}, false
	}
	return p.hand.RemoveAt(index)
}

func (p *Player) HasValidMove(top card.Card, active color.Color) bool {
	return len(p.hand.PlayableCards(top, active)) > 0
}

// canCounter reports whether the hand holds a draw card forcing at least amount.
func (p *Player) canCounter(amount int) bool {
	for _, c := range p.hand.cards {
		if c.Rank().DrawAmount() >= amount {
			return true
		}
	}
	return false
}
