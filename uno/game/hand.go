package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) At(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(top card.Card, active color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if candidateCard.IsPlayable(top, active) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveAt keeps the order of the remaining cards.
func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	removed, ok := h.At(index)
	if !ok {
		return removed, false
	}
	h.cards = append(h.cards[:index:index], h.cards[index+1:]...)
	return removed, true
}

// Replace swaps in a new set of cards and returns the previous ones.
func (h *Hand) Replace(cards []card.Card) []card.Card {
	previous := h.cards
	h.cards = cards
	if h.cards == nil {
		h.cards = make([]card.Card, 0, 7)
	}
	return previous
}

// TakeColor removes every card of c, in hand order.
func (h *Hand) TakeColor(c color.Color) []card.Card {
	taken := make([]card.Card, 0)
	kept := make([]card.Card, 0, len(h.cards))
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c {
			taken = append(taken, cardInHand)
		} else {
			kept = append(kept, cardInHand)
		}
	}
	h.cards = kept
	return taken
}

func (h *Hand) Size() int {
	return len(h.cards)
}
