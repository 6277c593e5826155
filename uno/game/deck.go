package game

import (
	"math/rand"

	randx "github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile; the front of the slice is drawn first.
type Deck struct {
	cards []card.Card
}

// NewDeck builds the full, unshuffled deck.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Playable {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	return &Deck{cards: cards}
}

// NewDeckOf keeps the given order.
func NewDeckOf(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Draw returns fewer cards than asked when the deck runs short.
func (d *Deck) Draw(amount int) []card.Card {
	if amount <= 0 {
		return []card.Card{}
	}
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// Shuffle permutes the deck in place with Fisher-Yates. A nil source falls
// back to the shared random generator.
func (d *Deck) Shuffle(r *rand.Rand) {
	intn := randx.Intn
	if r != nil {
		intn = r.Intn
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	for _, rank := range []card.Rank{card.Skip, card.Reverse, card.PlayAllColor} {
		actionCard := card.New(cardColor, rank)
		cards = append(cards, actionCard, actionCard, actionCard)
	}
	for _, rank := range []card.Rank{card.DrawTwo, card.DrawFour, card.PlayAgain} {
		actionCard := card.New(cardColor, rank)
		cards = append(cards, actionCard, actionCard)
	}
	return cards
}

func createWildCards() []card.Card {
	wildCounts := []struct {
		rank  card.Rank
		count int
	}{
		{card.WildColorChoice, 8},
		{card.WildDrawFourReverse, 8},
		{card.WildDrawSix, 4},
		{card.WildDrawTen, 4},
	}

	cards := make([]card.Card, 0, 24)
	for _, wild := range wildCounts {
		for i := 0; i < wild.count; i++ {
			cards = append(cards, card.NewWildCard(wild.rank))
		}
	}
	return cards
}
