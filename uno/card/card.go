package card

import (
	"fmt"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Rank is either a number 0-9 or one of the action kinds below.
type Rank int

const (
	Skip Rank = 10 + iota
	Reverse
	DrawTwo
	DrawFour
	PlayAllColor
	PlayAgain
	WildColorChoice
	WildDrawFourReverse
	WildDrawSix
	WildDrawTen
)

// SwapNumber is the number card that swaps hands.
const SwapNumber = 7

// RotateNumber is the number card that rotates hands.
const RotateNumber = 0

var rankNames = map[Rank]string{
	Skip:                "skip",
	Reverse:             "reverse",
	DrawTwo:             "+2",
	DrawFour:            "+4",
	PlayAllColor:        "play-all",
	PlayAgain:           "play-again",
	WildColorChoice:     "color-choice",
	WildDrawFourReverse: "+4-reverse",
	WildDrawSix:         "+6",
	WildDrawTen:         "+10",
}

func Number(n int) Rank {
	if n < 0 || n > 9 {
		panic(fmt.Sprintf("card number out of range: %d", n))
	}
	return Rank(n)
}

func (r Rank) IsNumber() bool {
	return r >= 0 && r <= 9
}

func (r Rank) String() string {
	if r.IsNumber() {
		return fmt.Sprintf("%d", int(r))
	}
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", int(r))
}

// DrawAmount is the number of cards a draw rank forces, 0 otherwise.
func (r Rank) DrawAmount() int {
	switch r {
	case DrawTwo:
		return 2
	case DrawFour, WildDrawFourReverse:
		return 4
	case WildDrawSix:
		return 6
	case WildDrawTen:
		return 10
	default:
		return 0
	}
}

type Card struct {
	color color.Color
	rank  Rank
}

func New(c color.Color, rank Rank) Card {
	return Card{color: c, rank: rank}
}

func NewNumberCard(c color.Color, number int) Card {
	return New(c, Number(number))
}

func NewWildCard(rank Rank) Card {
	return New(color.Wild, rank)
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Wild() bool {
	return c.color == color.Wild
}

// Actions lists the effects of the card in the order they resolve.
func (c Card) Actions() []action.Action {
	switch c.rank {
	case Number(RotateNumber):
		return []action.Action{action.NewRotateHandsAction()}
	case Number(SwapNumber):
		return []action.Action{action.NewSwapHandsAction()}
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo, DrawFour:
		return []action.Action{action.NewDrawCardsAction(c.rank.DrawAmount())}
	case PlayAllColor:
		return []action.Action{action.NewPlayAllColorAction()}
	case PlayAgain:
		return []action.Action{action.NewRedealAction()}
	case WildColorChoice:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFourReverse:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewReverseTurnsAction(),
			action.NewDrawCardsAction(4),
		}
	case WildDrawSix, WildDrawTen:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(c.rank.DrawAmount()),
		}
	default:
		return []action.Action{}
	}
}

// IsPlayable matches against the color in effect rather than the top card's
// own color, so a declared wild color is honored.
func (c Card) IsPlayable(top Card, active color.Color) bool {
	if c.Wild() {
		return true
	}
	return c.color == active || c.rank == top.rank
}

func (c Card) String() string {
	return c.color.Paintf("[%s]", c.rank) + fmt.Sprintf("(%s)", c.color.Name())
}

type cardView struct {
	Color string `json:"color"`
	Rank  string `json:"rank"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardView{Color: c.color.Name(), Rank: c.rank.String()}), nil
}
