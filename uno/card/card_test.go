package card_test

import (
	"encoding/json"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestIsPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		topCard        card.Card
		activeColor    color.Color
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(card.WildColorChoice),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "wild_draw_ten_is_always_playable",
			candidateCard:  card.NewWildCard(card.WildDrawTen),
			topCard:        card.New(color.Red, card.Skip),
			activeColor:    color.Red,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "action_cards_with_same_kind",
			candidateCard:  card.New(color.Red, card.PlayAllColor),
			topCard:        card.New(color.Blue, card.PlayAllColor),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_kind_and_color",
			candidateCard:  card.New(color.Red, card.Reverse),
			topCard:        card.New(color.Blue, card.DrawTwo),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "declared_color_wins_over_top_card_color",
			candidateCard:  card.NewNumberCard(color.Green, 3),
			topCard:        card.NewWildCard(card.WildColorChoice),
			activeColor:    color.Green,
			expectedResult: true,
		},
		{
			description:    "top_card_color_is_ignored_once_color_changed",
			candidateCard:  card.NewNumberCard(color.Blue, 3),
			topCard:        card.NewNumberCard(color.Blue, 8),
			activeColor:    color.Yellow,
			expectedResult: false,
		},
		{
			description:    "colored_draw_four_on_wild_draw_four_reverse_needs_color",
			candidateCard:  card.New(color.Red, card.DrawFour),
			topCard:        card.NewWildCard(card.WildDrawFourReverse),
			activeColor:    color.Green,
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := scenario.candidateCard.IsPlayable(scenario.topCard, scenario.activeColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestActions(t *testing.T) {
	t.Run("plain_number_has_no_actions", func(t *testing.T) {
		require.Empty(t, card.NewNumberCard(color.Red, 4).Actions())
	})

	t.Run("zero_rotates_and_seven_swaps", func(t *testing.T) {
		require.Equal(t, []action.Action{action.NewRotateHandsAction()}, card.NewNumberCard(color.Red, 0).Actions())
		require.Equal(t, []action.Action{action.NewSwapHandsAction()}, card.NewNumberCard(color.Red, 7).Actions())
	})

	t.Run("wild_draw_four_reverse_picks_color_first", func(t *testing.T) {
		require.Equal(t, []action.Action{
			action.NewPickColorAction(),
			action.NewReverseTurnsAction(),
			action.NewDrawCardsAction(4),
		}, card.NewWildCard(card.WildDrawFourReverse).Actions())
	})

	t.Run("draw_amounts", func(t *testing.T) {
		require.Equal(t, 2, card.DrawTwo.DrawAmount())
		require.Equal(t, 4, card.DrawFour.DrawAmount())
		require.Equal(t, 4, card.WildDrawFourReverse.DrawAmount())
		require.Equal(t, 6, card.WildDrawSix.DrawAmount())
		require.Equal(t, 10, card.WildDrawTen.DrawAmount())
		require.Equal(t, 0, card.Skip.DrawAmount())
	})
}

func TestNumberPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { card.Number(10) })
	require.NotPanics(t, func() { card.Number(9) })
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(card.New(color.Yellow, card.Skip))
	require.NoError(t, err)
	require.JSONEq(t, `{"color":"yellow","rank":"skip"}`, string(data))
}
