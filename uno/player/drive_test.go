package player_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func init() {
	ui.Delay = 0
	ui.Output = &bytes.Buffer{}
}

// firstChoice always takes the first candidate it is offered.
type firstChoice struct {
	plays    []int
	rejected []error
	unoCalls int
}

func (c *firstChoice) Play(state game.State, playable []int, drawn bool) (int, error) {
	if len(c.plays) > 0 {
		index := c.plays[0]
		c.plays = c.plays[1:]
		return index, nil
	}
	if len(playable) == 0 {
		return -1, nil
	}
	return playable[0], nil
}

func (c *firstChoice) PickColor(state game.State) (color.Color, error) {
	return color.Red, nil
}

func (c *firstChoice) PickSwapTarget(state game.State) (int, error) {
	for i, name := range state.PlayerSequence {
		if name != state.Seat {
			return i, nil
		}
	}
	return 0, nil
}

func (c *firstChoice) Counter(state game.State, counters []int) (int, error) {
	return -1, nil
}

func (c *firstChoice) Reject(err error) {
	c.rejected = append(c.rejected, err)
}

func (c *firstChoice) CallUno(state game.State) (bool, error) {
	c.unoCalls++
	return true, nil
}

func fixedGame(t *testing.T, hands ...[]card.Card) *game.Game {
	var cards []card.Card
	for _, hand := range hands {
		cards = append(cards, hand...)
	}
	cards = append(cards, card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Yellow, 2))

	names := []string{"Ben", "Alex", "Fred"}[:len(hands)]
	g, err := game.NewWithDeck(names, game.Rules{HandSize: len(hands[0])}, func() *game.Deck {
		return game.NewDeckOf(cards)
	})
	require.NoError(t, err)
	_, err = g.Start()
	require.NoError(t, err)
	return g
}

func TestDrive(t *testing.T) {
	t.Run("plays_until_a_winner", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 9)},
			[]card.Card{card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Blue, 1)},
		)
		ben, alex := &firstChoice{}, &firstChoice{}

		winner, err := player.Drive(context.Background(), g, []player.Controller{ben, alex})
		require.NoError(t, err)
		require.Equal(t, 0, winner)
		require.Equal(t, 1, alex.unoCalls)
		require.Equal(t, 1, ben.unoCalls)
	})

	t.Run("refused_moves_go_back_to_the_controller", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 9)},
			[]card.Card{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Red, 3)},
		)
		ben, alex := &firstChoice{}, &firstChoice{plays: []int{0}}

		winner, err := player.Drive(context.Background(), g, []player.Controller{ben, alex})
		require.NoError(t, err)
		require.Equal(t, 0, winner)
		require.Equal(t, []error{consts.ErrorsIllegalMove}, alex.rejected)
	})

	t.Run("exit_stops_the_loop", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 9)},
			[]card.Card{card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Blue, 1)},
		)
		ui.SetInput(strings.NewReader("exit\n"))

		_, err := player.Drive(context.Background(), g, []player.Controller{player.NewHumanPlayer("Ben"), &firstChoice{}})
		require.Equal(t, consts.ErrorsExist, err)
	})

	t.Run("context_cancels", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 9)},
			[]card.Card{card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Blue, 1)},
		)
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		<-ctx.Done()

		_, err := player.Drive(ctx, g, []player.Controller{&firstChoice{}, &firstChoice{}})
		require.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("stops_when_the_deck_is_empty_and_nobody_plays", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 9)},
			[]card.Card{card.NewNumberCard(color.Green, 3), card.NewNumberCard(color.Yellow, 6)},
		)

		winner, err := player.Drive(context.Background(), g, []player.Controller{&firstChoice{}, &firstChoice{}})
		require.Equal(t, consts.ErrorsStalled, err)
		require.Equal(t, -1, winner)
		require.Equal(t, 0, g.DeckSize())
		require.Equal(t, 1, g.DiscardSize())
		require.Equal(t, game.PhaseAwaitingPlay, g.Phase())
	})

	t.Run("black_opening_hand_draws", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewWildCard(card.WildColorChoice)},
			[]card.Card{card.NewNumberCard(color.Red, 3)},
		)
		ben, alex := &firstChoice{}, &firstChoice{}

		winner, err := player.Drive(context.Background(), g, []player.Controller{ben, alex})
		require.NoError(t, err)
		require.Equal(t, 0, winner)
		require.Empty(t, ben.rejected)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Yellow, 2)}, g.HandOf(1))
	})

	t.Run("controllers_must_match_seats", func(t *testing.T) {
		g := fixedGame(t,
			[]card.Card{card.NewNumberCard(color.Red, 5)},
			[]card.Card{card.NewNumberCard(color.Red, 3)},
		)
		_, err := player.Drive(context.Background(), g, []player.Controller{&firstChoice{}})
		require.Equal(t, consts.ErrorsInvalidConfiguration, err)
	})
}

func TestDriveSeededGames(t *testing.T) {
	for _, seed := range []int64{3, 11, 2022} {
		rules := game.DefaultRules()
		rules.Seed = seed
		rules.StackDraws = true
		g, err := game.New([]string{"Ben", "Alex", "Fred"}, rules)
		require.NoError(t, err)
		_, err = g.Start()
		require.NoError(t, err)

		winner, err := player.Drive(context.Background(), g, []player.Controller{&firstChoice{}, &firstChoice{}, &firstChoice{}})
		if err != nil {
			// the deck can run dry with nobody able to play
			require.Equal(t, consts.ErrorsStalled, err)
			require.Equal(t, 0, g.DeckSize())
			continue
		}
		require.Equal(t, g.Winner(), winner)
		require.Equal(t, game.PhaseGameOver, g.Phase())
	}
}
