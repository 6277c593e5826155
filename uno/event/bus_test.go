package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

type gameOverOnly struct {
	winners []string
}

func (l *gameOverOnly) OnGameOver(payload event.GameOverPayload) {
	l.winners = append(l.winners, payload.WinnerName)
}

func TestSubscribe(t *testing.T) {
	t.Run("registers_on_every_implemented_emitter", func(t *testing.T) {
		bus := event.NewBus()
		listener := event.NewDummyListener()
		bus.Subscribe(listener)

		bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "A"})
		bus.EffectApplied.Emit(event.EffectAppliedPayload{PlayerName: "A", Effect: event.EffectSkip, TargetName: "B"})
		bus.GameOver.Emit(event.GameOverPayload{WinnerName: "A"})

		require.Equal(t, []interface{}{
			event.PlayerPassedPayload{PlayerName: "A"},
			event.EffectAppliedPayload{PlayerName: "A", Effect: event.EffectSkip, TargetName: "B"},
			event.GameOverPayload{WinnerName: "A"},
		}, listener.ReceivedPayloads())
	})

	t.Run("skips_emitters_the_listener_does_not_implement", func(t *testing.T) {
		bus := event.NewBus()
		listener := &gameOverOnly{}
		bus.Subscribe(listener)

		bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "A"})
		bus.GameOver.Emit(event.GameOverPayload{WinnerName: "B"})

		require.Equal(t, []string{"B"}, listener.winners)
	})

	t.Run("buses_are_independent", func(t *testing.T) {
		first, second := event.NewBus(), event.NewBus()
		listener := event.NewDummyListener()
		first.Subscribe(listener)

		second.GameOver.Emit(event.GameOverPayload{WinnerName: "B"})

		require.Empty(t, listener.ReceivedPayloads())
	})
}
