package event

type Effect string

const (
	EffectSkip         Effect = "skip"
	EffectReverse      Effect = "reverse"
	EffectRotateHands  Effect = "rotate_hands"
	EffectSwapHands    Effect = "swap_hands"
	EffectPlayAllColor Effect = "play_all_color"
	EffectRedeal       Effect = "redeal"
	EffectRoulette     Effect = "color_roulette"
	EffectDrawStacked  Effect = "draw_stacked"
)

type EffectAppliedPayload struct {
	PlayerName string
	Effect     Effect
	// TargetName is set for effects aimed at another player.
	TargetName string
}

type EffectAppliedListener interface {
	OnEffectApplied(EffectAppliedPayload)
}

type effectAppliedEmitter struct {
	listeners []EffectAppliedListener
}

func (e *effectAppliedEmitter) AddListener(listener EffectAppliedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *effectAppliedEmitter) Emit(payload EffectAppliedPayload) {
	for _, listener := range e.listeners {
		listener.OnEffectApplied(payload)
	}
}
