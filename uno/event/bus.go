package event

// Bus holds the emitters of a single game.
type Bus struct {
	FirstCardPlayed *firstCardPlayedEmitter
	CardPlayed      *cardPlayedEmitter
	ColorPicked     *colorPickedEmitter
	PlayerPassed    *playerPassedEmitter
	CardsDrawn      *cardsDrawnEmitter
	EffectApplied   *effectAppliedEmitter
	GameOver        *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardPlayed:      &cardPlayedEmitter{},
		ColorPicked:     &colorPickedEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		CardsDrawn:      &cardsDrawnEmitter{},
		EffectApplied:   &effectAppliedEmitter{},
		GameOver:        &gameOverEmitter{},
	}
}

// Subscribe registers listener on every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(EffectAppliedListener); ok {
		b.EffectApplied.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
	}
}
