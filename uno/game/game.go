package game

import (
	"math/rand"
	"strings"

	"github.com/ratel-online/core/log"
	randx "github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// DeckFactory builds the deck for a deal.
type DeckFactory func() *Deck

// Game is a single match. It is not safe for concurrent use; hosts serialize
// calls per game.
type Game struct {
	players []*Player
	cycler  *Cycler
	deck    *Deck
	pile    *Pile
	rules   Rules
	rng     *rand.Rand
	events  *event.Bus

	newDeck DeckFactory
	shuffle bool

	phase       Phase
	activeColor color.Color
	winner      int

	// suspended card resolution, set while a decision is awaited
	pending pending
	// accumulated draw total and the minimum a counter must force
	stack     int
	threshold int
	// hand index of the card drawn in PhaseAwaitingDrawnCard
	drawn int
}

type pending struct {
	actor   int
	card    card.Card
	actions []action.Action
}

// New creates a game for the named players, seated in order.
func New(names []string, rules Rules) (*Game, error) {
	g, err := newGame(names, rules, NewDeck)
	if err != nil {
		return nil, err
	}
	g.shuffle = true
	return g, nil
}

// NewWithDeck creates a game whose deals use decks from newDeck as they are,
// without shuffling.
func NewWithDeck(names []string, rules Rules, newDeck DeckFactory) (*Game, error) {
	if newDeck == nil {
		return nil, consts.ErrorsInvalidConfiguration
	}
	return newGame(names, rules, newDeck)
}

func newGame(names []string, rules Rules, newDeck DeckFactory) (*Game, error) {
	if len(names) < consts.MinPlayers {
		return nil, consts.ErrorsPlayersTooFew
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return nil, consts.ErrorsPlayerNameInvalid
		}
		seen[name] = true
		players = append(players, NewPlayer(name))
	}

	g := &Game{
		players: players,
		cycler:  NewCycler(len(players)),
		deck:    newDeck(),
		pile:    NewPile(),
		rules:   rules,
		events:  event.NewBus(),
		newDeck: newDeck,
		phase:   PhaseSetup,
		winner:  -1,
	}
	if rules.Seed != 0 {
		g.rng = rand.New(rand.NewSource(rules.Seed))
	}
	return g, nil
}

// Start shuffles, deals and picks the opening player, who then places the
// starting card.
func (g *Game) Start() (int, error) {
	if g.phase != PhaseSetup {
		return 0, consts.ErrorsInvalidState
	}
	g.deal()

	start := 0
	if g.rules.RandomStart {
		start = g.intn(len(g.players))
	}
	g.cycler.Set(start)
	g.phase = PhaseAwaitingPlay
	log.Infof("game started with %d players, %s opens\n", len(g.players), g.players[start].name)
	return start, nil
}

func (g *Game) deal() {
	if g.shuffle {
		g.deck.Shuffle(g.rng)
	}
	for _, player := range g.players {
		player.hand.Replace(nil)
		player.unoCalled = false
		player.Draw(g.deck, g.rules.HandSize)
	}
}

func (g *Game) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	return randx.Intn(n)
}

// SetStartingCard places a card of the current player on the empty discard
// pile. The starting card has no effect. A player holding only black cards
// draws instead.
func (g *Game) SetStartingCard(cardIndex int) (card.Card, error) {
	current := g.cycler.Current()
	if err := g.expect(current, PhaseAwaitingPlay, PhaseAwaitingDrawnCard); err != nil {
		return card.Card{}, err
	}
	if g.pile.Size() > 0 {
		return card.Card{}, consts.ErrorsInvalidState
	}
	if g.phase == PhaseAwaitingDrawnCard && cardIndex != g.drawn {
		return card.Card{}, consts.ErrorsIllegalMove
	}
	player := g.players[current]
	startingCard, ok := player.hand.At(cardIndex)
	if !ok {
		return card.Card{}, consts.ErrorsCardIndexInvalid
	}
	if startingCard.Wild() {
		return card.Card{}, consts.ErrorsStartingCardWild
	}

	player.hand.RemoveAt(cardIndex)
	g.pile.Add(startingCard)
	g.activeColor = startingCard.Color()
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		PlayerName: player.name,
		Card:       startingCard,
	})
	if player.NoCards() {
		g.finish(current)
		return startingCard, nil
	}
	g.phase = PhaseAwaitingPlay
	g.cycler.Next()
	return startingCard, nil
}

// SubmitPlay plays the card at cardIndex from the player's hand. On an empty
// discard pile it places the starting card instead.
func (g *Game) SubmitPlay(playerIndex int, cardIndex int) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingPlay, PhaseAwaitingDrawnCard); err != nil {
		return Outcome{}, err
	}
	if g.phase == PhaseAwaitingDrawnCard && cardIndex != g.drawn {
		return Outcome{}, consts.ErrorsIllegalMove
	}
	top, ok := g.pile.Top()
	if !ok {
		if _, err := g.SetStartingCard(cardIndex); err != nil {
			return Outcome{}, err
		}
		return g.Outcome(), nil
	}

	playedCard, ok := g.players[playerIndex].Play(cardIndex, top, g.activeColor)
	if !ok {
		return Outcome{}, consts.ErrorsIllegalMove
	}
	g.resolvePlay(playerIndex, playedCard)
	return g.Outcome(), nil
}

// SubmitColorChoice declares the color for the wild card just played.
func (g *Game) SubmitColorChoice(playerIndex int, c color.Color) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingColor); err != nil {
		return Outcome{}, err
	}
	if !c.Valid() {
		return Outcome{}, consts.ErrorsInvalidColor
	}

	g.activeColor = c
	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: g.players[playerIndex].name,
		Color:      c,
	})

	suspended := g.pending
	g.pending = pending{}
	g.phase = PhaseAwaitingPlay
	if suspended.card.Rank() == card.WildColorChoice && g.rules.ColorRoulette {
		g.roulette(suspended.actor)
		return g.Outcome(), nil
	}
	g.resolve(suspended.actor, suspended.card, suspended.actions)
	return g.Outcome(), nil
}

// SubmitSwapTarget exchanges hands with target after a seven.
func (g *Game) SubmitSwapTarget(playerIndex int, target int) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingSwapTarget); err != nil {
		return Outcome{}, err
	}
	if target == playerIndex || target < 0 || target >= len(g.players) {
		return Outcome{}, consts.ErrorsInvalidTarget
	}

	g.swapHands(playerIndex, target)
	g.pending = pending{}
	g.phase = PhaseAwaitingPlay
	g.cycler.Next()
	return g.Outcome(), nil
}

// SubmitCounterDecision answers a pending draw. Declining draws the whole
// accumulated total; accepting plays the draw card at cardIndex on top of it.
func (g *Game) SubmitCounterDecision(playerIndex int, accept bool, cardIndex int) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingCounter); err != nil {
		return Outcome{}, err
	}
	player := g.players[playerIndex]

	if !accept {
		total := g.stack
		g.stack, g.threshold = 0, 0
		g.forceDraw(playerIndex, total)
		g.phase = PhaseAwaitingPlay
		g.cycler.Next()
		return g.Outcome(), nil
	}

	counter, ok := player.hand.At(cardIndex)
	if !ok || counter.Rank().DrawAmount() < g.threshold {
		return Outcome{}, consts.ErrorsIllegalMove
	}
	player.hand.RemoveAt(cardIndex)
	g.events.EffectApplied.Emit(event.EffectAppliedPayload{
		PlayerName: player.name,
		Effect:     event.EffectDrawStacked,
	})
	g.phase = PhaseAwaitingPlay
	g.resolvePlay(playerIndex, counter)
	return g.Outcome(), nil
}

// Draw takes one card for the current player. A playable card may then be
// played right away, otherwise the turn passes. On an empty discard pile any
// colored card drawn may open the game.
func (g *Game) Draw(playerIndex int) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingPlay); err != nil {
		return Outcome{}, err
	}

	top, opened := g.pile.Top()
	drawn := g.forceDraw(playerIndex, 1)
	if len(drawn) == 0 || (opened && !drawn[0].IsPlayable(top, g.activeColor)) || (!opened && drawn[0].Wild()) {
		g.pass(playerIndex)
		return g.Outcome(), nil
	}
	g.drawn = g.players[playerIndex].hand.Size() - 1
	g.phase = PhaseAwaitingDrawnCard
	return g.Outcome(), nil
}

// Pass keeps the card just drawn and ends the turn.
func (g *Game) Pass(playerIndex int) (Outcome, error) {
	if err := g.expect(playerIndex, PhaseAwaitingDrawnCard); err != nil {
		return Outcome{}, err
	}
	g.pass(playerIndex)
	return g.Outcome(), nil
}

// CallUno declares that the player is down to their last card.
func (g *Game) CallUno(playerIndex int) error {
	if g.phase == PhaseSetup || g.phase == PhaseGameOver {
		return consts.ErrorsInvalidState
	}
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return consts.ErrorsInvalidTarget
	}
	g.players[playerIndex].unoCalled = true
	return nil
}

// MissedUno reports a player holding a single card without having called it.
func (g *Game) MissedUno(playerIndex int) bool {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return false
	}
	player := g.players[playerIndex]
	return player.hand.Size() == 1 && !player.unoCalled
}

func (g *Game) expect(playerIndex int, phases ...Phase) error {
	if g.phase == PhaseGameOver {
		return consts.ErrorsGameOver
	}
	matched := false
	for _, phase := range phases {
		if g.phase == phase {
			matched = true
			break
		}
	}
	if !matched {
		return consts.ErrorsInvalidState
	}
	if playerIndex != g.cycler.Current() {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) pass(playerIndex int) {
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: g.players[playerIndex].name,
	})
	g.phase = PhaseAwaitingPlay
	g.cycler.Next()
}

func (g *Game) forceDraw(playerIndex int, amount int) []card.Card {
	player := g.players[playerIndex]
	cards := player.Draw(g.deck, amount)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.name,
		Cards:      cards,
	})
	return cards
}

func (g *Game) finish(winner int) {
	g.phase = PhaseGameOver
	g.winner = winner
	g.pending = pending{}
	g.stack, g.threshold = 0, 0
	g.events.GameOver.Emit(event.GameOverPayload{
		WinnerName: g.players[winner].name,
	})
	log.Infof("game over, %s wins\n", g.players[winner].name)
}

func (g *Game) Outcome() Outcome {
	return Outcome{
		Phase:       g.phase,
		Player:      g.cycler.Current(),
		Winner:      g.winner,
		PendingDraw: g.stack,
	}
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) CurrentPlayer() int {
	return g.cycler.Current()
}

func (g *Game) TopOfDiscard() (card.Card, bool) {
	return g.pile.Top()
}

func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

// Direction is 1 for increasing seat order and -1 for decreasing.
func (g *Game) Direction() int {
	return g.cycler.Direction()
}

// HandOf returns a copy of the hand at playerIndex, nil when out of range.
func (g *Game) HandOf(playerIndex int) []card.Card {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return nil
	}
	return g.players[playerIndex].Hand()
}

// HasValidMove reports whether the player holds a playable card. With no
// card on the discard pile any colored card can open.
func (g *Game) HasValidMove(playerIndex int) bool {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return false
	}
	player := g.players[playerIndex]
	top, ok := g.pile.Top()
	if !ok {
		for _, c := range player.hand.cards {
			if !c.Wild() {
				return true
			}
		}
		return false
	}
	return player.HasValidMove(top, g.activeColor)
}

// PlayableIndexes lists the hand positions the player may submit in the
// current phase: playable cards, the opening candidates, the card just drawn
// or the draw cards able to counter.
func (g *Game) PlayableIndexes(playerIndex int) []int {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return nil
	}
	hand := g.players[playerIndex].hand.cards
	indexes := make([]int, 0, len(hand))
	switch g.phase {
	case PhaseAwaitingPlay:
		top, ok := g.pile.Top()
		for i, c := range hand {
			if (!ok && !c.Wild()) || (ok && c.IsPlayable(top, g.activeColor)) {
				indexes = append(indexes, i)
			}
		}
	case PhaseAwaitingDrawnCard:
		indexes = append(indexes, g.drawn)
	case PhaseAwaitingCounter:
		for i, c := range hand {
			if c.Rank().DrawAmount() >= g.threshold {
				indexes = append(indexes, i)
			}
		}
	}
	return indexes
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Winner is -1 while the game is running.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) PlayerNames() []string {
	names := make([]string, len(g.players))
	for i, player := range g.players {
		names[i] = player.name
	}
	return names
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardSize() int {
	return g.pile.Size()
}

func (g *Game) PendingDraw() int {
	return g.stack
}

func (g *Game) Rules() Rules {
	return g.rules
}

// State builds the view of the game seen from seat.
func (g *Game) State(seat int) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, player := range g.players {
		playerSequence = append(playerSequence, player.name)
		playerHandCounts[player.name] = player.hand.Size()
	}

	state := State{
		Phase:            g.phase.String(),
		CurrentPlayer:    g.players[g.cycler.Current()].name,
		Direction:        g.cycler.Direction(),
		ActiveColor:      g.activeColor.Name(),
		DeckSize:         g.deck.Size(),
		DiscardSize:      g.pile.Size(),
		PendingDraw:      g.stack,
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
	}
	if top, ok := g.pile.Top(); ok {
		state.LastPlayedCard = &top
	}
	if g.winner >= 0 {
		state.Winner = g.players[g.winner].name
	}
	if seat >= 0 && seat < len(g.players) {
		state.Seat = g.players[seat].name
		state.CurrentPlayerHand = g.players[seat].Hand()
	}
	return state
}
