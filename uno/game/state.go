package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseAwaitingPlay
	PhaseAwaitingColor
	PhaseAwaitingSwapTarget
	PhaseAwaitingCounter
	PhaseAwaitingDrawnCard
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:              "setup",
	PhaseAwaitingPlay:       "awaiting_play",
	PhaseAwaitingColor:      "awaiting_color",
	PhaseAwaitingSwapTarget: "awaiting_swap_target",
	PhaseAwaitingCounter:    "awaiting_counter",
	PhaseAwaitingDrawnCard:  "awaiting_drawn_card",
	PhaseGameOver:           "game_over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Outcome tells the host what the game waits for after an operation.
type Outcome struct {
	Phase Phase
	// Player is the seat expected to act next.
	Player int
	// Winner is -1 until the game is over.
	Winner int
	// PendingDraw is the accumulated draw total while a counter is awaited.
	PendingDraw int
}

// State is what one seat is allowed to see.
type State struct {
	Phase             string         `json:"phase"`
	CurrentPlayer     string         `json:"current_player"`
	Direction         int            `json:"direction"`
	ActiveColor       string         `json:"active_color"`
	LastPlayedCard    *card.Card     `json:"last_played_card,omitempty"`
	DeckSize          int            `json:"deck_size"`
	DiscardSize       int            `json:"discard_size"`
	PendingDraw       int            `json:"pending_draw"`
	Winner            string         `json:"winner,omitempty"`
	Seat              string         `json:"seat"`
	CurrentPlayerHand []card.Card    `json:"hand"`
	PlayerSequence    []string       `json:"player_sequence"`
	PlayerHandCounts  map[string]int `json:"player_hand_counts"`
}

func (s State) String() string {
	var lines []string
	if s.LastPlayedCard != nil {
		lines = append(lines, fmt.Sprintf("Last played card: %s, color in effect: %s", s.LastPlayedCard, s.ActiveColor))
	} else {
		lines = append(lines, "No card played yet")
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if playerName == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction == left {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	if s.PendingDraw > 0 {
		lines = append(lines, fmt.Sprintf("Pending draw: %d", s.PendingDraw))
	}
	lines = append(lines, fmt.Sprintf("Deck: %d card(s)", s.DeckSize))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
