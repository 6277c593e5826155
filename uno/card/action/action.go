package action

type Action interface{}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

// RotateHandsAction passes every hand one seat against the turn order.
type RotateHandsAction struct{}

func NewRotateHandsAction() Action {
	return RotateHandsAction{}
}

// SwapHandsAction exchanges the player's hand with a chosen opponent.
type SwapHandsAction struct{}

func NewSwapHandsAction() Action {
	return SwapHandsAction{}
}

// PlayAllColorAction discards every card of the color in effect.
type PlayAllColorAction struct{}

func NewPlayAllColorAction() Action {
	return PlayAllColorAction{}
}

// RedealAction restarts the deal with the same players.
type RedealAction struct{}

func NewRedealAction() Action {
	return RedealAction{}
}
