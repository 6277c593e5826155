package consts

import "time"

const (
	MinPlayers = 2
	HandSize   = 7

	// DeckSize is the number of cards produced by one full deck build.
	DeckSize = 160

	SessionIdleTimeout = 30 * time.Minute
	ReapInterval       = 1 * time.Minute
)

// Error kinds.
const (
	_ = iota
	CodeIllegalMove
	CodeInvalidState
	CodeInvalidConfiguration
	CodeInvalidColor
	CodeInvalidTarget
	CodeSessionInvalid
	CodeInput
	CodeStalled
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

// Is reports whether target is an Error of the same kind.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsIllegalMove          = NewErr(CodeIllegalMove, false, "Illegal move. ")
	ErrorsCardIndexInvalid     = NewErr(CodeIllegalMove, false, "Invalid index. ")
	ErrorsStartingCardWild     = NewErr(CodeIllegalMove, false, "Black card can not start the game. ")
	ErrorsInvalidState         = NewErr(CodeInvalidState, false, "Invalid state. ")
	ErrorsNotYourTurn          = NewErr(CodeInvalidState, false, "Not your turn. ")
	ErrorsGameOver             = NewErr(CodeInvalidState, false, "Game is over. ")
	ErrorsInvalidConfiguration = NewErr(CodeInvalidConfiguration, false, "Invalid configuration. ")
	ErrorsPlayersTooFew        = NewErr(CodeInvalidConfiguration, false, "At least two players are required. ")
	ErrorsPlayerNameInvalid    = NewErr(CodeInvalidConfiguration, false, "Player names must be unique and non-empty. ")
	ErrorsInvalidColor         = NewErr(CodeInvalidColor, false, "Invalid color. ")
	ErrorsInvalidTarget        = NewErr(CodeInvalidTarget, false, "Invalid target. ")
	ErrorsSessionInvalid       = NewErr(CodeSessionInvalid, true, "Session invalid. ")
	ErrorsExist                = NewErr(CodeInput, true, "Exist. ")
	ErrorsInputInvalid         = NewErr(CodeInput, false, "Input invalid. ")
	ErrorsStalled              = NewErr(CodeStalled, true, "Nobody can play any more. ")

	ErrorKinds = map[int]string{
		CodeIllegalMove:          "IllegalMove",
		CodeInvalidState:         "InvalidState",
		CodeInvalidConfiguration: "InvalidConfiguration",
		CodeInvalidColor:         "InvalidColor",
		CodeInvalidTarget:        "InvalidTarget",
		CodeSessionInvalid:       "SessionInvalid",
		CodeInput:                "Input",
		CodeStalled:              "Stalled",
	}
)
