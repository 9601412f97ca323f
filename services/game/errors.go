package game

import "errors"

// Command rejections. Every one of these leaves room state untouched; the
// gateway forwards the message to the offending sender only.
var (
	ErrNotSeated        = errors.New("you are not seated in this game")
	ErrWrongPhase       = errors.New("action not allowed in the current game phase")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNotHost          = errors.New("only the host can do that")
	ErrNotEnoughPlayers = errors.New("at least 2 players are needed to start")
	ErrNoCurrentCall    = errors.New("no hand call to bluff on")
	ErrCallTooLow       = errors.New("hand call must be strictly higher than the previous call")
	ErrRoyalStands      = errors.New("a royal flush cannot be raised, you must call bluff")
	ErrUnknownTarget    = errors.New("no such user in this room")
)
