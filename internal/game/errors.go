package game

import "errors"

var (
	ErrInvalidBet           = errors.New("invalid_bet")
	ErrInsufficientBankroll = errors.New("insufficient_bankroll")
	ErrNoActiveRound        = errors.New("no_active_round")
	ErrWrongPhase           = errors.New("wrong_phase")
	ErrInvalidHandIndex     = errors.New("invalid_hand_index")
	ErrIllegalAction        = errors.New("illegal_action")
	ErrUnsupportedAction    = errors.New("unsupported_action")
)
