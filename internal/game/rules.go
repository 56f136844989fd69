package game

import "errors"

type DoubleRange string

const (
	DoubleAny        DoubleRange = "any"
	DoubleNineEleven DoubleRange = "9-11"
	DoubleTenEleven  DoubleRange = "10-11"
)

// Rules is the immutable table configuration for a session.
type Rules struct {
	Decks              int
	DealerHitsSoft17   bool
	BlackjackPayout    float64
	DoubleOn           DoubleRange
	CanSplit           bool
	CanResplit         bool
	SplitAcesOneCard   bool
	InsuranceAllowed   bool
	SurrenderAllowed   bool
	ReshuffleThreshold float64
}

// DefaultRules is a 6-deck S17 table paying 3:2, double on any two cards,
// split once, split aces one card, insurance and surrender off.
func DefaultRules() Rules {
	return Rules{
		Decks:              6,
		DealerHitsSoft17:   false,
		BlackjackPayout:    1.5,
		DoubleOn:           DoubleAny,
		CanSplit:           true,
		CanResplit:         false,
		SplitAcesOneCard:   true,
		InsuranceAllowed:   false,
		SurrenderAllowed:   false,
		ReshuffleThreshold: 0.25,
	}
}

var ErrInvalidRules = errors.New("invalid_rules")

func (r Rules) Validate() error {
	if r.Decks < 1 || r.Decks > 8 {
		return ErrInvalidRules
	}
	if r.BlackjackPayout <= 1.0 {
		return ErrInvalidRules
	}
	if r.ReshuffleThreshold < 0 || r.ReshuffleThreshold >= 1 {
		return ErrInvalidRules
	}
	switch r.DoubleOn {
	case DoubleAny, DoubleNineEleven, DoubleTenEleven:
	default:
		return ErrInvalidRules
	}
	return nil
}

// doubleRangeAllows checks the hand total against the rule's permitted
// double window.
func (r Rules) doubleRangeAllows(total int) bool {
	switch r.DoubleOn {
	case DoubleAny:
		return true
	case DoubleNineEleven:
		return total >= 9 && total <= 11
	case DoubleTenEleven:
		return total >= 10 && total <= 11
	default:
		return false
	}
}
