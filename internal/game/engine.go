package game

import "math/rand"

const (
	MinBetCents int64 = 100
	MaxBetCents int64 = 10000
)

// Deal starts a new round: validates the wager, reshuffles the shoe when it
// has run down past the rule threshold, deals player-dealer-player-dealer
// (the dealer's second card is the hole card) and escrows the bet. A dealt
// blackjack skips straight through dealer play to settlement.
//
// Every transition here and in ApplyAction works on copies and commits into
// the session only on success, so a rejected operation leaves the session
// untouched.
func Deal(sess *Session, rnd *rand.Rand, betCents int64) (*RoundState, error) {
	if betCents < MinBetCents || betCents > MaxBetCents {
		return nil, ErrInvalidBet
	}
	if betCents > sess.BankrollCents {
		return nil, ErrInsufficientBankroll
	}

	shoe := sess.Shoe
	if shoe == nil || shoe.NeedsReshuffle(sess.Rules.ReshuffleThreshold) {
		shoe = NewShoe(sess.Rules.Decks).Shuffle(rnd)
	} else {
		shoe = shoe.clone()
	}

	drawn, err := shoe.DrawMany(4)
	if err != nil {
		return nil, err
	}
	playerCards := []Card{drawn[0], drawn[2]}
	dealerCards := []Card{drawn[1], drawn[3]}

	total, soft := HandValue(playerCards)
	hand := &PlayerHand{
		Cards:    playerCards,
		Total:    total,
		Soft:     soft,
		BetCents: betCents,
		Status:   StatusActive,
	}
	rs := &RoundState{
		Phase:         PhasePlayerTurn,
		BankrollCents: sess.BankrollCents - betCents,
		BaseBetCents:  betCents,
		Dealer:        DealerHand{Cards: dealerCards},
		PlayerHands:   []*PlayerHand{hand},
	}

	if IsBlackjack(playerCards) {
		hand.Status = StatusBlackjack
		if err := finishDealerTurn(rs, sess.Rules, shoe); err != nil {
			return nil, err
		}
	} else {
		rs.LegalActions = LegalActions(hand, rs.Dealer.UpCard(), sess.Rules, true, 1, rs.BankrollCents)
	}

	commit(sess, rs, shoe)
	return rs, nil
}

// ApplyAction validates and applies one player decision to the active hand.
func ApplyAction(sess *Session, action Action, handIndex int) (*RoundState, error) {
	if sess.Round == nil {
		return nil, ErrNoActiveRound
	}
	cur := sess.Round
	if cur.Phase != PhasePlayerTurn {
		return nil, ErrWrongPhase
	}
	if handIndex != cur.ActiveHandIndex || handIndex < 0 || handIndex >= len(cur.PlayerHands) {
		return nil, ErrInvalidHandIndex
	}
	if !actionLegal(cur.LegalActions, action) {
		return nil, ErrIllegalAction
	}

	rs := cur.clone()
	shoe := sess.Shoe.clone()
	hand := rs.PlayerHands[handIndex]

	var err error
	switch action {
	case ActionHit:
		err = applyHit(rs, hand, sess.Rules, shoe)
	case ActionStand:
		hand.Status = StatusStand
		err = advance(rs, sess.Rules, shoe)
	case ActionDouble:
		err = applyDouble(rs, hand, sess.Rules, shoe)
	case ActionSplit:
		err = applySplit(rs, handIndex, sess.Rules, shoe)
	case ActionSurrender:
		applySurrender(rs, hand, sess.Rules)
	default:
		// INSURANCE can be offered by the rules but its resolution is not
		// modeled; applying it is rejected.
		return nil, ErrUnsupportedAction
	}
	if err != nil {
		return nil, err
	}

	commit(sess, rs, shoe)
	return rs, nil
}

func actionLegal(legal []Action, action Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}

// commit assigns the fully built transition into the session. The bankroll
// moves only when the round settles; until then the escrowed projection
// lives in the round state.
func commit(sess *Session, rs *RoundState, shoe *Shoe) {
	sess.Shoe = shoe
	sess.Round = rs
	if rs.Phase == PhaseSettlement {
		sess.BankrollCents = rs.BankrollCents
	}
}

func refreshHand(h *PlayerHand) {
	h.Total, h.Soft = HandValue(h.Cards)
}

func applyHit(rs *RoundState, hand *PlayerHand, rules Rules, shoe *Shoe) error {
	c, err := shoe.Draw()
	if err != nil {
		return err
	}
	hand.Cards = append(hand.Cards, c)
	refreshHand(hand)

	if IsBust(hand.Cards) {
		hand.Status = StatusBust
		return advance(rs, rules, shoe)
	}
	rs.LegalActions = LegalActions(hand, rs.Dealer.UpCard(), rules, false, len(rs.PlayerHands), rs.BankrollCents)
	return nil
}

// applyDouble escrows a second bet, doubles the wager and draws exactly one
// card; the hand's turn always ends.
func applyDouble(rs *RoundState, hand *PlayerHand, rules Rules, shoe *Shoe) error {
	rs.BankrollCents -= hand.BetCents
	hand.BetCents *= 2

	c, err := shoe.Draw()
	if err != nil {
		return err
	}
	hand.Cards = append(hand.Cards, c)
	refreshHand(hand)

	if IsBust(hand.Cards) {
		hand.Status = StatusBust
	} else {
		hand.Status = StatusStand
	}
	return advance(rs, rules, shoe)
}

// applySplit escrows a matching bet, splits the two cards into two one-card
// hands and draws one card onto each. Split aces receive that single card
// and stand. A two-card 21 after a split stands but is not a blackjack.
func applySplit(rs *RoundState, handIndex int, rules Rules, shoe *Shoe) error {
	hand := rs.PlayerHands[handIndex]
	rs.BankrollCents -= hand.BetCents

	first, second := hand.Cards[0], hand.Cards[1]
	drawn, err := shoe.DrawMany(2)
	if err != nil {
		return err
	}
	splitAces := first.Rank == Ace

	hand.Cards = []Card{first, drawn[0]}
	hand.SplitAces = splitAces
	refreshHand(hand)

	next := &PlayerHand{
		Cards:     []Card{second, drawn[1]},
		BetCents:  hand.BetCents,
		Status:    StatusActive,
		SplitAces: splitAces,
	}
	refreshHand(next)

	forcedStand := splitAces && rules.SplitAcesOneCard
	for _, h := range []*PlayerHand{hand, next} {
		if forcedStand || h.Total == 21 {
			h.Status = StatusStand
		}
	}

	// The new hand plays immediately after the split hand.
	rs.PlayerHands = append(rs.PlayerHands, nil)
	copy(rs.PlayerHands[handIndex+2:], rs.PlayerHands[handIndex+1:])
	rs.PlayerHands[handIndex+1] = next

	if hand.Status != StatusActive {
		return advance(rs, rules, shoe)
	}
	rs.LegalActions = LegalActions(hand, rs.Dealer.UpCard(), rules, true, len(rs.PlayerHands), rs.BankrollCents)
	return nil
}

// applySurrender refunds half the bet (floor division, the odd cent goes to
// the house), ends the round immediately and skips dealer play.
func applySurrender(rs *RoundState, hand *PlayerHand, rules Rules) {
	rs.BankrollCents += hand.BetCents / 2
	hand.Status = StatusDone
	hand.Surrendered = true

	r := SettleHand(hand, rs.Dealer.Cards, rules)
	r.HandIndex = rs.ActiveHandIndex
	rs.Outcome = &Outcome{
		Results:  []HandOutcome{r},
		NetCents: r.NetPayoutCents,
		Message:  summaryMessage([]HandOutcome{r}),
	}
	rs.Phase = PhaseSettlement
	rs.LegalActions = nil
}

// advance moves the turn to the next hand still awaiting decisions, or runs
// the dealer and settles when none is left.
func advance(rs *RoundState, rules Rules, shoe *Shoe) error {
	for i := rs.ActiveHandIndex + 1; i < len(rs.PlayerHands); i++ {
		if rs.PlayerHands[i].Status == StatusActive {
			rs.ActiveHandIndex = i
			h := rs.PlayerHands[i]
			rs.LegalActions = LegalActions(h, rs.Dealer.UpCard(), rules, true, len(rs.PlayerHands), rs.BankrollCents)
			return nil
		}
	}
	return finishDealerTurn(rs, rules, shoe)
}

// finishDealerTurn reveals the hole card, plays out the dealer unless every
// player hand busted, settles all hands and credits the bankroll. The
// settlement credit per hand is stake plus signed payout, so a push returns
// the stake and a loss returns nothing.
func finishDealerTurn(rs *RoundState, rules Rules, shoe *Shoe) error {
	rs.Phase = PhaseDealerTurn
	rs.Dealer.HoleRevealed = true

	allBust := true
	for _, h := range rs.PlayerHands {
		if h.Status != StatusBust {
			allBust = false
			break
		}
	}
	if !allBust {
		cards, err := PlayDealer(rs.Dealer.Cards, rules, shoe.Draw)
		if err != nil {
			return err
		}
		rs.Dealer.Cards = cards
	}

	out := SettleRound(rs.PlayerHands, rs.Dealer.Cards, rules)
	for i, h := range rs.PlayerHands {
		rs.BankrollCents += h.BetCents + out.Results[i].NetPayoutCents
	}
	rs.Outcome = out
	rs.Phase = PhaseSettlement
	rs.LegalActions = nil
	return nil
}
