package game

// LegalActions computes the set of actions currently available to a hand.
// Every condition is evaluated independently; the result is their union.
// firstDecision marks whether the hand has acted yet this round (a hand
// produced by a split starts over as a first decision).
func LegalActions(hand *PlayerHand, dealerUp Card, rules Rules, firstDecision bool, numHands int, bankrollCents int64) []Action {
	if hand.Status != StatusActive {
		return nil
	}
	// Split aces already received their mandated single card.
	if hand.SplitAces && rules.SplitAcesOneCard {
		return nil
	}

	firstTwo := len(hand.Cards) == 2 && firstDecision

	var actions []Action
	if !IsBlackjack(hand.Cards) {
		actions = append(actions, ActionHit)
	}
	actions = append(actions, ActionStand)

	if firstTwo && canDouble(hand, rules, bankrollCents) {
		actions = append(actions, ActionDouble)
	}
	if firstTwo && canSplitHand(hand, rules, numHands, bankrollCents) {
		actions = append(actions, ActionSplit)
	}
	if firstTwo && rules.SurrenderAllowed {
		actions = append(actions, ActionSurrender)
	}
	if firstTwo && rules.InsuranceAllowed && dealerUp.Rank == Ace {
		actions = append(actions, ActionInsurance)
	}
	return actions
}

func canDouble(hand *PlayerHand, rules Rules, bankrollCents int64) bool {
	if bankrollCents < hand.BetCents {
		return false
	}
	total, _ := HandValue(hand.Cards)
	return rules.doubleRangeAllows(total)
}

func canSplitHand(hand *PlayerHand, rules Rules, numHands int, bankrollCents int64) bool {
	if !rules.CanSplit {
		return false
	}
	if bankrollCents < hand.BetCents {
		return false
	}
	if !CanSplit(hand.Cards) {
		return false
	}
	if numHands > 1 && !rules.CanResplit {
		return false
	}
	return true
}
