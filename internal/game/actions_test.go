package game

import "testing"

func hasAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func activeHand(bet int64, cards ...Card) *PlayerHand {
	h := &PlayerHand{Cards: cards, BetCents: bet, Status: StatusActive}
	refreshHand(h)
	return h
}

func TestLegalActionsTerminalHandIsEmpty(t *testing.T) {
	h := activeHand(1000, Card{Ten, Hearts}, Card{Six, Diamonds})
	h.Status = StatusBust
	if got := LegalActions(h, Card{Nine, Spades}, DefaultRules(), true, 1, 100000); len(got) != 0 {
		t.Fatalf("expected no actions for terminal hand, got %v", got)
	}
}

func TestLegalActionsSplitAcesForcedStand(t *testing.T) {
	h := activeHand(1000, Card{Ace, Hearts}, Card{Nine, Diamonds})
	h.SplitAces = true
	if got := LegalActions(h, Card{Nine, Spades}, DefaultRules(), true, 2, 100000); len(got) != 0 {
		t.Fatalf("expected no actions for split-aces hand, got %v", got)
	}
}

func TestLegalActionsFirstDecision(t *testing.T) {
	rules := DefaultRules()
	rules.SurrenderAllowed = true
	rules.InsuranceAllowed = true
	h := activeHand(1000, Card{Eight, Hearts}, Card{Eight, Diamonds})

	got := LegalActions(h, Card{Ace, Spades}, rules, true, 1, 100000)
	for _, want := range []Action{ActionHit, ActionStand, ActionDouble, ActionSplit, ActionSurrender, ActionInsurance} {
		if !hasAction(got, want) {
			t.Fatalf("expected %s in %v", want, got)
		}
	}
}

func TestLegalActionsInsuranceNeedsDealerAce(t *testing.T) {
	rules := DefaultRules()
	rules.InsuranceAllowed = true
	h := activeHand(1000, Card{Eight, Hearts}, Card{Five, Diamonds})
	if got := LegalActions(h, Card{King, Spades}, rules, true, 1, 100000); hasAction(got, ActionInsurance) {
		t.Fatalf("insurance offered without a dealer ace: %v", got)
	}
}

func TestLegalActionsNotFirstDecision(t *testing.T) {
	rules := DefaultRules()
	rules.SurrenderAllowed = true
	h := activeHand(1000, Card{Eight, Hearts}, Card{Eight, Diamonds}, Card{Two, Clubs})

	got := LegalActions(h, Card{Nine, Spades}, rules, false, 1, 100000)
	if !hasAction(got, ActionHit) || !hasAction(got, ActionStand) {
		t.Fatalf("hit and stand must stay legal, got %v", got)
	}
	for _, banned := range []Action{ActionDouble, ActionSplit, ActionSurrender} {
		if hasAction(got, banned) {
			t.Fatalf("%s is first-decision only, got %v", banned, got)
		}
	}
}

func TestLegalActionsBankrollGatesDoubleAndSplit(t *testing.T) {
	h := activeHand(1000, Card{Eight, Hearts}, Card{Eight, Diamonds})
	got := LegalActions(h, Card{Nine, Spades}, DefaultRules(), true, 1, 999)
	if hasAction(got, ActionDouble) || hasAction(got, ActionSplit) {
		t.Fatalf("double/split require bankroll >= bet, got %v", got)
	}
}

func TestLegalActionsDoubleRange(t *testing.T) {
	rules := DefaultRules()
	rules.DoubleOn = DoubleNineEleven

	low := activeHand(1000, Card{Three, Hearts}, Card{Five, Diamonds})
	if got := LegalActions(low, Card{Nine, Spades}, rules, true, 1, 100000); hasAction(got, ActionDouble) {
		t.Fatalf("total 8 outside 9-11, got %v", got)
	}
	ok := activeHand(1000, Card{Five, Hearts}, Card{Six, Diamonds})
	if got := LegalActions(ok, Card{Nine, Spades}, rules, true, 1, 100000); !hasAction(got, ActionDouble) {
		t.Fatalf("total 11 inside 9-11, got %v", got)
	}
}

func TestLegalActionsResplitFlag(t *testing.T) {
	h := activeHand(1000, Card{Eight, Hearts}, Card{Eight, Diamonds})
	if got := LegalActions(h, Card{Nine, Spades}, DefaultRules(), true, 2, 100000); hasAction(got, ActionSplit) {
		t.Fatalf("resplit disabled, got %v", got)
	}
	rules := DefaultRules()
	rules.CanResplit = true
	if got := LegalActions(h, Card{Nine, Spades}, rules, true, 2, 100000); !hasAction(got, ActionSplit) {
		t.Fatalf("resplit enabled, got %v", got)
	}
}

func TestLegalActionsNoHitOnBlackjack(t *testing.T) {
	h := activeHand(1000, Card{Ace, Hearts}, Card{King, Diamonds})
	got := LegalActions(h, Card{Nine, Spades}, DefaultRules(), true, 1, 100000)
	if hasAction(got, ActionHit) {
		t.Fatalf("blackjack hand cannot hit, got %v", got)
	}
	if !hasAction(got, ActionStand) {
		t.Fatalf("stand stays legal, got %v", got)
	}
}
