package game

import "testing"

func naturalHand(bet int64, cards ...Card) *PlayerHand {
	h := activeHand(bet, cards...)
	h.Status = StatusBlackjack
	return h
}

func TestSettleHandSurrender(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Nine, Clubs}}
	h := activeHand(1000, Card{Ten, Hearts}, Card{Six, Diamonds})
	h.Surrendered = true
	r := SettleHand(h, dealer, DefaultRules())
	if r.Result != ResultSurrender || r.NetPayoutCents != -500 {
		t.Fatalf("got %+v", r)
	}
	// The odd cent rounds against the player.
	h = activeHand(1001, Card{Ten, Hearts}, Card{Six, Diamonds})
	h.Surrendered = true
	if r := SettleHand(h, dealer, DefaultRules()); r.NetPayoutCents != -501 {
		t.Fatalf("expected -501 on odd bet, got %d", r.NetPayoutCents)
	}
}

func TestSettleHandPlayerBustLosesEvenWhenDealerBusts(t *testing.T) {
	h := activeHand(1000, Card{Ten, Hearts}, Card{Six, Diamonds}, Card{King, Clubs})
	dealer := []Card{{Ten, Spades}, {Nine, Clubs}, {Five, Hearts}}
	r := SettleHand(h, dealer, DefaultRules())
	if r.Result != ResultLoss || r.NetPayoutCents != -1000 {
		t.Fatalf("got %+v", r)
	}
}

func TestSettleHandBlackjack(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Nine, Clubs}}
	r := SettleHand(naturalHand(1000, Card{Ace, Spades}, Card{King, Diamonds}), dealer, DefaultRules())
	if r.Result != ResultBlackjack || r.NetPayoutCents != 1500 {
		t.Fatalf("got %+v", r)
	}
	// floor(333 * 1.5) = 499
	r = SettleHand(naturalHand(333, Card{Ace, Spades}, Card{King, Diamonds}), dealer, DefaultRules())
	if r.NetPayoutCents != 499 {
		t.Fatalf("expected floored payout 499, got %d", r.NetPayoutCents)
	}
}

func TestSettleHandSplitTwentyOneIsNotBlackjack(t *testing.T) {
	// Ace plus king, but built after a split: pays even money.
	h := activeHand(1000, Card{Ace, Spades}, Card{King, Diamonds})
	h.Status = StatusStand
	h.SplitAces = true
	r := SettleHand(h, []Card{{Ten, Spades}, {Nine, Clubs}}, DefaultRules())
	if r.Result != ResultWin || r.NetPayoutCents != 1000 {
		t.Fatalf("got %+v", r)
	}
}

func TestSettleHandDoubleBlackjackPushes(t *testing.T) {
	h := naturalHand(1000, Card{Ace, Spades}, Card{King, Diamonds})
	r := SettleHand(h, []Card{{Ace, Hearts}, {Queen, Clubs}}, DefaultRules())
	if r.Result != ResultPush || r.NetPayoutCents != 0 {
		t.Fatalf("got %+v", r)
	}
}

func TestSettleHandDealerBlackjackBeatsTwentyOne(t *testing.T) {
	h := activeHand(1000, Card{Seven, Hearts}, Card{Seven, Clubs}, Card{Seven, Spades})
	r := SettleHand(h, []Card{{Ace, Hearts}, {Queen, Clubs}}, DefaultRules())
	if r.Result != ResultLoss || r.NetPayoutCents != -1000 {
		t.Fatalf("three-card 21 loses to a natural, got %+v", r)
	}
}

func TestSettleHandDealerBust(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Six, Clubs}, {King, Hearts}}
	r := SettleHand(activeHand(1000, Card{Ten, Hearts}, Card{Two, Diamonds}), dealer, DefaultRules())
	if r.Result != ResultWin || r.NetPayoutCents != 1000 {
		t.Fatalf("got %+v", r)
	}
}

func TestSettleHandComparesTotals(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Eight, Clubs}}
	win := SettleHand(activeHand(1000, Card{Ten, Hearts}, Card{Nine, Diamonds}), dealer, DefaultRules())
	if win.Result != ResultWin || win.NetPayoutCents != 1000 {
		t.Fatalf("got %+v", win)
	}
	loss := SettleHand(activeHand(1000, Card{Ten, Hearts}, Card{Seven, Diamonds}), dealer, DefaultRules())
	if loss.Result != ResultLoss || loss.NetPayoutCents != -1000 {
		t.Fatalf("got %+v", loss)
	}
	push := SettleHand(activeHand(1000, Card{Ten, Hearts}, Card{Eight, Diamonds}), dealer, DefaultRules())
	if push.Result != ResultPush || push.NetPayoutCents != 0 {
		t.Fatalf("got %+v", push)
	}
}

func TestSettleRoundSingleHandMessages(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Eight, Clubs}}
	cases := []struct {
		hand    *PlayerHand
		message string
	}{
		{naturalHand(1000, Card{Ace, Hearts}, Card{King, Diamonds}), "Blackjack!"},
		{activeHand(1000, Card{Ten, Hearts}, Card{Nine, Diamonds}), "You win!"},
		{activeHand(1000, Card{Ten, Hearts}, Card{Seven, Diamonds}), "Dealer wins"},
		{activeHand(1000, Card{Ten, Hearts}, Card{Eight, Diamonds}), "Push"},
	}
	for _, tc := range cases {
		out := SettleRound([]*PlayerHand{tc.hand}, dealer, DefaultRules())
		if out.Message != tc.message {
			t.Fatalf("cards %v: got message %q, want %q", tc.hand.Cards, out.Message, tc.message)
		}
	}
}

func TestSettleRoundMultiHandMessage(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Eight, Clubs}}
	hands := []*PlayerHand{
		activeHand(1000, Card{Ten, Hearts}, Card{Nine, Diamonds}),
		activeHand(1000, Card{Ten, Hearts}, Card{Nine, Clubs}),
		activeHand(1000, Card{Ten, Clubs}, Card{Seven, Diamonds}),
		activeHand(1000, Card{Ten, Diamonds}, Card{Eight, Hearts}),
	}
	out := SettleRound(hands, dealer, DefaultRules())
	if out.Message != "2 wins, 1 loss, 1 push" {
		t.Fatalf("got message %q", out.Message)
	}
	if out.NetCents != 1000 {
		t.Fatalf("expected net 1000, got %d", out.NetCents)
	}
}

func TestSettleRoundLossesLeadWhenAhead(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Eight, Clubs}}
	hands := []*PlayerHand{
		activeHand(1000, Card{Ten, Hearts}, Card{Seven, Diamonds}),
		activeHand(1000, Card{Ten, Clubs}, Card{Six, Diamonds}),
		activeHand(1000, Card{Ten, Diamonds}, Card{Nine, Hearts}),
	}
	out := SettleRound(hands, dealer, DefaultRules())
	if out.Message != "2 losses, 1 win" {
		t.Fatalf("got message %q", out.Message)
	}
}

func TestSettleRoundIndexesResults(t *testing.T) {
	dealer := []Card{{Ten, Spades}, {Eight, Clubs}}
	hands := []*PlayerHand{
		activeHand(1000, Card{Ten, Hearts}, Card{Nine, Diamonds}),
		activeHand(2000, Card{Ten, Hearts}, Card{Seven, Clubs}),
	}
	out := SettleRound(hands, dealer, DefaultRules())
	if out.Results[0].HandIndex != 0 || out.Results[1].HandIndex != 1 {
		t.Fatalf("results not indexed in order: %+v", out.Results)
	}
	if out.NetCents != -1000 {
		t.Fatalf("each hand settles its own bet, net=%d", out.NetCents)
	}
}
