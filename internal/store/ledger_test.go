package store

import (
	"errors"
	"testing"
)

func TestDebitCreditRoundTrip(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()
	mustEnsurePlayer(t, st, ctx, "p1", 10000)

	roundID, err := st.CreateRound(ctx, "p1", 1000)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	bal, err := st.Debit(ctx, "p1", 1000, "bet_debit", "round", roundID)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if bal != 9000 {
		t.Fatalf("balance = %d, want 9000", bal)
	}
	bal, err = st.Credit(ctx, "p1", 2500, "payout_credit", "round", roundID)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if bal != 11500 {
		t.Fatalf("balance = %d, want 11500", bal)
	}

	entries, err := st.ListLedgerEntries(ctx, LedgerFilter{PlayerID: "p1", RoundID: roundID}, 10, 0)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	var sum int64
	for _, e := range entries {
		sum += e.AmountCents
	}
	if sum != 1500 {
		t.Fatalf("ledger sum = %d, want 1500", sum)
	}
}

func TestDebitInsufficientBalance(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()
	mustEnsurePlayer(t, st, ctx, "p1", 500)

	if _, err := st.Debit(ctx, "p1", 1000, "bet_debit", "round", "r1"); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	p, err := st.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.BankrollCents != 500 {
		t.Fatalf("failed debit must not move the bankroll, got %d", p.BankrollCents)
	}
}

func TestRoundLifecycle(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()
	mustEnsurePlayer(t, st, ctx, "p1", 10000)

	roundID, err := st.CreateRound(ctx, "p1", 1000)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}
	if err := st.RecordAction(ctx, roundID, "p1", "HIT", 0); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := st.RecordAction(ctx, roundID, "p1", "STAND", 0); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := st.FinishRound(ctx, roundID, -1000, "Dealer wins"); err != nil {
		t.Fatalf("finish round: %v", err)
	}

	r, err := st.GetRound(ctx, roundID)
	if err != nil {
		t.Fatalf("get round: %v", err)
	}
	if r.NetCents == nil || *r.NetCents != -1000 || r.EndedAt == nil {
		t.Fatalf("unexpected round: %+v", r)
	}
	actions, err := st.ListRoundActions(ctx, roundID)
	if err != nil {
		t.Fatalf("list actions: %v", err)
	}
	if len(actions) != 2 || actions[0].Action != "HIT" || actions[1].Action != "STAND" {
		t.Fatalf("unexpected actions: %+v", actions)
	}
}
