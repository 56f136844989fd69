package ledger

import (
	"context"

	"downcard/internal/store"
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

func (l *Ledger) DebitBet(ctx context.Context, playerID, roundID string, amount int64) (int64, error) {
	return l.Store.Debit(ctx, playerID, amount, "bet_debit", "round", roundID)
}

func (l *Ledger) CreditPayout(ctx context.Context, playerID, roundID string, amount int64) (int64, error) {
	return l.Store.Credit(ctx, playerID, amount, "payout_credit", "round", roundID)
}

func (l *Ledger) CreditRefund(ctx context.Context, playerID, roundID string, amount int64) (int64, error) {
	return l.Store.Credit(ctx, playerID, amount, "surrender_refund", "round", roundID)
}
