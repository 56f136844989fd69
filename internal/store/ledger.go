package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrInsufficientBalance = errors.New("insufficient_balance")

func (s *Store) RecordLedgerEntry(ctx context.Context, tx pgx.Tx, playerID, entryType string, amount int64, refType, refID string) error {
	_, err := tx.Exec(ctx, `INSERT INTO ledger_entries (id, player_id, type, amount_cents, ref_type, ref_id) VALUES ($1,$2,$3,$4,$5,$6)`,
		NewID(), playerID, entryType, amount, refType, refID)
	return err
}

// Debit takes amount off the player's bankroll and writes the matching
// ledger entry in one transaction.
func (s *Store) Debit(ctx context.Context, playerID string, amount int64, entryType, refType, refID string) (int64, error) {
	if amount < 0 {
		return 0, errors.New("amount must be positive")
	}
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	row := tx.QueryRow(ctx, `SELECT bankroll_cents FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if bal < amount {
		return 0, ErrInsufficientBalance
	}
	newBal := bal - amount
	if _, err := tx.Exec(ctx, `UPDATE players SET bankroll_cents = $1, updated_at = now() WHERE id = $2`, newBal, playerID); err != nil {
		return 0, err
	}
	if err := s.RecordLedgerEntry(ctx, tx, playerID, entryType, -amount, refType, refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

func (s *Store) Credit(ctx context.Context, playerID string, amount int64, entryType, refType, refID string) (int64, error) {
	if amount < 0 {
		return 0, errors.New("amount must be positive")
	}
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	row := tx.QueryRow(ctx, `SELECT bankroll_cents FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	newBal := bal + amount
	if _, err := tx.Exec(ctx, `UPDATE players SET bankroll_cents = $1, updated_at = now() WHERE id = $2`, newBal, playerID); err != nil {
		return 0, err
	}
	if err := s.RecordLedgerEntry(ctx, tx, playerID, entryType, amount, refType, refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

type LedgerFilter struct {
	PlayerID string
	RoundID  string
	From     *time.Time
	To       *time.Time
}

func (s *Store) ListLedgerEntries(ctx context.Context, f LedgerFilter, limit, offset int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "WHERE 1=1"
	args := []any{}
	if f.PlayerID != "" {
		args = append(args, f.PlayerID)
		where += fmt.Sprintf(" AND player_id = $%d", len(args))
	}
	if f.RoundID != "" {
		args = append(args, f.RoundID)
		where += fmt.Sprintf(" AND ref_type = 'round' AND ref_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	q := `SELECT id, player_id, type, amount_cents, ref_type, ref_id, created_at FROM ledger_entries ` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LedgerEntry{}
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Type, &e.AmountCents, &e.RefType, &e.RefID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
