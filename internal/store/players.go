package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const playerColumns = `id, bankroll_cents, hands_played, hands_won, blackjacks, doubles, splits, pushes, surrenders,
	current_streak, best_streak, biggest_win_cents, biggest_loss_cents, net_profit_cents, total_wagered_cents,
	created_at, updated_at`

func scanPlayer(row pgx.Row) (*Player, error) {
	var p Player
	err := row.Scan(&p.ID, &p.BankrollCents, &p.HandsPlayed, &p.HandsWon, &p.Blackjacks, &p.Doubles, &p.Splits,
		&p.Pushes, &p.Surrenders, &p.CurrentStreak, &p.BestStreak, &p.BiggestWinCents, &p.BiggestLossCents,
		&p.NetProfitCents, &p.TotalWageredCents, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) EnsurePlayer(ctx context.Context, id string, initialBankroll int64) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO players (id, bankroll_cents) VALUES ($1,$2) ON CONFLICT (id) DO NOTHING`, id, initialBankroll)
	return err
}

func (s *Store) GetPlayer(ctx context.Context, id string) (*Player, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (s *Store) SaveBankroll(ctx context.Context, id string, bankrollCents int64) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE players SET bankroll_cents = $1, updated_at = now() WHERE id = $2`, bankrollCents, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetBankroll restores the starting bankroll. Lifetime stats stay.
func (s *Store) ResetBankroll(ctx context.Context, id string, bankrollCents int64) error {
	return s.SaveBankroll(ctx, id, bankrollCents)
}

// ApplyRoundStats folds one settled round into the player row. Streaks and
// biggest win/loss depend on the stored values, so the row is locked for the
// read-modify-write.
func (s *Store) ApplyRoundStats(ctx context.Context, id string, d RoundStats) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT current_streak, best_streak, biggest_win_cents, biggest_loss_cents FROM players WHERE id = $1 FOR UPDATE`, id)
	var cur, best int
	var bigWin, bigLoss int64
	if err := row.Scan(&cur, &best, &bigWin, &bigLoss); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	switch {
	case d.NetCents > 0:
		cur++
		if cur > best {
			best = cur
		}
		if d.NetCents > bigWin {
			bigWin = d.NetCents
		}
	case d.NetCents < 0:
		cur = 0
		if d.NetCents < bigLoss {
			bigLoss = d.NetCents
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE players SET
			hands_played = hands_played + $1,
			hands_won = hands_won + $2,
			blackjacks = blackjacks + $3,
			doubles = doubles + $4,
			splits = splits + $5,
			pushes = pushes + $6,
			surrenders = surrenders + $7,
			net_profit_cents = net_profit_cents + $8,
			total_wagered_cents = total_wagered_cents + $9,
			current_streak = $10,
			best_streak = $11,
			biggest_win_cents = $12,
			biggest_loss_cents = $13,
			updated_at = now()
		WHERE id = $14
	`, d.HandsPlayed, d.HandsWon, d.Blackjacks, d.Doubles, d.Splits, d.Pushes, d.Surrenders,
		d.NetCents, d.WageredCents, cur, best, bigWin, bigLoss, id)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}
