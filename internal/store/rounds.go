package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateRound(ctx context.Context, playerID string, baseBetCents int64) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO rounds (id, player_id, base_bet_cents) VALUES ($1,$2,$3)`, id, playerID, baseBetCents)
	return id, err
}

func (s *Store) FinishRound(ctx context.Context, roundID string, netCents int64, message string) error {
	_, err := s.Pool.Exec(ctx, `UPDATE rounds SET net_cents = $1, message = $2, ended_at = now() WHERE id = $3`, netCents, message, roundID)
	return err
}

func (s *Store) RecordAction(ctx context.Context, roundID, playerID, action string, handIndex int) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO round_actions (id, round_id, player_id, action, hand_index) VALUES ($1,$2,$3,$4,$5)`,
		NewID(), roundID, playerID, action, handIndex)
	return err
}

func (s *Store) GetRound(ctx context.Context, id string) (*Round, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, player_id, base_bet_cents, net_cents, COALESCE(message, ''), started_at, ended_at FROM rounds WHERE id = $1`, id)
	var r Round
	if err := row.Scan(&r.ID, &r.PlayerID, &r.BaseBetCents, &r.NetCents, &r.Message, &r.StartedAt, &r.EndedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListRoundActions(ctx context.Context, roundID string) ([]RoundAction, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, round_id, player_id, action, hand_index, created_at FROM round_actions WHERE round_id = $1 ORDER BY created_at ASC`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []RoundAction{}
	for rows.Next() {
		var a RoundAction
		if err := rows.Scan(&a.ID, &a.RoundID, &a.PlayerID, &a.Action, &a.HandIndex, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
