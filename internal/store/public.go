package store

import "context"

func (s *Store) ListLeaderboard(ctx context.Context, limit, offset int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT id, bankroll_cents, net_profit_cents, hands_played, hands_won, best_streak
		FROM players
		ORDER BY net_profit_cents DESC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.BankrollCents, &e.NetProfitCents, &e.HandsPlayed, &e.HandsWon, &e.BestStreak); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
