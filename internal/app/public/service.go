package public

import (
	"context"
	"errors"

	"downcard/internal/store"
)

const leaderboardMaxRows = 100

// Service serves read-only player stats. It requires a store; without
// Postgres the public surface reports unavailable.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Leaderboard(ctx context.Context, limit, offset int) (*LeaderboardResponse, error) {
	if s.store == nil {
		return nil, ErrUnavailable
	}
	limit, ok := clampLeaderboardPage(limit, offset)
	if !ok {
		return &LeaderboardResponse{Items: []LeaderboardItem{}, Limit: limit, Offset: offset}, nil
	}
	items, err := s.store.ListLeaderboard(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]LeaderboardItem, 0, len(items))
	for idx, it := range items {
		out = append(out, LeaderboardItem{
			Rank:           offset + idx + 1,
			PlayerID:       it.PlayerID,
			BankrollCents:  it.BankrollCents,
			NetProfitCents: it.NetProfitCents,
			HandsPlayed:    it.HandsPlayed,
			HandsWon:       it.HandsWon,
			BestStreak:     it.BestStreak,
		})
	}
	return &LeaderboardResponse{Items: out, Total: len(out), Limit: limit, Offset: offset}, nil
}

func (s *Service) Player(ctx context.Context, playerID string) (*PlayerProfile, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	if s.store == nil {
		return nil, ErrUnavailable
	}
	p, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	winRate := 0.0
	if p.HandsPlayed > 0 {
		winRate = float64(p.HandsWon) / float64(p.HandsPlayed)
	}
	return &PlayerProfile{
		PlayerID:          p.ID,
		BankrollCents:     p.BankrollCents,
		HandsPlayed:       p.HandsPlayed,
		HandsWon:          p.HandsWon,
		WinRate:           winRate,
		Blackjacks:        p.Blackjacks,
		Doubles:           p.Doubles,
		Splits:            p.Splits,
		Pushes:            p.Pushes,
		Surrenders:        p.Surrenders,
		CurrentStreak:     p.CurrentStreak,
		BestStreak:        p.BestStreak,
		BiggestWinCents:   p.BiggestWinCents,
		BiggestLossCents:  p.BiggestLossCents,
		NetProfitCents:    p.NetProfitCents,
		TotalWageredCents: p.TotalWageredCents,
		CreatedAt:         p.CreatedAt,
	}, nil
}

func clampLeaderboardPage(limit, offset int) (int, bool) {
	if offset >= leaderboardMaxRows {
		return 0, false
	}
	if limit <= 0 {
		limit = 50
	}
	remaining := leaderboardMaxRows - offset
	if limit > remaining {
		limit = remaining
	}
	return limit, true
}
