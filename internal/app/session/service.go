package session

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"downcard/internal/config"
	"downcard/internal/game"
	"downcard/internal/ledger"
	"downcard/internal/store"
)

// Service owns one blackjack session per player. All gameplay state is
// in memory; with a store attached, bankrolls, rounds, actions and ledger
// entries are mirrored to Postgres as the round progresses.
type Service struct {
	rules    game.Rules
	starting int64
	store    *store.Store
	ledger   *ledger.Ledger

	mu       sync.Mutex
	sessions map[string]*playerSession
}

type playerSession struct {
	mu      sync.Mutex
	sess    *game.Session
	rnd     *rand.Rand
	roundID string
	doubles int
	splits  int
}

func NewService(cfg config.GameConfig, st *store.Store) (*Service, error) {
	rules := game.Rules{
		Decks:              cfg.Decks,
		DealerHitsSoft17:   cfg.DealerHitsSoft17,
		BlackjackPayout:    cfg.BlackjackPayout,
		DoubleOn:           game.DoubleRange(cfg.DoubleOn),
		CanSplit:           cfg.CanSplit,
		CanResplit:         cfg.CanResplit,
		SplitAcesOneCard:   cfg.SplitAcesOneCard,
		InsuranceAllowed:   cfg.InsuranceAllowed,
		SurrenderAllowed:   cfg.SurrenderAllowed,
		ReshuffleThreshold: cfg.ReshuffleThreshold,
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	svc := &Service{
		rules:    rules,
		starting: cfg.StartingBankrollCents,
		store:    st,
		sessions: make(map[string]*playerSession),
	}
	if st != nil {
		svc.ledger = ledger.New(st)
	}
	return svc, nil
}

func (s *Service) Rules() game.Rules { return s.rules }

// Deal starts a new round for the player, creating the session on first
// contact.
func (s *Service) Deal(ctx context.Context, playerID string, betCents int64) (*game.RoundState, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	ps, err := s.getOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	rs, err := game.Deal(ps.sess, ps.rnd, betCents)
	if err != nil {
		return nil, err
	}
	ps.doubles, ps.splits = 0, 0
	ps.roundID = ""

	if s.store != nil {
		roundID, err := s.store.CreateRound(ctx, playerID, betCents)
		if err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Msg("persist round failed")
		} else {
			ps.roundID = roundID
			if _, err := s.ledger.DebitBet(ctx, playerID, roundID, betCents); err != nil {
				log.Warn().Err(err).Str("player_id", playerID).Msg("persist bet debit failed")
			}
		}
	}
	if rs.Phase == game.PhaseSettlement {
		s.persistSettlement(ctx, ps)
	}
	return rs, nil
}

// Action applies one player decision to the active round.
func (s *Service) Action(ctx context.Context, playerID string, action game.Action, handIndex int) (*game.RoundState, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	ps := s.lookup(playerID)
	if ps == nil {
		return nil, game.ErrNoActiveRound
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	betBefore := activeBet(ps.sess)
	rs, err := game.ApplyAction(ps.sess, action, handIndex)
	if err != nil {
		return nil, err
	}

	switch action {
	case game.ActionDouble:
		ps.doubles++
	case game.ActionSplit:
		ps.splits++
	}

	if s.store != nil && ps.roundID != "" {
		if err := s.store.RecordAction(ctx, ps.roundID, playerID, string(action), handIndex); err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Msg("persist action failed")
		}
		// Double and split escrow a second wager.
		if action == game.ActionDouble || action == game.ActionSplit {
			if _, err := s.ledger.DebitBet(ctx, playerID, ps.roundID, betBefore); err != nil {
				log.Warn().Err(err).Str("player_id", playerID).Msg("persist bet debit failed")
			}
		}
	}
	if rs.Phase == game.PhaseSettlement {
		s.persistSettlement(ctx, ps)
	}
	return rs, nil
}

// State returns the player's bankroll and current round, if any.
func (s *Service) State(ctx context.Context, playerID string) (*TableState, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	ps, err := s.getOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return &TableState{
		PlayerID:      playerID,
		BankrollCents: ps.sess.BankrollCents,
		Round:         ps.sess.Round,
	}, nil
}

// Reset restores the starting bankroll and discards the round and shoe.
// Lifetime stats are kept.
func (s *Service) Reset(ctx context.Context, playerID string) (*TableState, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	ps, err := s.getOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.sess.BankrollCents = s.starting
	ps.sess.Round = nil
	ps.sess.Shoe = nil
	ps.roundID = ""

	if s.store != nil {
		if err := s.store.ResetBankroll(ctx, playerID, s.starting); err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Msg("persist reset failed")
		}
	}
	return &TableState{PlayerID: playerID, BankrollCents: ps.sess.BankrollCents}, nil
}

func (s *Service) lookup(playerID string) *playerSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[playerID]
}

func (s *Service) getOrCreate(ctx context.Context, playerID string) (*playerSession, error) {
	s.mu.Lock()
	if ps, ok := s.sessions[playerID]; ok {
		s.mu.Unlock()
		return ps, nil
	}
	s.mu.Unlock()

	bankroll := s.starting
	if s.store != nil {
		if err := s.store.EnsurePlayer(ctx, playerID, s.starting); err != nil {
			return nil, err
		}
		p, err := s.store.GetPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		bankroll = p.BankrollCents
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ps, ok := s.sessions[playerID]; ok {
		return ps, nil
	}
	ps := &playerSession{
		sess: &game.Session{
			PlayerID:      playerID,
			BankrollCents: bankroll,
			Rules:         s.rules,
		},
		rnd: rand.New(rand.NewSource(cryptoSeed())),
	}
	s.sessions[playerID] = ps
	return ps, nil
}

// persistSettlement mirrors a settled round to the store: payout credits,
// the round row and the lifetime stats. Called with ps.mu held.
func (s *Service) persistSettlement(ctx context.Context, ps *playerSession) {
	if s.store == nil || ps.roundID == "" {
		return
	}
	rs := ps.sess.Round
	out := rs.Outcome
	playerID := ps.sess.PlayerID

	for i, h := range rs.PlayerHands {
		credit := h.BetCents + out.Results[i].NetPayoutCents
		if credit <= 0 {
			continue
		}
		var err error
		if out.Results[i].Result == game.ResultSurrender {
			_, err = s.ledger.CreditRefund(ctx, playerID, ps.roundID, credit)
		} else {
			_, err = s.ledger.CreditPayout(ctx, playerID, ps.roundID, credit)
		}
		if err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Msg("persist payout credit failed")
		}
	}
	if err := s.store.FinishRound(ctx, ps.roundID, out.NetCents, out.Message); err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("persist round finish failed")
	}
	if err := s.store.ApplyRoundStats(ctx, playerID, roundStats(rs, ps.doubles, ps.splits)); err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("persist stats failed")
	}
	ps.roundID = ""
}

func roundStats(rs *game.RoundState, doubles, splits int) store.RoundStats {
	d := store.RoundStats{
		HandsPlayed: len(rs.Outcome.Results),
		Doubles:     doubles,
		Splits:      splits,
		NetCents:    rs.Outcome.NetCents,
	}
	for _, r := range rs.Outcome.Results {
		switch r.Result {
		case game.ResultWin:
			d.HandsWon++
		case game.ResultBlackjack:
			d.HandsWon++
			d.Blackjacks++
		case game.ResultPush:
			d.Pushes++
		case game.ResultSurrender:
			d.Surrenders++
		}
	}
	for _, h := range rs.PlayerHands {
		d.WageredCents += h.BetCents
	}
	return d
}

func activeBet(sess *game.Session) int64 {
	if sess.Round == nil {
		return 0
	}
	idx := sess.Round.ActiveHandIndex
	if idx < 0 || idx >= len(sess.Round.PlayerHands) {
		return 0
	}
	return sess.Round.PlayerHands[idx].BetCents
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
