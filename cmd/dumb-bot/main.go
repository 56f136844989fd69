// dumb-bot plays rounds against a running game server over the REST API
// with the most naive strategy possible: hit below 17, stand otherwise.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"downcard/internal/config"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type roundView struct {
	Phase string `json:"phase"`
	Hands []struct {
		Total  int    `json:"total"`
		Status string `json:"status"`
	} `json:"hands"`
	ActiveHandIndex int      `json:"active_hand_index"`
	LegalActions    []string `json:"legal_actions"`
	Outcome         *struct {
		NetCents int64  `json:"net_cents"`
		Message  string `json:"message"`
	} `json:"outcome"`
}

type stateView struct {
	PlayerID      string     `json:"player_id"`
	BankrollCents int64      `json:"bankroll_cents"`
	Round         *roundView `json:"round"`
	Error         string     `json:"error"`
}

type bot struct {
	cfg    config.BotConfig
	client *http.Client
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadBot()
	if err != nil {
		panic(err)
	}
	if cfg.PlayerID == "" {
		cfg.PlayerID = "bot-" + uuid.NewString()
	}
	b := &bot{cfg: cfg, client: &http.Client{Timeout: 10 * time.Second}}

	log.Info().Str("player_id", cfg.PlayerID).Str("server", cfg.ServerURL).Int("rounds", cfg.Rounds).Msg("bot starting")
	var net int64
	for i := 0; i < cfg.Rounds; i++ {
		outcome, err := b.playRound()
		if err != nil {
			log.Error().Err(err).Int("round", i+1).Msg("round failed")
			return
		}
		net += outcome
		log.Info().Int("round", i+1).Int64("net_cents", outcome).Int64("running_cents", net).Msg("round done")
		time.Sleep(time.Duration(cfg.DelayMs) * time.Millisecond)
	}
	log.Info().Int64("net_cents", net).Msg("bot finished")
}

func (b *bot) playRound() (int64, error) {
	st, err := b.post("/api/round/deal", map[string]any{"bet_cents": b.cfg.BetCents})
	if err != nil {
		return 0, err
	}
	for st.Round != nil && st.Round.Phase == "PLAYER_TURN" {
		action := decide(st.Round)
		st, err = b.post("/api/round/action", map[string]any{
			"action":     action,
			"hand_index": st.Round.ActiveHandIndex,
		})
		if err != nil {
			return 0, err
		}
	}
	if st.Round == nil || st.Round.Outcome == nil {
		return 0, fmt.Errorf("round ended without outcome")
	}
	return st.Round.Outcome.NetCents, nil
}

// decide picks the active hand's next move: hit below 17 when legal,
// otherwise stand.
func decide(r *roundView) string {
	if r.ActiveHandIndex >= 0 && r.ActiveHandIndex < len(r.Hands) {
		if r.Hands[r.ActiveHandIndex].Total < 17 && hasAction(r.LegalActions, "HIT") {
			return "HIT"
		}
	}
	return "STAND"
}

func hasAction(actions []string, want string) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

func (b *bot) post(path string, body map[string]any) (*stateView, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, b.cfg.ServerURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Player-ID", b.cfg.PlayerID)
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var st stateView
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", path, st.Error)
	}
	return &st, nil
}
