package config

import "testing"

func TestLoadBotDefaults(t *testing.T) {
	cfg, err := LoadBot()
	if err != nil {
		t.Fatalf("LoadBot() error = %v", err)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL = %q, want http://localhost:8080", cfg.ServerURL)
	}
	if cfg.Rounds != 10 || cfg.BetCents != 1000 {
		t.Fatalf("unexpected bot config: %+v", cfg)
	}
}

func TestLoadBotOverrides(t *testing.T) {
	t.Setenv("SERVER_URL", "http://127.0.0.1:9000")
	t.Setenv("PLAYER_ID", "bot-a")
	t.Setenv("BOT_ROUNDS", "3")
	t.Setenv("BOT_BET_CENTS", "500")

	cfg, err := LoadBot()
	if err != nil {
		t.Fatalf("LoadBot() error = %v", err)
	}
	if cfg.ServerURL != "http://127.0.0.1:9000" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.PlayerID != "bot-a" || cfg.Rounds != 3 || cfg.BetCents != 500 {
		t.Fatalf("unexpected bot config: %+v", cfg)
	}
}
