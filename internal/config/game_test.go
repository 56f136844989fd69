package config

import "testing"

func TestLoadGameDefaults(t *testing.T) {
	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Decks != 6 {
		t.Fatalf("Decks = %d, want 6", cfg.Decks)
	}
	if cfg.BlackjackPayout != 1.5 {
		t.Fatalf("BlackjackPayout = %v, want 1.5", cfg.BlackjackPayout)
	}
	if cfg.DoubleOn != "any" {
		t.Fatalf("DoubleOn = %q, want any", cfg.DoubleOn)
	}
	if cfg.DealerHitsSoft17 || cfg.CanResplit || cfg.InsuranceAllowed || cfg.SurrenderAllowed {
		t.Fatalf("unexpected rule defaults: %+v", cfg)
	}
	if !cfg.CanSplit || !cfg.SplitAcesOneCard {
		t.Fatalf("unexpected rule defaults: %+v", cfg)
	}
	if cfg.StartingBankrollCents != 100000 {
		t.Fatalf("StartingBankrollCents = %d, want 100000", cfg.StartingBankrollCents)
	}
}

func TestLoadGameParseTypes(t *testing.T) {
	t.Setenv("GAME_DECKS", "8")
	t.Setenv("GAME_DEALER_HITS_SOFT_17", "true")
	t.Setenv("GAME_BLACKJACK_PAYOUT", "1.2")
	t.Setenv("GAME_DOUBLE_ON", "10-11")
	t.Setenv("GAME_STARTING_BANKROLL_CENTS", "50000")

	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Decks != 8 || !cfg.DealerHitsSoft17 || cfg.BlackjackPayout != 1.2 {
		t.Fatalf("unexpected game config: %+v", cfg)
	}
	if cfg.DoubleOn != "10-11" || cfg.StartingBankrollCents != 50000 {
		t.Fatalf("unexpected game config: %+v", cfg)
	}
}
