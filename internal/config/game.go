package config

import "github.com/caarlos0/env/v11"

type GameConfig struct {
	Decks              int     `env:"GAME_DECKS" envDefault:"6"`
	DealerHitsSoft17   bool    `env:"GAME_DEALER_HITS_SOFT_17" envDefault:"false"`
	BlackjackPayout    float64 `env:"GAME_BLACKJACK_PAYOUT" envDefault:"1.5"`
	DoubleOn           string  `env:"GAME_DOUBLE_ON" envDefault:"any"`
	CanSplit           bool    `env:"GAME_CAN_SPLIT" envDefault:"true"`
	CanResplit         bool    `env:"GAME_CAN_RESPLIT" envDefault:"false"`
	SplitAcesOneCard   bool    `env:"GAME_SPLIT_ACES_ONE_CARD" envDefault:"true"`
	InsuranceAllowed   bool    `env:"GAME_INSURANCE_ALLOWED" envDefault:"false"`
	SurrenderAllowed   bool    `env:"GAME_SURRENDER_ALLOWED" envDefault:"false"`
	ReshuffleThreshold float64 `env:"GAME_RESHUFFLE_THRESHOLD" envDefault:"0.25"`

	StartingBankrollCents int64 `env:"GAME_STARTING_BANKROLL_CENTS" envDefault:"100000"`
}

func LoadGame() (GameConfig, error) {
	var cfg GameConfig
	err := env.Parse(&cfg)
	return cfg, err
}
