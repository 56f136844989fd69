package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	PlayerID  string `env:"PLAYER_ID"`
	Rounds    int    `env:"BOT_ROUNDS" envDefault:"10"`
	BetCents  int64  `env:"BOT_BET_CENTS" envDefault:"1000"`
	DelayMs   int    `env:"BOT_DELAY_MS" envDefault:"250"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
