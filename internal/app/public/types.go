package public

import "time"

type LeaderboardResponse struct {
	Items  []LeaderboardItem `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type LeaderboardItem struct {
	Rank           int    `json:"rank"`
	PlayerID       string `json:"player_id"`
	BankrollCents  int64  `json:"bankroll_cents"`
	NetProfitCents int64  `json:"net_profit_cents"`
	HandsPlayed    int    `json:"hands_played"`
	HandsWon       int    `json:"hands_won"`
	BestStreak     int    `json:"best_streak"`
}

type PlayerProfile struct {
	PlayerID          string    `json:"player_id"`
	BankrollCents     int64     `json:"bankroll_cents"`
	HandsPlayed       int       `json:"hands_played"`
	HandsWon          int       `json:"hands_won"`
	WinRate           float64   `json:"win_rate"`
	Blackjacks        int       `json:"blackjacks"`
	Doubles           int       `json:"doubles"`
	Splits            int       `json:"splits"`
	Pushes            int       `json:"pushes"`
	Surrenders        int       `json:"surrenders"`
	CurrentStreak     int       `json:"current_streak"`
	BestStreak        int       `json:"best_streak"`
	BiggestWinCents   int64     `json:"biggest_win_cents"`
	BiggestLossCents  int64     `json:"biggest_loss_cents"`
	NetProfitCents    int64     `json:"net_profit_cents"`
	TotalWageredCents int64     `json:"total_wagered_cents"`
	CreatedAt         time.Time `json:"created_at"`
}
