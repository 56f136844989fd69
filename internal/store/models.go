package store

import "time"

type Player struct {
	ID                string
	BankrollCents     int64
	HandsPlayed       int
	HandsWon          int
	Blackjacks        int
	Doubles           int
	Splits            int
	Pushes            int
	Surrenders        int
	CurrentStreak     int
	BestStreak        int
	BiggestWinCents   int64
	BiggestLossCents  int64
	NetProfitCents    int64
	TotalWageredCents int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Round struct {
	ID           string
	PlayerID     string
	BaseBetCents int64
	NetCents     *int64
	Message      string
	StartedAt    time.Time
	EndedAt      *time.Time
}

type RoundAction struct {
	ID        string
	RoundID   string
	PlayerID  string
	Action    string
	HandIndex int
	CreatedAt time.Time
}

type LedgerEntry struct {
	ID          string
	PlayerID    string
	Type        string
	AmountCents int64
	RefType     string
	RefID       string
	CreatedAt   time.Time
}

type LeaderboardEntry struct {
	PlayerID       string
	BankrollCents  int64
	NetProfitCents int64
	HandsPlayed    int
	HandsWon       int
	BestStreak     int
}

// RoundStats is the per-round delta folded into a player row at settlement.
type RoundStats struct {
	HandsPlayed  int
	HandsWon     int
	Blackjacks   int
	Pushes       int
	Surrenders   int
	Doubles      int
	Splits       int
	NetCents     int64
	WageredCents int64
}
