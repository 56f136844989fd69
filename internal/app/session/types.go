package session

import "downcard/internal/game"

// TableState is the per-player view returned by the state operation. Round
// is nil until the player's first deal.
type TableState struct {
	PlayerID      string
	BankrollCents int64
	Round         *game.RoundState
}
