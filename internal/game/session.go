package game

// Session is the aggregate the engine operates on: one shoe, one rule set,
// one bankroll and at most one round. The engine requires exclusive access
// for the duration of one transition; callers serialize per player. The
// engine itself keeps no state between calls.
type Session struct {
	PlayerID      string
	BankrollCents int64
	Rules         Rules
	Shoe          *Shoe
	Round         *RoundState
}
