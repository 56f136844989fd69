package game

type Phase string

const (
	PhasePlayerTurn Phase = "PLAYER_TURN"
	PhaseDealerTurn Phase = "DEALER_TURN"
	PhaseSettlement Phase = "SETTLEMENT"
)

type Action string

const (
	ActionHit       Action = "HIT"
	ActionStand     Action = "STAND"
	ActionDouble    Action = "DOUBLE"
	ActionSplit     Action = "SPLIT"
	ActionInsurance Action = "INSURANCE"
	ActionSurrender Action = "SURRENDER"
)

type HandStatus string

const (
	StatusActive    HandStatus = "ACTIVE"
	StatusStand     HandStatus = "STAND"
	StatusBust      HandStatus = "BUST"
	StatusBlackjack HandStatus = "BLACKJACK"
	StatusDone      HandStatus = "DONE"
)

type HandResult string

const (
	ResultWin       HandResult = "WIN"
	ResultLoss      HandResult = "LOSS"
	ResultPush      HandResult = "PUSH"
	ResultBlackjack HandResult = "BJ"
	ResultSurrender HandResult = "SURRENDER"
)

type PlayerHand struct {
	Cards       []Card
	Total       int
	Soft        bool
	BetCents    int64
	Status      HandStatus
	SplitAces   bool
	Surrendered bool
}

// DealerHand keeps the hole card internally but reports no total until it
// is revealed.
type DealerHand struct {
	Cards        []Card
	HoleRevealed bool
}

// Total returns the dealer total and whether it may be disclosed.
func (d DealerHand) Total() (int, bool) {
	if !d.HoleRevealed {
		return 0, false
	}
	total, _ := HandValue(d.Cards)
	return total, true
}

// UpCard is the dealer's visible first card.
func (d DealerHand) UpCard() Card {
	return d.Cards[0]
}

type HandOutcome struct {
	HandIndex      int
	Result         HandResult
	NetPayoutCents int64
}

type Outcome struct {
	Results  []HandOutcome
	NetCents int64
	Message  string
}

// RoundState is the aggregate for one round. BankrollCents is the projected
// balance with all escrowed bets already deducted.
type RoundState struct {
	Phase           Phase
	BankrollCents   int64
	BaseBetCents    int64
	Dealer          DealerHand
	PlayerHands     []*PlayerHand
	ActiveHandIndex int
	LegalActions    []Action
	Outcome         *Outcome
}

// clone deep-copies the round state so a transition can mutate freely and be
// committed into the session wholesale, or discarded on error.
func (rs *RoundState) clone() *RoundState {
	out := &RoundState{
		Phase:           rs.Phase,
		BankrollCents:   rs.BankrollCents,
		BaseBetCents:    rs.BaseBetCents,
		ActiveHandIndex: rs.ActiveHandIndex,
	}
	out.Dealer = DealerHand{
		Cards:        append([]Card{}, rs.Dealer.Cards...),
		HoleRevealed: rs.Dealer.HoleRevealed,
	}
	out.PlayerHands = make([]*PlayerHand, len(rs.PlayerHands))
	for i, h := range rs.PlayerHands {
		hc := *h
		hc.Cards = append([]Card{}, h.Cards...)
		out.PlayerHands[i] = &hc
	}
	out.LegalActions = append([]Action{}, rs.LegalActions...)
	if rs.Outcome != nil {
		oc := *rs.Outcome
		oc.Results = append([]HandOutcome{}, rs.Outcome.Results...)
		out.Outcome = &oc
	}
	return out
}

type HandSnapshot struct {
	Cards     []string `json:"cards"`
	Total     int      `json:"total"`
	Soft      bool     `json:"soft"`
	BetCents  int64    `json:"bet_cents"`
	Status    string   `json:"status"`
	SplitAces bool     `json:"split_aces,omitempty"`
}

type DealerSnapshot struct {
	Cards        []string `json:"cards"`
	Total        *int     `json:"total"`
	HoleRevealed bool     `json:"hole_revealed"`
}

type OutcomeSnapshot struct {
	Results  []HandOutcomeSnapshot `json:"results"`
	NetCents int64                 `json:"net_cents"`
	Message  string                `json:"message"`
}

type HandOutcomeSnapshot struct {
	HandIndex      int    `json:"hand_index"`
	Result         string `json:"result"`
	NetPayoutCents int64  `json:"net_payout_cents"`
}

type Snapshot struct {
	Phase           string           `json:"phase"`
	BankrollCents   int64            `json:"bankroll_cents"`
	BaseBetCents    int64            `json:"base_bet_cents"`
	Dealer          DealerSnapshot   `json:"dealer"`
	Hands           []HandSnapshot   `json:"hands"`
	ActiveHandIndex int              `json:"active_hand_index"`
	LegalActions    []string         `json:"legal_actions"`
	Outcome         *OutcomeSnapshot `json:"outcome,omitempty"`
}

// Snapshot renders the externally visible round state, masking the dealer's
// hole card until it has been revealed.
func (rs *RoundState) Snapshot() Snapshot {
	dealer := DealerSnapshot{HoleRevealed: rs.Dealer.HoleRevealed}
	if rs.Dealer.HoleRevealed {
		for _, c := range rs.Dealer.Cards {
			dealer.Cards = append(dealer.Cards, c.String())
		}
		if total, ok := rs.Dealer.Total(); ok {
			dealer.Total = &total
		}
	} else {
		dealer.Cards = []string{rs.Dealer.UpCard().String(), "??"}
	}

	hands := make([]HandSnapshot, 0, len(rs.PlayerHands))
	for _, h := range rs.PlayerHands {
		cards := make([]string, 0, len(h.Cards))
		for _, c := range h.Cards {
			cards = append(cards, c.String())
		}
		hands = append(hands, HandSnapshot{
			Cards:     cards,
			Total:     h.Total,
			Soft:      h.Soft,
			BetCents:  h.BetCents,
			Status:    string(h.Status),
			SplitAces: h.SplitAces,
		})
	}

	actions := make([]string, 0, len(rs.LegalActions))
	for _, a := range rs.LegalActions {
		actions = append(actions, string(a))
	}

	snap := Snapshot{
		Phase:           string(rs.Phase),
		BankrollCents:   rs.BankrollCents,
		BaseBetCents:    rs.BaseBetCents,
		Dealer:          dealer,
		Hands:           hands,
		ActiveHandIndex: rs.ActiveHandIndex,
		LegalActions:    actions,
	}
	if rs.Outcome != nil {
		oc := &OutcomeSnapshot{NetCents: rs.Outcome.NetCents, Message: rs.Outcome.Message}
		for _, r := range rs.Outcome.Results {
			oc.Results = append(oc.Results, HandOutcomeSnapshot{
				HandIndex:      r.HandIndex,
				Result:         string(r.Result),
				NetPayoutCents: r.NetPayoutCents,
			})
		}
		snap.Outcome = oc
	}
	return snap
}
