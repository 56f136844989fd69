package game

import (
	"fmt"
	"math"
)

// blackjackPayoutCents converts the rule multiplier to basis points once so
// the payout itself stays integer arithmetic: floor(bet * payout).
func blackjackPayoutCents(betCents int64, rules Rules) int64 {
	bps := int64(math.Round(rules.BlackjackPayout * 100))
	return betCents * bps / 100
}

// SettleHand compares one finished player hand to the dealer hand. Checks
// run in strict order: surrender, player bust, player blackjack, dealer
// blackjack, dealer bust, total comparison. The surrendered half-bet rounds
// against the player on odd cents. Only a hand dealt as a natural carries
// StatusBlackjack; a two-card 21 built after a split settles as a plain 21.
func SettleHand(hand *PlayerHand, dealerCards []Card, rules Rules) HandOutcome {
	betCents := hand.BetCents
	if hand.Surrendered {
		return HandOutcome{Result: ResultSurrender, NetPayoutCents: betCents/2 - betCents}
	}

	if IsBust(hand.Cards) {
		return HandOutcome{Result: ResultLoss, NetPayoutCents: -betCents}
	}

	playerBJ := hand.Status == StatusBlackjack
	dealerBJ := IsBlackjack(dealerCards)

	if playerBJ {
		if dealerBJ {
			return HandOutcome{Result: ResultPush}
		}
		return HandOutcome{Result: ResultBlackjack, NetPayoutCents: blackjackPayoutCents(betCents, rules)}
	}
	if dealerBJ {
		return HandOutcome{Result: ResultLoss, NetPayoutCents: -betCents}
	}
	if IsBust(dealerCards) {
		return HandOutcome{Result: ResultWin, NetPayoutCents: betCents}
	}

	playerTotal, _ := HandValue(hand.Cards)
	dealerTotal, _ := HandValue(dealerCards)
	switch {
	case playerTotal > dealerTotal:
		return HandOutcome{Result: ResultWin, NetPayoutCents: betCents}
	case playerTotal < dealerTotal:
		return HandOutcome{Result: ResultLoss, NetPayoutCents: -betCents}
	default:
		return HandOutcome{Result: ResultPush}
	}
}

// SettleRound settles every hand against the dealer, sums the signed
// payouts and builds the round summary message.
func SettleRound(hands []*PlayerHand, dealerCards []Card, rules Rules) *Outcome {
	out := &Outcome{}
	for i, h := range hands {
		r := SettleHand(h, dealerCards, rules)
		r.HandIndex = i
		out.Results = append(out.Results, r)
		out.NetCents += r.NetPayoutCents
	}
	out.Message = summaryMessage(out.Results)
	return out
}

func summaryMessage(results []HandOutcome) string {
	if len(results) == 1 {
		switch results[0].Result {
		case ResultBlackjack:
			return "Blackjack!"
		case ResultWin:
			return "You win!"
		case ResultLoss:
			return "Dealer wins"
		case ResultPush:
			return "Push"
		case ResultSurrender:
			return "Surrendered"
		}
		return ""
	}

	wins, losses, pushes := 0, 0, 0
	for _, r := range results {
		switch r.Result {
		case ResultWin, ResultBlackjack:
			wins++
		case ResultLoss:
			losses++
		case ResultPush:
			pushes++
		}
	}

	msg := ""
	if losses > wins {
		msg = fmt.Sprintf("%s, %s", countPhrase(losses, "loss", "losses"), countPhrase(wins, "win", "wins"))
	} else {
		msg = fmt.Sprintf("%s, %s", countPhrase(wins, "win", "wins"), countPhrase(losses, "loss", "losses"))
	}
	if pushes > 0 {
		msg += fmt.Sprintf(", %s", countPhrase(pushes, "push", "pushes"))
	}
	return msg
}

func countPhrase(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
