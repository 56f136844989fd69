package game

// HandValue computes the best blackjack total of a hand. Aces count as 11
// and are demoted to 1 one at a time while the total exceeds 21. soft is
// true when at least one ace is still counted as 11.
func HandValue(cards []Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.value()
		if c.Rank == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack reports a natural: exactly two cards, one ace plus one
// ten-value card. A 21 made of three or more cards is never a blackjack.
func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	hasAce := cards[0].Rank == Ace || cards[1].Rank == Ace
	hasTen := cards[0].value() == 10 || cards[1].value() == 10
	return hasAce && hasTen
}

func IsBust(cards []Card) bool {
	total, _ := HandValue(cards)
	return total > 21
}

// CanSplit reports whether a two-card hand is split-eligible. All ten-value
// cards share one equivalence class; every other rank is its own class.
func CanSplit(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	return cards[0].splitRank() == cards[1].splitRank()
}
