package game

// DealerShouldHit applies the house drawing rule: hit below 17, stand above
// 17, and at exactly 17 hit only a soft 17 under H17 rules.
func DealerShouldHit(cards []Card, rules Rules) bool {
	total, soft := HandValue(cards)
	if total < 17 {
		return true
	}
	if total > 17 {
		return false
	}
	return soft && rules.DealerHitsSoft17
}

// PlayDealer draws via draw until the house rule says stand or the hand
// busts, returning the completed hand.
func PlayDealer(initial []Card, rules Rules, draw func() (Card, error)) ([]Card, error) {
	cards := append([]Card{}, initial...)
	for DealerShouldHit(cards, rules) && !IsBust(cards) {
		c, err := draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
