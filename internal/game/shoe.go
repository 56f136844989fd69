package game

import (
	"errors"
	"math/rand"
)

var ErrEmptyShoe = errors.New("empty_shoe")

// Shoe is an ordered supply of cards dealt strictly in sequence. The card
// slice never mutates after a shuffle; only the cursor moves.
type Shoe struct {
	cards []Card
	dealt int
	total int
}

// NewShoe builds an unshuffled shoe of numDecks decks in a fixed
// suit-major, rank-minor order.
func NewShoe(numDecks int) *Shoe {
	cards := make([]Card, 0, numDecks*52)
	for d := 0; d < numDecks; d++ {
		for s := Spades; s <= Clubs; s++ {
			for r := Ace; r <= King; r++ {
				cards = append(cards, Card{Rank: r, Suit: s})
			}
		}
	}
	return &Shoe{cards: cards, total: len(cards)}
}

// Shuffle returns a new shoe holding the same cards in a uniformly random
// permutation, with the cursor reset to zero.
func (s *Shoe) Shuffle(rnd *rand.Rand) *Shoe {
	cards := make([]Card, len(s.cards))
	copy(cards, s.cards)
	rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Shoe{cards: cards, total: len(cards)}
}

func (s *Shoe) Draw() (Card, error) {
	if s.dealt >= len(s.cards) {
		return Card{}, ErrEmptyShoe
	}
	c := s.cards[s.dealt]
	s.dealt++
	return c, nil
}

func (s *Shoe) DrawMany(n int) ([]Card, error) {
	if s.dealt+n > len(s.cards) {
		return nil, ErrEmptyShoe
	}
	out := make([]Card, n)
	for i := 0; i < n; i++ {
		out[i] = s.cards[s.dealt]
		s.dealt++
	}
	return out, nil
}

func (s *Shoe) Remaining() int {
	return len(s.cards) - s.dealt
}

func (s *Shoe) Total() int {
	return s.total
}

func (s *Shoe) Dealt() int {
	return s.dealt
}

// NeedsReshuffle reports whether the remaining fraction of the shoe is at or
// below threshold. Checked once per round start, never mid-round.
func (s *Shoe) NeedsReshuffle(threshold float64) bool {
	return float64(s.Remaining())/float64(s.total) <= threshold
}

// clone shares the immutable card slice and copies the cursor, so a
// transition can draw tentatively and commit only on success.
func (s *Shoe) clone() *Shoe {
	return &Shoe{cards: s.cards, dealt: s.dealt, total: s.total}
}
