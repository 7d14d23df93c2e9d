package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Duplicate returns the first card that appears more than once
func (h Hand) Duplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return Card{}, false
}

// Without returns the cards in h that are not in other
func (h Hand) Without(other []Card) Hand {
	out := make(Hand, 0, len(h))
	for _, c := range h {
		if !Hand(other).HasCard(c) {
			out = append(out, c)
		}
	}

	return out
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
