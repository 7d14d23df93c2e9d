package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"videopoker/pkg/deck"
)

// HandSize is the number of cards in a video poker hand
const HandSize = 5

// ErrMalformedHand is returned when a hand does not contain exactly five cards
var ErrMalformedHand = errors.New("hand must contain exactly 5 cards")

// RankCount is the number of natural cards of a single rank
type RankCount struct {
	Rank  int `json:"rank"`
	Count int `json:"count"`
}

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	variant Variant

	// naturals are sorted by rank, highest first
	naturals []deck.Card
	wilds    int
	ranks    rankSet
	groups   []RankCount
	flush    bool
	straight int
	royal    bool

	fullHouse []int

	hand Category
}

// New will return a new HandAnalyzer instance
func New(cards []deck.Card, variant Variant) (*HandAnalyzer, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrMalformedHand, len(cards))
	}

	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	h := &HandAnalyzer{
		variant:  variant,
		naturals: make([]deck.Card, 0, HandSize),
	}

	for _, card := range cards {
		if variant.IsWild(card) {
			h.wilds++
		} else {
			h.naturals = append(h.naturals, card)
		}
	}

	// naturals is our own slice; the caller's cards keep their order
	sort.Slice(h.naturals, func(i, j int) bool {
		return h.naturals[i].Rank > h.naturals[j].Rank
	})

	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// Classify returns the category of the five cards under the variant
func Classify(cards []deck.Card, variant Variant) (Category, error) {
	h, err := New(cards, variant)
	if err != nil {
		return HighCard, err
	}

	return h.GetHand(), nil
}

// analyzeHand computes the features every rule is evaluated against
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.flush = true
	for i, card := range h.naturals {
		h.ranks |= 1 << uint(card.Rank)

		if i > 0 && card.Suit != h.naturals[0].Suit {
			h.flush = false
		}

		// naturals are sorted, so equal ranks are adjacent
		if n := len(h.groups); n > 0 && h.groups[n-1].Rank == card.Rank {
			h.groups[n-1].Count++
		} else {
			h.groups = append(h.groups, RankCount{Rank: card.Rank, Count: 1})
		}
	}

	sort.SliceStable(h.groups, func(i, j int) bool {
		return h.groups[i].Count > h.groups[j].Count
	})

	h.straight = bestStraight(h.ranks, len(h.naturals), h.wilds)
	h.royal = len(h.groups) == len(h.naturals) && fitsWindow(windows[deck.Ace], h.ranks, h.wilds)
	h.fullHouse = h.findFullHouse()
}

// calculateHand walks the variant's rules, highest first, and keeps the first match
func (h *HandAnalyzer) calculateHand() {
	for _, r := range rulesFor(h.variant) {
		if r.matches(h) {
			h.hand = r.hand
			return
		}
	}

	panic(fmt.Sprintf("no rule matched variant %q", h.variant))
}

// topCount returns the size of the largest natural group
func (h *HandAnalyzer) topCount() int {
	if len(h.groups) == 0 {
		return 0
	}

	return h.groups[0].Count
}

// topRank returns the rank of the largest natural group
// With no naturals the wilds play as aces.
func (h *HandAnalyzer) topRank() int {
	if len(h.groups) == 0 {
		return deck.Ace
	}

	return h.groups[0].Rank
}

// countAt returns the size of the i-th natural group, or 0
func (h *HandAnalyzer) countAt(i int) int {
	if i >= len(h.groups) {
		return 0
	}

	return h.groups[i].Count
}

func (h *HandAnalyzer) canMakeKind(n int) bool {
	return h.topCount()+h.wilds >= n
}

// findFullHouse searches (triple rank, pair rank) assignments, highest triple first
// A rank of 0 is a group made entirely of wilds. The search returns nil if
// the wilds cannot cover what the naturals are missing.
func (h *HandAnalyzer) findFullHouse() []int {
	// more than two natural ranks can never be a full house
	if len(h.groups) > 2 {
		return nil
	}

	candidates := make([]RankCount, 0, len(h.groups)+1)
	candidates = append(candidates, h.groups...)
	candidates = append(candidates, RankCount{})

	for _, trip := range candidates {
		for _, pair := range candidates {
			if trip.Rank != 0 && trip.Rank == pair.Rank {
				continue
			}

			if trip.Count > 3 || pair.Count > 2 {
				continue
			}

			// every natural has to belong to one of the two groups
			if trip.Count+pair.Count != len(h.naturals) {
				continue
			}

			if (3-trip.Count)+(2-pair.Count) <= h.wilds {
				return []int{trip.Rank, pair.Rank}
			}
		}
	}

	return nil
}

// GetHand will return the category the cards make
func (h *HandAnalyzer) GetHand() Category {
	return h.hand
}

// GetVariant returns the variant the hand was analyzed under
func (h *HandAnalyzer) GetVariant() Variant {
	return h.variant
}

// GetGroups returns the natural rank groups
// Groups are ordered by count, then rank, highest first.
func (h *HandAnalyzer) GetGroups() []RankCount {
	groups := make([]RankCount, len(h.groups))
	copy(groups, h.groups)

	return groups
}

// GetWilds returns the number of wild cards in the hand
func (h *HandAnalyzer) GetWilds() int {
	return h.wilds
}

// GetStraight returns the high card of the best run the hand can complete
func (h *HandAnalyzer) GetStraight() (int, bool) {
	return h.straight, h.straight > 0
}

// GetFlush returns the ranks in the flush, highest first
// Wild cards play as aces.
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if !h.flush {
		return nil, false
	}

	ranks := make([]int, 0, HandSize)
	for i := 0; i < h.wilds; i++ {
		ranks = append(ranks, deck.Ace)
	}

	for _, card := range h.naturals {
		ranks = append(ranks, card.Rank)
	}

	return ranks, true
}

// GetFourOfAKind returns the rank of the four of a kind
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if !h.canMakeKind(4) {
		return 0, false
	}

	return h.topRank(), true
}

// GetFullHouse returns the triple rank and the pair rank
// A rank of 0 means the group is made of wild cards only.
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if h.fullHouse == nil {
		return nil, false
	}

	return []int{h.fullHouse[0], h.fullHouse[1]}, true
}

// GetThreeOfAKind returns the rank of the three of a kind
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if !h.canMakeKind(3) {
		return 0, false
	}

	return h.topRank(), true
}

// GetTwoPair returns the rank of the high pair and the low pair
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if h.wilds > 0 || h.countAt(0) != 2 || h.countAt(1) != 2 {
		return nil, false
	}

	return []int{h.groups[0].Rank, h.groups[1].Rank}, true
}

// GetPair returns the rank of the best pair
func (h *HandAnalyzer) GetPair() (int, bool) {
	if !h.canMakeKind(2) {
		return 0, false
	}

	return h.topRank(), true
}

// GetHighCard returns the highest natural rank, or 0 if every card is wild
func (h *HandAnalyzer) GetHighCard() int {
	if len(h.naturals) == 0 {
		return 0
	}

	return h.naturals[0].Rank
}
