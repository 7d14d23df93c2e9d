package handanalyzer

import (
	"fmt"
	"strings"
)

// Category is a video poker hand category, i.e., royal flush
// The numeric value carries no ordering; use Variant.Categories() for precedence.
type Category int

// Constants for category
const (
	HighCard Category = iota
	NoWin
	JacksOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	WildRoyalFlush
	FourDeuces
	RoyalFlush
	NaturalRoyalFlush
)

var categoryNames = map[Category]string{
	HighCard:          "High Card",
	NoWin:             "No Win",
	JacksOrBetter:     "Jacks or Better",
	TwoPair:           "Two Pair",
	ThreeOfAKind:      "Three of a Kind",
	Straight:          "Straight",
	Flush:             "Flush",
	FullHouse:         "Full House",
	FourOfAKind:       "Four of a Kind",
	StraightFlush:     "Straight Flush",
	FiveOfAKind:       "Five of a Kind",
	WildRoyalFlush:    "Wild Royal Flush",
	FourDeuces:        "Four Deuces",
	RoyalFlush:        "Royal Flush",
	NaturalRoyalFlush: "Natural Royal Flush",
}

// String returns the display name of a category
func (c Category) String() string {
	name, ok := categoryNames[c]
	if !ok {
		panic(fmt.Sprintf("unknown category: %d", int(c)))
	}

	return name
}

// MarshalText encodes the category as its display name
func (c Category) MarshalText() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown category: %d", int(c))
	}

	return []byte(name), nil
}

// UnmarshalText decodes a category from its display name (case-insensitive)
func (c *Category) UnmarshalText(b []byte) error {
	category, err := ParseCategory(string(b))
	if err != nil {
		return err
	}

	*c = category
	return nil
}

// ParseCategory returns the category with the given display name
func ParseCategory(s string) (Category, error) {
	for category, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return category, nil
		}
	}

	return HighCard, fmt.Errorf("unknown category: %q", s)
}
