package handanalyzer

import (
	"errors"
	"fmt"
	"strings"

	"videopoker/pkg/deck"
)

// ErrUnknownVariant is returned when a variant name is not recognized
var ErrUnknownVariant = errors.New("unknown variant")

// WildRank is the rank that is wild in the DeucesWild variant
const WildRank = deck.Two

// Variant is a game variant. It decides which cards are wild and which
// hand categories exist.
type Variant string

// Variant constants
const (
	Standard   Variant = "jacks-or-better"
	DeucesWild Variant = "deuces-wild"
)

// Variants is every supported variant
var Variants = []Variant{Standard, DeucesWild}

// ParseVariant parses a variant name
// A few common aliases are accepted, i.e., "job" or "deuces"
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Standard), "standard", "job", "jacks":
		return Standard, nil
	case string(DeucesWild), "wild", "deuces":
		return DeucesWild, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Valid returns true if the variant is supported
func (v Variant) Valid() bool {
	return v == Standard || v == DeucesWild
}

// Name returns a human friendly name
func (v Variant) Name() string {
	switch v {
	case Standard:
		return "Jacks or Better"
	case DeucesWild:
		return "Deuces Wild"
	}

	return string(v)
}

// IsWild returns true if the card is wild in this variant
func (v Variant) IsWild(card deck.Card) bool {
	return v == DeucesWild && card.Rank == WildRank
}

// Categories returns the categories this variant can produce, highest first
func (v Variant) Categories() []Category {
	rules := rulesFor(v)
	categories := make([]Category, len(rules))
	for i, r := range rules {
		categories[i] = r.hand
	}

	return categories
}

// Precedence returns the position of hand in Categories(), 0 being the best
// Returns -1 if the variant cannot produce the hand.
func (v Variant) Precedence(hand Category) int {
	for i, r := range rulesFor(v) {
		if r.hand == hand {
			return i
		}
	}

	return -1
}
