package handanalyzer

import "videopoker/pkg/deck"

// rule matches a category against an analyzed hand
type rule struct {
	hand    Category
	matches func(h *HandAnalyzer) bool
}

func always(*HandAnalyzer) bool {
	return true
}

func kind(n int) func(h *HandAnalyzer) bool {
	return func(h *HandAnalyzer) bool {
		return h.canMakeKind(n)
	}
}

func hasFlush(h *HandAnalyzer) bool {
	return h.flush
}

func hasStraight(h *HandAnalyzer) bool {
	return h.straight > 0
}

func hasFullHouse(h *HandAnalyzer) bool {
	return h.fullHouse != nil
}

// standardRules is the precedence for jacks or better, highest first
var standardRules = []rule{
	{RoyalFlush, func(h *HandAnalyzer) bool { return h.flush && h.royal }},
	{StraightFlush, func(h *HandAnalyzer) bool { return h.flush && h.straight > 0 }},
	{FourOfAKind, kind(4)},
	{FullHouse, hasFullHouse},
	{Flush, hasFlush},
	{Straight, hasStraight},
	{ThreeOfAKind, kind(3)},
	{TwoPair, func(h *HandAnalyzer) bool { return h.countAt(0) == 2 && h.countAt(1) == 2 }},
	{JacksOrBetter, func(h *HandAnalyzer) bool { return h.countAt(0) == 2 && h.groups[0].Rank >= deck.Jack }},
	{HighCard, always},
}

// deucesWildRules is the precedence for deuces wild, highest first
var deucesWildRules = []rule{
	{NaturalRoyalFlush, func(h *HandAnalyzer) bool { return h.wilds == 0 && h.flush && h.royal }},
	{FourDeuces, func(h *HandAnalyzer) bool { return h.wilds == 4 }},
	{WildRoyalFlush, func(h *HandAnalyzer) bool { return h.wilds > 0 && h.flush && h.royal }},
	{FiveOfAKind, func(h *HandAnalyzer) bool { return h.wilds > 0 && h.canMakeKind(5) }},
	{StraightFlush, func(h *HandAnalyzer) bool { return h.flush && h.straight > 0 }},
	{FourOfAKind, kind(4)},
	{FullHouse, hasFullHouse},
	{Flush, hasFlush},
	{Straight, hasStraight},
	{ThreeOfAKind, kind(3)},
	{NoWin, always},
}

func rulesFor(v Variant) []rule {
	if v == DeucesWild {
		return deucesWildRules
	}

	return standardRules
}
