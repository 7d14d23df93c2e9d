// Package paytable holds the payout schedules for each variant
package paytable

import (
	"errors"
	"fmt"
	"math"

	"videopoker/pkg/handanalyzer"
)

// bet limits, in credits
const (
	MinBet = 1
	MaxBet = 5
)

// ErrInvalidBet is returned when a bet is outside MinBet and MaxBet
var ErrInvalidBet = errors.New("invalid bet")

// Table maps a category to its payout, in credits, at each bet level
// Index 0 is a one credit bet. Categories that are not in the table pay nothing.
type Table map[handanalyzer.Category][MaxBet]int

// Standard is the jacks or better schedule
var Standard = Table{
	handanalyzer.RoyalFlush:    {250, 500, 750, 1000, 4000},
	handanalyzer.StraightFlush: {50, 100, 150, 200, 250},
	handanalyzer.FourOfAKind:   {25, 50, 75, 100, 125},
	handanalyzer.FullHouse:     {9, 18, 27, 36, 45},
	handanalyzer.Flush:         {6, 12, 18, 24, 30},
	handanalyzer.Straight:      {4, 8, 12, 16, 20},
	handanalyzer.ThreeOfAKind:  {3, 6, 9, 12, 15},
	handanalyzer.TwoPair:       {2, 4, 6, 8, 10},
	handanalyzer.JacksOrBetter: {1, 2, 3, 4, 5},
}

// DeucesWild is the deuces wild schedule
var DeucesWild = Table{
	handanalyzer.NaturalRoyalFlush: {250, 500, 750, 1000, 4000},
	handanalyzer.FourDeuces:        {200, 400, 600, 800, 1000},
	handanalyzer.WildRoyalFlush:    {25, 50, 75, 100, 125},
	handanalyzer.FiveOfAKind:       {15, 30, 45, 60, 75},
	handanalyzer.StraightFlush:     {9, 18, 27, 36, 45},
	handanalyzer.FourOfAKind:       {5, 10, 15, 20, 25},
	handanalyzer.FullHouse:         {3, 6, 9, 12, 15},
	handanalyzer.Flush:             {2, 4, 6, 8, 10},
	handanalyzer.Straight:          {2, 4, 6, 8, 10},
	handanalyzer.ThreeOfAKind:      {1, 2, 3, 4, 5},
}

// Denominations returns the coin sizes offered for a variant
func Denominations(v handanalyzer.Variant) []float64 {
	if v == handanalyzer.DeucesWild {
		return []float64{0.25, 0.5, 1, 5, 10, 25}
	}

	return []float64{1, 5, 10, 25}
}

// ForVariant returns the schedule for the variant
func ForVariant(v handanalyzer.Variant) Table {
	if v == handanalyzer.DeucesWild {
		return DeucesWild
	}

	return Standard
}

// ValidateBet returns ErrInvalidBet if bet is not between MinBet and MaxBet
func ValidateBet(bet int) error {
	if bet < MinBet || bet > MaxBet {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidBet, bet, MinBet, MaxBet)
	}

	return nil
}

// ValidDenomination returns true if the variant offers the coin size
func ValidDenomination(v handanalyzer.Variant, denomination float64) bool {
	for _, d := range Denominations(v) {
		if d == denomination {
			return true
		}
	}

	return false
}

// Payout returns the credits won for the category at the bet level
// Returns 0 if the category does not pay or the bet is out of range.
func (t Table) Payout(c handanalyzer.Category, bet int) int {
	if ValidateBet(bet) != nil {
		return 0
	}

	pays, ok := t[c]
	if !ok {
		return 0
	}

	return pays[bet-1]
}

// Payout is a convenience for ForVariant(v).Payout(c, bet)
func Payout(c handanalyzer.Category, bet int, v handanalyzer.Variant) int {
	return ForVariant(v).Payout(c, bet)
}

// Row is a single line of a pay table, ready for display
type Row struct {
	Category handanalyzer.Category `json:"category"`
	Pays     [MaxBet]int           `json:"pays"`
}

// Rows returns the paying categories of the variant, highest first
func (t Table) Rows(v handanalyzer.Variant) []Row {
	rows := make([]Row, 0, len(t))
	for _, c := range v.Categories() {
		pays, ok := t[c]
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Category: c,
			Pays:     pays,
		})
	}

	return rows
}

// Credits converts a payout in credits to currency
// The result is rounded to the cent.
func Credits(units int, denomination float64) float64 {
	return math.Round(float64(units)*denomination*100) / 100
}
