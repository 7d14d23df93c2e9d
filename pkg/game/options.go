package game

import (
	"errors"
	"fmt"

	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
)

// ErrInvalidDenomination is returned when the coin size is not offered for the variant
var ErrInvalidDenomination = errors.New("invalid denomination")

// Options contains options for dealing a round
type Options struct {
	Variant      handanalyzer.Variant `json:"variant"`
	BetLevel     int                  `json:"bet"`
	Denomination float64              `json:"denomination"`
	ShowBestPlay bool                 `json:"showBestPlay"`
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Variant:      handanalyzer.DeucesWild,
		BetLevel:     paytable.MaxBet,
		Denomination: 0.25,
		ShowBestPlay: false,
	}
}

// Validate returns an error if the options cannot be played
func (o Options) Validate() error {
	if !o.Variant.Valid() {
		return fmt.Errorf("%w: %q", handanalyzer.ErrUnknownVariant, o.Variant)
	}

	if err := paytable.ValidateBet(o.BetLevel); err != nil {
		return err
	}

	if !paytable.ValidDenomination(o.Variant, o.Denomination) {
		return fmt.Errorf("%w: $%.2f is not offered for %s", ErrInvalidDenomination, o.Denomination, o.Variant.Name())
	}

	return nil
}

// Wager returns the cost of a round in currency
func (o Options) Wager() float64 {
	return paytable.Credits(o.BetLevel, o.Denomination)
}

// NameFromOptions returns the name for the options
func NameFromOptions(opts Options) string {
	return fmt.Sprintf("%s ($%s x %d)", opts.Variant.Name(), FormatMoney(opts.Denomination), opts.BetLevel)
}

// FormatMoney formats a currency amount with two decimals
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
