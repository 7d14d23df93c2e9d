// Package strategy estimates the value of hold decisions and picks the best one
package strategy

import (
	"errors"
	"fmt"

	"videopoker/internal/rng"
	"videopoker/pkg/combin"
	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
)

// defaults for the estimator
const (
	DefaultExactThreshold = 6000
	DefaultSampleCount    = 2500
)

// ErrTooManyHeld is returned when more than five cards are held
var ErrTooManyHeld = errors.New("cannot hold more than 5 cards")

// Estimate is the expected payout of a hold, in credits
type Estimate struct {
	EV     float64 `json:"ev"`
	Trials int     `json:"trials"`
	Exact  bool    `json:"exact"`
}

// Estimator computes the expected payout of a hold
// Draws with at most ExactThreshold outcomes are enumerated; larger ones are
// estimated from SampleCount random draws.
type Estimator struct {
	Variant        handanalyzer.Variant
	BetLevel       int
	ExactThreshold int
	SampleCount    int

	// Rand is only used for sampling. It is not safe to share an Estimator
	// across goroutines unless Rand is.
	Rand rng.Generator
}

// NewEstimator returns an estimator with the default threshold and sample size
func NewEstimator(variant handanalyzer.Variant, betLevel int) *Estimator {
	return &Estimator{
		Variant:        variant,
		BetLevel:       betLevel,
		ExactThreshold: DefaultExactThreshold,
		SampleCount:    DefaultSampleCount,
		Rand:           rng.Crypto{},
	}
}

// ExpectedValue returns the expected payout of keeping held and drawing the rest from pool
// Neither slice is modified.
func (e *Estimator) ExpectedValue(held, pool []deck.Card) (Estimate, error) {
	if len(held) > handanalyzer.HandSize {
		return Estimate{}, fmt.Errorf("%w: holding %d", ErrTooManyHeld, len(held))
	}

	if err := paytable.ValidateBet(e.BetLevel); err != nil {
		return Estimate{}, err
	}

	table := paytable.ForVariant(e.Variant)
	draw := handanalyzer.HandSize - len(held)

	hand := make([]deck.Card, handanalyzer.HandSize)
	copy(hand, held)

	payout := func() (int, error) {
		c, err := handanalyzer.Classify(hand, e.Variant)
		if err != nil {
			return 0, err
		}

		return table.Payout(c, e.BetLevel), nil
	}

	if draw == 0 {
		units, err := payout()
		if err != nil {
			return Estimate{}, err
		}

		return Estimate{EV: float64(units), Trials: 1, Exact: true}, nil
	}

	total := combin.Count(len(pool), draw)
	if total == 0 {
		return Estimate{Exact: true}, nil
	}

	if total <= e.ExactThreshold {
		return e.enumerate(hand[:len(held)], pool, draw, payout)
	}

	return e.sample(hand[:len(held)], pool, draw, total, payout)
}

func (e *Estimator) enumerate(hand, pool []deck.Card, draw int, payout func() (int, error)) (Estimate, error) {
	sum, trials := 0, 0
	for idx := range combin.Combinations(len(pool), draw) {
		combin.Select(hand[len(hand):], pool, idx)

		units, err := payout()
		if err != nil {
			return Estimate{}, err
		}

		sum += units
		trials++
	}

	return Estimate{
		EV:     float64(sum) / float64(trials),
		Trials: trials,
		Exact:  true,
	}, nil
}

func (e *Estimator) sample(hand, pool []deck.Card, draw, total int, payout func() (int, error)) (Estimate, error) {
	g := e.Rand
	if g == nil {
		g = rng.Crypto{}
	}

	samples := e.SampleCount
	if samples <= 0 {
		samples = DefaultSampleCount
	}

	samples = min(samples, total)

	idx := make([]int, 0, draw)
	sum := 0
	for i := 0; i < samples; i++ {
		idx = sampleIndices(g, idx, len(pool), draw)
		combin.Select(hand[len(hand):], pool, idx)

		units, err := payout()
		if err != nil {
			return Estimate{}, err
		}

		sum += units
	}

	return Estimate{
		EV:     float64(sum) / float64(samples),
		Trials: samples,
	}, nil
}

// sampleIndices picks k distinct indices from [0,n) by rejection
// k is at most five, so a linear scan of the chosen indices is enough.
func sampleIndices(g rng.Generator, dst []int, n, k int) []int {
	dst = dst[:0]
	for len(dst) < k {
		i := g.Intn(n)

		seen := false
		for _, j := range dst {
			if i == j {
				seen = true
				break
			}
		}

		if !seen {
			dst = append(dst, i)
		}
	}

	return dst
}
