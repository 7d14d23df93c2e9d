package strategy

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"videopoker/internal/rng"
	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
)

// DefaultTieEpsilon is the EV difference below which two holds are considered equal
const DefaultTieEpsilon = 1e-9

// Decision is the estimated value of a single hold mask
type Decision struct {
	Mask HoldMask `json:"mask"`
	Estimate
}

// Optimizer finds the hold with the highest expected payout
type Optimizer struct {
	Estimator *Estimator

	// TieEpsilon makes two EVs equal; the hold keeping more cards wins the tie
	TieEpsilon float64

	// Parallelism is the number of masks evaluated at once
	Parallelism int

	Logger logrus.FieldLogger
}

// NewOptimizer returns an optimizer with the default tie epsilon that evaluates sequentially
func NewOptimizer(logger logrus.FieldLogger, estimator *Estimator) *Optimizer {
	return &Optimizer{
		Estimator:   estimator,
		TieEpsilon:  DefaultTieEpsilon,
		Parallelism: 1,
		Logger:      logger,
	}
}

// Evaluate estimates every hold mask
// The result is indexed by mask. Each mask samples from its own generator, so
// the result does not depend on Parallelism.
func (o *Optimizer) Evaluate(ctx context.Context, hand, remaining []deck.Card) ([]Decision, error) {
	if len(hand) != handanalyzer.HandSize {
		return nil, fmt.Errorf("%w: got %d", handanalyzer.ErrMalformedHand, len(hand))
	}

	parent := o.Estimator.Rand
	if parent == nil {
		parent = rng.Crypto{}
	}

	// split up front so every mask sees the same stream regardless of scheduling
	generators := make([]rng.Generator, NumMasks)
	for i := range generators {
		generators[i] = rng.Split(parent)
	}

	decisions := make([]Decision, NumMasks)
	evaluate := func(mask HoldMask) error {
		est := *o.Estimator
		est.Rand = generators[mask]

		estimate, err := est.ExpectedValue(mask.Apply(hand), remaining)
		if err != nil {
			return fmt.Errorf("mask %s: %w", mask, err)
		}

		decisions[mask] = Decision{Mask: mask, Estimate: estimate}
		return nil
	}

	if o.Parallelism <= 1 {
		for mask := NoneHeld; int(mask) < NumMasks; mask++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if err := evaluate(mask); err != nil {
				return nil, err
			}
		}

		return decisions, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for mask := NoneHeld; int(mask) < NumMasks; mask++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return evaluate(mask)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return decisions, nil
}

// BestHold returns the hold with the highest expected payout
// Neither the hand nor the remaining cards are modified.
func (o *Optimizer) BestHold(ctx context.Context, hand, remaining []deck.Card) (HoldMask, error) {
	decisions, err := o.Evaluate(ctx, hand, remaining)
	if err != nil {
		return NoneHeld, err
	}

	best := o.Best(decisions)
	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"hand":    deck.Hand(hand).String(),
			"variant": o.Estimator.Variant,
			"hold":    best.Mask.String(),
			"ev":      best.EV,
			"exact":   best.Exact,
		}).Debug("best hold")
	}

	return best.Mask, nil
}

// Best returns the best decision, scanning in order
// A later decision only replaces the current best if it is better; an equal
// EV (within TieEpsilon) holding the same number of cards keeps the earlier one.
func (o *Optimizer) Best(decisions []Decision) Decision {
	var best Decision
	for i, d := range decisions {
		if i == 0 || o.better(d, best) {
			best = d
		}
	}

	return best
}

// Rank returns the decisions sorted best first
func (o *Optimizer) Rank(decisions []Decision) []Decision {
	ranked := make([]Decision, len(decisions))
	copy(ranked, decisions)

	sort.SliceStable(ranked, func(i, j int) bool {
		return o.better(ranked[i], ranked[j])
	})

	return ranked
}

// better returns true if a beats b
func (o *Optimizer) better(a, b Decision) bool {
	if math.Abs(a.EV-b.EV) < o.TieEpsilon {
		return a.Mask.Count() > b.Mask.Count()
	}

	return a.EV > b.EV
}
