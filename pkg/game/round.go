// Package game deals and settles single hands of video poker
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"videopoker/internal/rng"
	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
	"videopoker/pkg/strategy"
)

// errors
var (
	ErrInvalidPhase = errors.New("action is not allowed in this phase")
	ErrInvalidSlot  = errors.New("invalid hand slot")
)

// Phase is the lifecycle stage of a round
type Phase string

// Phase constants
const (
	PhaseDealt    Phase = "dealt"
	PhaseComplete Phase = "complete"
)

// Outcome is the final hand of a round and what it paid
type Outcome struct {
	Hand        []deck.Card           `json:"hand"`
	Held        strategy.HoldMask     `json:"held"`
	Category    handanalyzer.Category `json:"category"`
	PayoutUnits int                   `json:"payoutUnits"`
	Payout      float64               `json:"payout"`
}

// Round is a single hand: deal, hold, draw
type Round struct {
	ID uuid.UUID

	options   Options
	deck      *deck.Deck
	hand      []deck.Card
	held      strategy.HoldMask
	phase     Phase
	outcome   *Outcome
	optimizer *strategy.Optimizer
	logger    logrus.FieldLogger
}

// NewRound shuffles a fresh deck and deals five cards
// optimizer supplies the tuning used for recommendations; the round's own
// variant and bet level always apply. A nil optimizer uses the defaults.
func NewRound(logger logrus.FieldLogger, opts Options, g rng.Generator, optimizer *strategy.Optimizer) (*Round, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	d := deck.New()
	d.Shuffle(g)

	hand, err := d.Deal(handanalyzer.HandSize)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	logger = logger.WithField("round", id.String())

	if optimizer == nil {
		optimizer = strategy.NewOptimizer(logger, strategy.NewEstimator(opts.Variant, opts.BetLevel))
	}

	r := &Round{
		ID:        id,
		options:   opts,
		deck:      d,
		hand:      hand,
		phase:     PhaseDealt,
		optimizer: optimizer,
		logger:    logger,
	}

	logger.WithFields(logrus.Fields{
		"variant": opts.Variant,
		"bet":     opts.BetLevel,
		"hand":    deck.Hand(hand).String(),
	}).Debug("dealt")

	return r, nil
}

// Options returns the options the round was dealt with
func (r *Round) Options() Options {
	return r.options
}

// Hand returns a copy of the current hand
func (r *Round) Hand() []deck.Card {
	return deck.Hand(r.hand).Clone()
}

// Held returns the hold mask
func (r *Round) Held() strategy.HoldMask {
	return r.held
}

// Phase returns the lifecycle stage
func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the result, or nil until the round is drawn
func (r *Round) Outcome() *Outcome {
	return r.outcome
}

// Classification returns the category of the current hand and what it pays
func (r *Round) Classification() (handanalyzer.Category, int, error) {
	c, err := handanalyzer.Classify(r.hand, r.options.Variant)
	if err != nil {
		return c, 0, err
	}

	return c, paytable.Payout(c, r.options.BetLevel, r.options.Variant), nil
}

// ToggleHold flips the hold on slot i
func (r *Round) ToggleHold(i int) error {
	if r.phase != PhaseDealt {
		return ErrInvalidPhase
	}

	if i < 0 || i >= handanalyzer.HandSize {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, i)
	}

	r.held = r.held.Toggle(i)
	return nil
}

// SetHold replaces the hold mask
func (r *Round) SetHold(mask strategy.HoldMask) error {
	if r.phase != PhaseDealt {
		return ErrInvalidPhase
	}

	if !mask.Valid() {
		return fmt.Errorf("%w: mask %d", ErrInvalidSlot, mask)
	}

	r.held = mask
	return nil
}

// Recommendation returns the best hold for the dealt hand
// ok is false when the options do not ask for the best play or the round is over.
func (r *Round) Recommendation(ctx context.Context) (mask strategy.HoldMask, ok bool, err error) {
	if !r.options.ShowBestPlay || r.phase != PhaseDealt {
		return strategy.NoneHeld, false, nil
	}

	est := *r.optimizer.Estimator
	est.Variant = r.options.Variant
	est.BetLevel = r.options.BetLevel

	o := *r.optimizer
	o.Estimator = &est
	o.Logger = r.logger

	mask, err = o.BestHold(ctx, r.hand, r.deck.Remaining())
	if err != nil {
		return strategy.NoneHeld, false, err
	}

	return mask, true, nil
}

// Draw replaces every card that is not held, in slot order, and settles the round
func (r *Round) Draw() (*Outcome, error) {
	if r.phase != PhaseDealt {
		return nil, ErrInvalidPhase
	}

	replace := handanalyzer.HandSize - r.held.Count()
	drawn, err := r.deck.Deal(replace)
	if err != nil {
		return nil, err
	}

	for i := range r.hand {
		if r.held.Holds(i) {
			continue
		}

		r.hand[i] = drawn[0]
		drawn = drawn[1:]
	}

	c, units, err := r.Classification()
	if err != nil {
		return nil, err
	}

	r.phase = PhaseComplete
	r.outcome = &Outcome{
		Hand:        r.Hand(),
		Held:        r.held,
		Category:    c,
		PayoutUnits: units,
		Payout:      paytable.Credits(units, r.options.Denomination),
	}

	r.logger.WithFields(logrus.Fields{
		"held":     r.held.String(),
		"hand":     deck.Hand(r.hand).String(),
		"category": c.String(),
		"payout":   units,
	}).Info("round complete")

	return r.outcome, nil
}
