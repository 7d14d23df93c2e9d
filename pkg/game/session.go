package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"videopoker/internal/rng"
	"videopoker/pkg/strategy"
)

// Session deals consecutive rounds and keeps their running totals
type Session struct {
	Stats Stats

	rand      rng.Generator
	optimizer *strategy.Optimizer
	logger    logrus.FieldLogger
	wagers    map[*Round]float64
}

// NewSession returns a session with empty stats
func NewSession(logger logrus.FieldLogger, g rng.Generator, optimizer *strategy.Optimizer) *Session {
	return &Session{
		rand:      g,
		optimizer: optimizer,
		logger:    logger,
		wagers:    make(map[*Round]float64),
	}
}

// Deal deals a round and remembers its wager
func (s *Session) Deal(opts Options) (*Round, error) {
	r, err := NewRound(s.logger, opts, s.rand, s.optimizer)
	if err != nil {
		return nil, err
	}

	s.wagers[r] = opts.Wager()

	return r, nil
}

// Draw completes a round dealt by the session and records the result
func (s *Session) Draw(r *Round) (*Outcome, error) {
	wager, ok := s.wagers[r]
	if !ok {
		return nil, fmt.Errorf("round %s was not dealt by this session", r.ID)
	}

	outcome, err := r.Draw()
	if err != nil {
		return nil, err
	}

	delete(s.wagers, r)
	s.Stats.Record(wager, outcome)

	s.logger.WithFields(logrus.Fields{
		"hands": s.Stats.HandsPlayed,
		"net":   FormatMoney(s.Stats.Net()),
	}).Debug("session updated")

	return outcome, nil
}
