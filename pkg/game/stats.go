package game

import (
	"fmt"

	"videopoker/pkg/handanalyzer"
)

// Stats are running totals for a session
// Nothing is persisted; a new session starts from zero.
type Stats struct {
	HandsPlayed  int                           `json:"handsPlayed"`
	TotalWagered float64                       `json:"totalWagered"`
	TotalWon     float64                       `json:"totalWon"`
	Streak       int                           `json:"streak"`
	HandCounts   map[handanalyzer.Category]int `json:"handCounts"`
}

// Record adds a settled round
// Streak counts consecutive wins as positive and consecutive losses as negative.
func (s *Stats) Record(wager float64, outcome *Outcome) {
	if s.HandCounts == nil {
		s.HandCounts = make(map[handanalyzer.Category]int)
	}

	s.HandsPlayed++
	s.TotalWagered += wager
	s.TotalWon += outcome.Payout

	if outcome.PayoutUnits > 0 {
		s.HandCounts[outcome.Category]++

		if s.Streak < 0 {
			s.Streak = 0
		}
		s.Streak++
	} else {
		if s.Streak > 0 {
			s.Streak = 0
		}
		s.Streak--
	}
}

// Net returns winnings minus wagers
func (s *Stats) Net() float64 {
	return s.TotalWon - s.TotalWagered
}

// Loss returns how much more was wagered than won, never negative
func (s *Stats) Loss() float64 {
	return max(0, -s.Net())
}

// RTP returns the return to player as a percentage
func (s *Stats) RTP() float64 {
	if s.TotalWagered == 0 {
		return 0
	}

	return s.TotalWon / s.TotalWagered * 100
}

// StreakLabel renders the streak as W3, L2, or - when there is none
func (s *Stats) StreakLabel() string {
	switch {
	case s.Streak > 0:
		return fmt.Sprintf("W%d", s.Streak)
	case s.Streak < 0:
		return fmt.Sprintf("L%d", -s.Streak)
	}

	return "-"
}

// Reset clears every total
func (s *Stats) Reset() {
	*s = Stats{}
}
