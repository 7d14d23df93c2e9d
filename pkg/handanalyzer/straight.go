package handanalyzer

import (
	"math/bits"

	"videopoker/pkg/deck"
)

// rankSet is a bitset of ranks; bit n is rank n
type rankSet uint16

func (r rankSet) has(rank int) bool {
	return r&(1<<uint(rank)) != 0
}

func (r rankSet) len() int {
	return bits.OnesCount16(uint16(r))
}

// runWindow returns the five ranks of the run ending with high
// A high of 5 is the wheel, where the ace plays low.
func runWindow(high int) rankSet {
	var w rankSet
	for rank := high - 4; rank <= high; rank++ {
		if rank == deck.LowAce {
			w |= 1 << deck.Ace
			continue
		}

		w |= 1 << uint(rank)
	}

	return w
}

// windows is indexed by the high card of the run
var windows = func() (w [deck.Ace + 1]rankSet) {
	for high := 5; high <= deck.Ace; high++ {
		w[high] = runWindow(high)
	}

	return w
}()

// fitsWindow returns true if the naturals and wilds can complete the window
// Every natural must lie inside the window and each missing rank costs a wild.
func fitsWindow(window, naturals rankSet, wilds int) bool {
	if naturals&^window != 0 {
		return false
	}

	return (window &^ naturals).len() <= wilds
}

// bestStraight returns the high card of the highest run the hand can complete
// Returns 0 if no run can be completed. Paired naturals never make a run.
func bestStraight(naturals rankSet, nNaturals, wilds int) int {
	if naturals.len() != nNaturals {
		return 0
	}

	for high := deck.Ace; high >= 5; high-- {
		if fitsWindow(windows[high], naturals, wilds) {
			return high
		}
	}

	return 0
}
