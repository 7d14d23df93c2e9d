package rng

import "sync"

// Locked serializes access to a generator that is not safe for concurrent use
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked wraps g
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Intn returns a random number from 0 <= x < n
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.g.Intn(n)
}
