package mux

import (
	"errors"
	"strings"
	"sync"

	"videopoker/pkg/game"
)

// maxOpenRounds caps rounds that were dealt but not drawn
const maxOpenRounds = 10000

var errRoundLimit = errors.New("too many open rounds")

// roundEntry serializes access to a single round
type roundEntry struct {
	sync.Mutex
	round *game.Round
}

// roundStore holds dealt rounds in memory until they are drawn
type roundStore struct {
	mu     sync.Mutex
	limit  int
	rounds map[string]*roundEntry
}

func newRoundStore(limit int) *roundStore {
	return &roundStore{
		limit:  limit,
		rounds: make(map[string]*roundEntry),
	}
}

func (s *roundStore) add(r *game.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rounds) >= s.limit {
		return errRoundLimit
	}

	s.rounds[r.ID.String()] = &roundEntry{round: r}
	return nil
}

func (s *roundStore) get(id string) (*roundEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.rounds[strings.ToLower(id)]
	return entry, ok
}

func (s *roundStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rounds, strings.ToLower(id))
}

func (s *roundStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rounds)
}
