package mux

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"videopoker/internal/rng"
	"videopoker/pkg/game"
)

func TestRoundStore(t *testing.T) {
	a := assert.New(t)

	s := newRoundStore(2)
	r1, err := game.NewRound(logrus.StandardLogger(), game.DefaultOptions(), rng.NewSeeded(1), nil)
	a.NoError(err)
	r2, err := game.NewRound(logrus.StandardLogger(), game.DefaultOptions(), rng.NewSeeded(2), nil)
	a.NoError(err)
	r3, err := game.NewRound(logrus.StandardLogger(), game.DefaultOptions(), rng.NewSeeded(3), nil)
	a.NoError(err)

	a.NoError(s.add(r1))
	a.NoError(s.add(r2))
	a.ErrorIs(s.add(r3), errRoundLimit)
	a.Equal(2, s.len())

	entry, ok := s.get(strings.ToUpper(r1.ID.String()))
	a.True(ok)
	a.Equal(r1, entry.round)

	s.remove(r1.ID.String())
	_, ok = s.get(r1.ID.String())
	a.False(ok)
	a.NoError(s.add(r3))
}
