package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	g1 := NewSeeded(42)
	g2 := NewSeeded(42)
	for i := 0; i < 100; i++ {
		n := g1.Intn(52)
		a.Equal(n, g2.Intn(52))
		a.True(n >= 0 && n < 52)
	}
}

func TestNew(t *testing.T) {
	_, ok := New(0).(Crypto)
	assert.True(t, ok)

	_, ok = New(7).(*Seeded)
	assert.True(t, ok)
}

func TestSplit(t *testing.T) {
	a := assert.New(t)

	// splitting the same parent state yields the same child sequence
	c1 := Split(NewSeeded(9))
	c2 := Split(NewSeeded(9))
	for i := 0; i < 20; i++ {
		a.Equal(c1.Intn(1000), c2.Intn(1000))
	}
}
