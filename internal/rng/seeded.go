package rng

import (
	"math"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Seeded is a deterministic Generator backed by a PCG source.
// It is not safe for concurrent use; use Split to hand out independent generators.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator whose sequence is fully determined by seed
func NewSeeded(seed int64) *Seeded {
	u := uint64(seed)
	return &Seeded{
		r: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.r.IntN(n)
}

// Split returns a new, independent generator seeded from g
func Split(g Generator) Generator {
	return NewSeeded(int64(g.Intn(math.MaxInt32)))
}

// New returns a seeded generator, or a crypto generator if seed is 0
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
