package ecdsa

import (
	"math/big"
	"math/rand"
	"time"
)

// ScalarSource draws scalars for key generation and signing. Draws
// must be uniform over [1, max-1].
//
// The engine deliberately takes the source as an explicit argument so
// the retry loop in Sign is reproducible under test.
type ScalarSource interface {
	NewScalar(max *big.Int) (*big.Int, error)
}

// MathRandSource draws scalars from math/rand. It is NOT
// cryptographically secure, matching the educational scope of this
// module. A source is not safe for concurrent use; give each goroutine
// its own.
type MathRandSource struct {
	rng *rand.Rand
}

// NewMathRandSource returns a source seeded with the given value, so
// runs with the same seed draw the same scalars.
func NewMathRandSource(seed int64) *MathRandSource {
	return &MathRandSource{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSource returns a source seeded from the wall clock.
func NewTimeSeededSource() *MathRandSource {
	return NewMathRandSource(time.Now().UnixNano())
}

// NewScalar draws uniformly from [1, max-1].
func (s *MathRandSource) NewScalar(max *big.Int) (*big.Int, error) {
	if max == nil || max.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrBadScalarRange
	}
	bound := new(big.Int).Sub(max, big.NewInt(1))
	k := new(big.Int).Rand(s.rng, bound) // [0, max-2]
	return k.Add(k, big.NewInt(1)), nil  // [1, max-1]
}

// SequenceSource replays a fixed list of scalars, then fails. It
// exists to make signing deterministic in tests and demos.
type SequenceSource struct {
	scalars []*big.Int
	next    int
}

// NewSequenceSource returns a source that yields the given scalars in
// order.
func NewSequenceSource(scalars ...*big.Int) *SequenceSource {
	return &SequenceSource{scalars: scalars}
}

// NewScalar returns the next scalar in the sequence. The value is
// returned as-is; range checking is left to the test that chose it.
func (s *SequenceSource) NewScalar(max *big.Int) (*big.Int, error) {
	if s.next >= len(s.scalars) {
		return nil, ErrSourceExhausted
	}
	k := s.scalars[s.next]
	s.next++
	return new(big.Int).Set(k), nil
}
