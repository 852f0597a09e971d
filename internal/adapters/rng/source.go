// Package rng implements the seeded random source used to generate datasets.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Randomizer implements ports.Randomizer with PCG sources.
type Randomizer struct{}

// New creates a new Randomizer.
func New() *Randomizer {
	return &Randomizer{}
}

// NewSource returns a PCG source seeded with *seed, or with a seed drawn from
// crypto/rand when seed is nil.
func (r *Randomizer) NewSource(seed *uint64) (ports.RandomSource, error) {
	if seed != nil {
		return NewSource(*seed), nil
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, zerr.Wrap(err, "failed to read system entropy")
	}
	return NewSource(binary.LittleEndian.Uint64(buf[:])), nil
}

// Source draws uniform values from a PCG generator.
type Source struct {
	seed uint64
	rnd  *mrand.Rand
}

// NewSource creates a deterministic source for seed.
func NewSource(seed uint64) *Source {
	return &Source{
		seed: seed,
		rnd:  mrand.New(mrand.NewPCG(seed, seed^pcgStream)),
	}
}

// pcgStream decorrelates the two PCG state words derived from a single seed.
const pcgStream = 0x9e3779b97f4a7c15

// Int32N returns a uniform value in [0, n).
func (s *Source) Int32N(n int32) int32 {
	return s.rnd.Int32N(n)
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}
