package ports

// RandomSource draws uniform values for dataset generation.
//
//go:generate mockgen -source=random.go -destination=mocks/mock_random.go -package=mocks
type RandomSource interface {
	// Int32N returns a uniform value in [0, n). n must be positive.
	Int32N(n int32) int32
	// Seed returns the seed the source was created with.
	Seed() uint64
}

// Randomizer creates random sources.
type Randomizer interface {
	// NewSource returns a source seeded with *seed, or with system entropy when seed is nil.
	NewSource(seed *uint64) (RandomSource, error)
}
