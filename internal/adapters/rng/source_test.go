package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/adapters/rng"
)

func draw(t *testing.T, seed *uint64, n int, b int32) ([]int32, uint64) {
	t.Helper()

	src, err := rng.New().NewSource(seed)
	require.NoError(t, err)

	out := make([]int32, n)
	for i := range out {
		out[i] = src.Int32N(b)
	}
	return out, src.Seed()
}

func TestSource_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	seed := uint64(42)
	first, gotSeed := draw(t, &seed, 1000, 17)
	second, _ := draw(t, &seed, 1000, 17)

	assert.Equal(t, seed, gotSeed)
	assert.Equal(t, first, second)
}

func TestSource_DifferentSeeds(t *testing.T) {
	t.Parallel()

	a, b := uint64(1), uint64(2)
	first, _ := draw(t, &a, 256, 1<<20)
	second, _ := draw(t, &b, 256, 1<<20)

	assert.NotEqual(t, first, second)
}

func TestSource_Range(t *testing.T) {
	t.Parallel()

	seed := uint64(7)
	for _, b := range []int32{1, 2, 3, 255, 1 << 30} {
		values, _ := draw(t, &seed, 5000, b)
		for i, v := range values {
			require.GreaterOrEqual(t, v, int32(0), "value %d below range", i)
			require.Less(t, v, b, "value %d above range", i)
		}
	}
}

func TestSource_SingleBucket(t *testing.T) {
	t.Parallel()

	seed := uint64(99)
	values, _ := draw(t, &seed, 100, 1)
	for _, v := range values {
		assert.Equal(t, int32(0), v)
	}
}

func TestSource_UnseededRecordsSeed(t *testing.T) {
	t.Parallel()

	first, seed := draw(t, nil, 64, 1000)
	replay, _ := draw(t, &seed, 64, 1000)

	assert.Equal(t, first, replay)
}

func TestSource_RoughlyUniform(t *testing.T) {
	t.Parallel()

	const (
		buckets = 8
		draws   = 80000
	)
	seed := uint64(2024)
	values, _ := draw(t, &seed, draws, buckets)

	var counts [buckets]int
	for _, v := range values {
		counts[v]++
	}
	for i, c := range counts {
		assert.InDelta(t, draws/buckets, c, draws/buckets*0.05, "bucket %d", i)
	}
}
