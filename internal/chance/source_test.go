package chance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameStream(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float(), b.Float(), "streams diverged at draw %d", i)
	}
}

func TestChanceExtremes(t *testing.T) {
	s := New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}

func TestBetweenInclusive(t *testing.T) {
	s := New(7)
	sawLo, sawHi := false, false
	for i := 0; i < 10000; i++ {
		v := s.Between(3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
		if v == 3 {
			sawLo = true
		}
		if v == 5 {
			sawHi = true
		}
	}
	assert.True(t, sawLo, "lower bound never drawn")
	assert.True(t, sawHi, "upper bound never drawn")
	assert.Equal(t, 4, s.Between(4, 4))
}

func TestRangeBounds(t *testing.T) {
	s := New(13)
	for i := 0; i < 1000; i++ {
		v := s.Range(-2, 3)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}
}

func TestWeightedIndex(t *testing.T) {
	s := New(21)

	// A dominant weight should win the large majority of draws.
	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		counts[s.WeightedIndex([]float64{1, 98, 1})]++
	}
	assert.Greater(t, counts[1], 9000)
	assert.Greater(t, counts[0], 0)
	assert.Greater(t, counts[2], 0)

	// Zero weights are never drawn.
	for i := 0; i < 1000; i++ {
		require.Equal(t, 1, s.WeightedIndex([]float64{0, 5, 0}))
	}

	// All-zero falls back to uniform, still in range.
	for i := 0; i < 100; i++ {
		idx := s.WeightedIndex([]float64{0, 0, 0, 0})
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
	}
}
