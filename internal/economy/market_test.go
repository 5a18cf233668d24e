package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBoundsAndDeterminism(t *testing.T) {
	a := NewMarket(5)
	b := NewMarket(5)
	for day := 0; day < 3650; day += 7 {
		v := a.Index(day)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		require.Equal(t, v, b.Index(day), "same seed must give the same market on day %d", day)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewMarket(1)
	b := NewMarket(2)
	same := true
	for day := 0; day < 365; day++ {
		if a.Index(day) != b.Index(day) {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds should not produce the same market")
}

func TestRiskyReturnClamped(t *testing.T) {
	m := NewMarket(17)
	for day := 0; day < 3650; day++ {
		r := m.RiskyDailyReturn(day)
		require.GreaterOrEqual(t, r, -0.08)
		require.LessOrEqual(t, r, 0.08)
	}
}

func TestSafeReturnIsSmallAndPositive(t *testing.T) {
	m := NewMarket(23)
	for day := 0; day < 3650; day += 30 {
		r := m.SafeDailyReturn(day)
		require.Greater(t, r, 0.0)
		require.Less(t, r, 0.001)
	}
}
