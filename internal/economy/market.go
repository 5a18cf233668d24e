// Package economy provides the deterministic market backdrop for the
// simulation: a smooth seeded index that drives investment returns and
// business climate. The series is a pure function of the seed and the day,
// so it consumes nothing from the event random stream.
package economy

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Market produces daily return series from layered simplex noise.
type Market struct {
	trend opensimplex.Noise
	vol   opensimplex.Noise
}

// NewMarket creates a market seeded for one episode.
func NewMarket(seed int64) *Market {
	return &Market{
		trend: opensimplex.NewNormalized(seed + 1),
		vol:   opensimplex.NewNormalized(seed + 2),
	}
}

// Index returns the market climate for a day in [0, 1]. Values above 0.5
// are bull conditions, below are bear conditions. The series moves on a
// roughly yearly wavelength.
func (m *Market) Index(day int) float64 {
	x := float64(day) / 365.0
	// Two octaves: slow cycle plus quarter-scale wobble.
	v := m.trend.Eval2(x, 0)*0.7 + m.trend.Eval2(x*4, 10)*0.3
	return clamp01(v)
}

// SafeDailyReturn is the daily growth rate of conservative holdings
// (index funds, retirement accounts). Slightly positive on average,
// tilted by market climate. Roughly 4–11% annualized.
func (m *Market) SafeDailyReturn(day int) float64 {
	return 0.0001 + 0.0002*m.Index(day)
}

// RiskyDailyReturn is the daily growth rate of speculative positions.
// Sharply climate-dependent with noise-driven shocks: lucrative in a bull
// market, ruinous in a bear market.
func (m *Market) RiskyDailyReturn(day int) float64 {
	x := float64(day) / 365.0
	climate := m.Index(day)*2 - 1             // -1..1
	shock := m.vol.Eval2(x*24, 0)*2 - 1       // Fast-moving component
	r := climate*0.004 + shock*0.02
	return clampRange(r, -0.08, 0.08)
}

// BusinessClimate returns a multiplier in [0.5, 1.5] applied to daily
// business profit and loss.
func (m *Market) BusinessClimate(day int) float64 {
	return 0.5 + m.Index(day)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func clampRange(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
