// Package chance provides the seeded pseudo-random source behind every
// stochastic draw in the simulation. All randomness flows through a Source
// so an episode replayed with the same seed and action sequence consumes
// the identical stream and reproduces the identical life.
package chance

import (
	"math/rand"
)

// Source wraps a seeded generator with the draw shapes the domain updates
// need. It is not safe for concurrent use; each episode owns its own.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.r.Float64()
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// Range returns a uniform float64 in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Between returns a uniform int in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Norm returns a normally distributed float64 with the given mean and
// standard deviation.
func (s *Source) Norm(mean, sd float64) float64 {
	return mean + s.r.NormFloat64()*sd
}

// Pick returns a uniformly chosen element of options.
func (s *Source) Pick(options []string) string {
	return options[s.r.Intn(len(options))]
}

// WeightedIndex samples an index proportionally to weights. Non-positive
// weights are treated as zero; if every weight is zero the draw is uniform.
func (s *Source) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return s.r.Intn(len(weights))
	}
	x := s.r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if x <= acc {
			return i
		}
	}
	return len(weights) - 1
}
