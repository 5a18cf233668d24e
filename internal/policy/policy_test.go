package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/sim"
)

func healthyObs() []float64 {
	obs := make([]float64, sim.ObsSize)
	obs[sim.ObsHealth] = 0.9
	obs[sim.ObsMental] = 0.8
	obs[sim.ObsHappiness] = 0.7
	obs[sim.ObsAlive] = 1
	obs[sim.ObsEmployed] = 1
	obs[sim.ObsMoney] = 0.2
	obs[sim.ObsCredit] = 0.6
	obs[sim.ObsSupport] = 0.6
	obs[sim.ObsEducation] = 1
	obs[sim.ObsOwnsCar] = 1
	return obs
}

func TestHeuristicCrisisFirst(t *testing.T) {
	h := NewHeuristic()

	obs := healthyObs()
	obs[sim.ObsHealth] = 0.2
	assert.Equal(t, entity.ActPhysicalHealth, h.Decide(obs))

	obs = healthyObs()
	obs[sim.ObsStress] = 0.9
	assert.Equal(t, entity.ActMentalHealth, h.Decide(obs))

	obs = healthyObs()
	obs[sim.ObsDrug] = 0.7
	assert.Equal(t, entity.ActSeekTreatment, h.Decide(obs))

	obs = healthyObs()
	obs[sim.ObsEmployed] = 0
	assert.Equal(t, entity.ActJobSearch, h.Decide(obs))
}

func TestHeuristicInvestsWhenStable(t *testing.T) {
	h := NewHeuristic()
	obs := healthyObs()
	obs[sim.ObsMoney] = 0.6
	assert.Equal(t, entity.ActSaveInvest, h.Decide(obs))
}

func TestRandomIsSeededAndInRange(t *testing.T) {
	a := NewRandom(5)
	b := NewRandom(5)
	obs := healthyObs()

	for i := 0; i < 500; i++ {
		act := a.Decide(obs)
		require.True(t, act.Valid())
		require.Equal(t, act, b.Decide(obs), "same seed must replay the same choices")
	}
}

func TestByName(t *testing.T) {
	_, ok := ByName("heuristic", 1)
	assert.True(t, ok)
	_, ok = ByName("random", 1)
	assert.True(t, ok)
	_, ok = ByName("optimal", 1)
	assert.False(t, ok)
}
