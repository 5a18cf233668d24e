// Package policy provides baseline action-selection strategies that
// operate on the observation vector alone, the same interface a learned
// agent would have.
package policy

import (
	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/sim"
)

// Policy selects the next action from an observation.
type Policy interface {
	Decide(obs []float64) entity.Action
}

// Random picks uniformly among all actions. Useful as a training floor
// and for stress-testing the environment.
type Random struct {
	rng *chance.Source
}

// NewRandom returns a uniformly random policy.
func NewRandom(seed int64) *Random {
	return &Random{rng: chance.New(seed)}
}

func (r *Random) Decide(_ []float64) entity.Action {
	return entity.Action(r.rng.Intn(entity.NumActions))
}

// Heuristic is a hand-written priority policy: handle crises first,
// then income, then long-term investment, then quality of life. It is
// the reference baseline a trained agent should beat.
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

func (h *Heuristic) Decide(obs []float64) entity.Action {
	switch {
	case obs[sim.ObsSick] > 0.5 || obs[sim.ObsHealth] < 0.35:
		return entity.ActPhysicalHealth
	case obs[sim.ObsMental] < 0.35 || obs[sim.ObsStress] > 0.8:
		return entity.ActMentalHealth
	case obs[sim.ObsAlcohol] > 0.5 || obs[sim.ObsDrug] > 0.5:
		if obs[sim.ObsRecovery] < 0.5 {
			return entity.ActSeekTreatment
		}
		return entity.ActReduceStress
	case obs[sim.ObsEmployed] < 0.5:
		return entity.ActJobSearch
	case obs[sim.ObsMoney] < 0.05:
		return entity.ActWorkHard
	case obs[sim.ObsEnrolled] > 0.5:
		return entity.ActStudy
	case obs[sim.ObsEducation] < 0.5 && obs[sim.ObsMoney] > 0.3:
		return entity.ActStudy
	case obs[sim.ObsDebt] > 0.4:
		return entity.ActSaveInvest
	case obs[sim.ObsSupport] < 0.3:
		return entity.ActSocialize
	case obs[sim.ObsMarried] > 0.5 && obs[sim.ObsRelationship] < 0.5:
		return entity.ActFamily
	case obs[sim.ObsOwnsCar] < 0.5 && obs[sim.ObsMoney] > 0.4:
		return entity.ActMajorPurchase
	case obs[sim.ObsOwnsHome] < 0.5 && obs[sim.ObsMoney] > 0.7 && obs[sim.ObsCredit] > 0.6:
		return entity.ActMajorPurchase
	case obs[sim.ObsMoney] > 0.5:
		return entity.ActSaveInvest
	case obs[sim.ObsHappiness] < 0.45:
		return entity.ActHobbies
	default:
		return entity.ActWorkHard
	}
}

// ByName resolves a policy name from the command line.
func ByName(name string, seed int64) (Policy, bool) {
	switch name {
	case "random":
		return NewRandom(seed), true
	case "heuristic":
		return NewHeuristic(), true
	default:
		return nil, false
	}
}
