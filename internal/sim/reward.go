package sim

import (
	"math"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
)

// snapshot captures the slow-moving quantities the reward compares
// across a step.
type snapshot struct {
	Health          float64
	MentalHealth    float64
	Happiness       float64
	NetWorth        float64
	RelationshipSat float64
	GoalsDone       int
	Milestones      int
}

func takeSnapshot(p *entity.Person) snapshot {
	return snapshot{
		Health:          p.Health,
		MentalHealth:    p.MentalHealth,
		Happiness:       p.Happiness,
		NetWorth:        p.NetWorth(),
		RelationshipSat: p.RelationshipSat,
		GoalsDone:       len(p.GoalsDone),
		Milestones:      p.Milestones,
	}
}

// computeReward scores one day from the state deltas. Wealth changes run
// through tanh so a lottery jackpot saturates instead of dominating an
// episode of steady returns. Terminal adjustments: dying before the
// natural-age bound is heavily penalized, surviving the whole episode is
// rewarded.
func computeReward(prev snapshot, p *entity.Person, w *entity.World, rw *config.RewardWeights, done bool) float64 {
	r := rw.HealthDelta*(p.Health-prev.Health) +
		rw.MentalDelta*(p.MentalHealth-prev.MentalHealth) +
		rw.HappinessDelta*(p.Happiness-prev.Happiness) +
		rw.RelationshipDelta*(p.RelationshipSat-prev.RelationshipSat) +
		rw.NetWorthWeight*math.Tanh((p.NetWorth()-prev.NetWorth)/rw.NetWorthUnit)

	if gained := len(p.GoalsDone) - prev.GoalsDone; gained > 0 {
		r += rw.GoalBonus * float64(gained)
	}
	if gained := p.Milestones - prev.Milestones; gained > 0 {
		r += rw.MilestoneBonus * float64(gained)
	}

	if p.Incarcerated {
		r -= rw.IncarcerationPen
	}
	for _, dep := range []float64{p.AlcoholDep, p.DrugDep, p.SmokingDep} {
		if dep > rw.AddictionLevel {
			r -= rw.AddictionPen
		}
	}
	if prev.Health-p.Health > rw.BigDropThreshold {
		r -= rw.BigDropPen
	}
	if prev.Happiness-p.Happiness > rw.BigDropThreshold {
		r -= rw.BigDropPen
	}

	if done {
		if !p.Alive && p.AgeYears() < rw.NaturalAgeYears {
			r -= rw.DeathPenalty
		}
		if p.Alive && w.Day >= w.EpisodeLength {
			r += rw.SurvivalBonus
		}
	}
	return r
}
