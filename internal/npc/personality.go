// Package npc owns the autonomous population: spawning, personality-driven
// daily decisions, interactions, mortality, and replacement.
package npc

import (
	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/entity"
)

// actionWeights maps each personality to a weight vector over the shared
// 15-action space. Decision making is one table lookup plus a weighted
// sample; there is no per-personality code.
var actionWeights = map[entity.Personality][entity.NumActions]float64{
	entity.PersonalityAggressive: {
		2, 1, 8, 3, 1, 1, 6, 3, 1, 2, 0.5, 1, 3, 0.5, 3,
	},
	entity.PersonalityCautious: {
		6, 4, 4, 2, 3, 8, 0.5, 2, 3, 2, 2, 4, 1, 2, 4,
	},
	entity.PersonalitySocial: {
		2, 2, 3, 2, 1, 2, 1, 9, 6, 3, 1, 2, 1, 4, 3,
	},
	entity.PersonalityAmbitious: {
		2, 1, 9, 4, 7, 5, 5, 2, 1, 1, 0.5, 1, 2, 1, 2,
	},
	entity.PersonalityHedonistic: {
		1, 1, 2, 1, 0.5, 1, 6, 5, 1, 9, 0.5, 3, 5, 0.5, 3,
	},
	entity.PersonalityBalanced: {
		3, 3, 4, 2, 2, 4, 1, 4, 4, 4, 1, 3, 2, 2, 4,
	},
}

// chooseAction samples a daily action for an NPC from its personality's
// weight vector, with state-driven nudges layered on top.
func chooseAction(p *entity.Person, rng *chance.Source) entity.Action {
	weights := actionWeights[p.Personality]

	// Urgent needs override temperament.
	if p.Health < 30 {
		weights[entity.ActPhysicalHealth] += 10
	}
	if p.MentalHealth < 30 || p.Stress > 80 {
		weights[entity.ActReduceStress] += 8
		weights[entity.ActSeekTreatment] += 4
	}
	if !p.Employed && !p.Incarcerated {
		weights[entity.ActJobSearch] += 8
	}
	if p.Money < 1000 {
		weights[entity.ActWorkHard] += 5
		weights[entity.ActMajorPurchase] = 0
		weights[entity.ActRiskyInvest] *= 0.2
	}
	if p.AlcoholDep > 60 || p.DrugDep > 60 {
		weights[entity.ActSeekTreatment] += p.Empathy / 20
	}

	// Trait tilts.
	weights[entity.ActRiskyInvest] *= 0.5 + p.RiskTolerance/100
	weights[entity.ActSocialize] *= 0.5 + p.Sociability/100
	weights[entity.ActVolunteer] *= 0.5 + p.Empathy/100
	weights[entity.ActWorkHard] *= 0.5 + p.Ambition/100

	return entity.Action(rng.WeightedIndex(weights[:]))
}
