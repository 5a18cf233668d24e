package npc

import (
	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
)

var firstNames = []string{
	"Ava", "Ben", "Clara", "Dev", "Elena", "Felix", "Grace", "Hugo",
	"Iris", "Jonas", "Kira", "Leo", "Maya", "Nico", "Opal", "Priya",
	"Quinn", "Rosa", "Sam", "Tara", "Umar", "Vera", "Wes", "Yuki", "Zane",
}

var lastNames = []string{
	"Alvarez", "Brooks", "Chen", "Dawson", "Eriksen", "Fischer", "Gupta",
	"Hayes", "Ibarra", "Jensen", "Kowalski", "Lindqvist", "Moreau",
	"Nakamura", "Okafor", "Petrov", "Reyes", "Silva", "Tanaka", "Vance",
}

// spawnOne creates a fresh adult NPC with randomized personality, trait
// scores, and a plausible baseline life.
func (m *Manager) spawnOne() *entity.Person {
	id := m.nextID
	m.nextID++
	rng := m.rng

	personality := entity.Personality(rng.Intn(entity.NumPersonalities))

	ageYears := entity.Clamp(rng.Norm(35, 12), 18, 70)
	p := &entity.Person{
		ID:          id,
		Name:        rng.Pick(firstNames) + " " + rng.Pick(lastNames),
		AgeDays:     int(ageYears * entity.DaysPerYear),
		Alive:       true,
		Personality: personality,

		Health:       rng.Range(60, 100),
		MentalHealth: rng.Range(50, 95),
		Happiness:    rng.Range(35, 75),
		Energy:       100,
		Stress:       rng.Range(10, 50),

		WeightKg: entity.Clamp(rng.Norm(75, 14), 45, 140),
		HeightM:  entity.Clamp(rng.Norm(1.72, 0.09), 1.45, 2.05),

		Money:       entity.Clamp(rng.Norm(18000, 14000), 200, 1e9),
		CreditScore: entity.Clamp(rng.Norm(650, 80), 300, 850),

		SkillLevel:      entity.Clamp(rng.Norm(2.5, 1.5), 0.5, 10),
		Reputation:      rng.Range(30, 70),
		Education:       entity.EducationLevel(rng.Intn(int(entity.MaxEducation) + 1)),
		SocialSupport:   rng.Range(30, 80),
		RelationshipSat: 0,

		HasLicense: rng.Chance(0.8),
		Insured:    rng.Chance(0.4),
	}

	if rng.Chance(0.75) {
		p.Employed = true
		p.JobField = entity.JobField(rng.Intn(entity.NumJobFields))
		p.MonthlyIncome = rng.Range(2800, 7500)
		p.JobSatisfaction = rng.Range(40, 85)
		p.YearsExperience = entity.Clamp(ageYears-22, 0, 40) * rng.Range(0.3, 0.9)
	}
	if rng.Chance(0.5) {
		p.OwnsCar = true
		p.CarWorking = true
		p.CarValue = rng.Range(4000, 25000)
	}
	if rng.Chance(0.25) {
		p.OwnsHome = true
		p.HomeValue = rng.Range(120000, 400000)
	}

	// Trait scores centered by personality type.
	p.Ambition = traitScore(rng, personality == entity.PersonalityAmbitious || personality == entity.PersonalityAggressive)
	p.RiskTolerance = traitScore(rng, personality == entity.PersonalityAggressive || personality == entity.PersonalityHedonistic)
	p.Sociability = traitScore(rng, personality == entity.PersonalitySocial)
	p.Empathy = traitScore(rng, personality == entity.PersonalitySocial || personality == entity.PersonalityCautious)

	return p
}

// traitScore draws a 0–100 trait, shifted high when the personality leans
// into the trait.
func traitScore(rng *chance.Source, leans bool) float64 {
	if leans {
		return entity.Clamp(rng.Norm(70, 15), 0, 100)
	}
	return entity.Clamp(rng.Norm(45, 18), 0, 100)
}

// initialCount picks the starting population size within configured bounds.
func initialCount(rng *chance.Source, bal *config.NPCBalance) int {
	return rng.Between(bal.InitialMin, bal.InitialMax)
}
