package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateMental runs late in the pipeline so it reads the stress the career,
// finance, and event domains accumulated earlier in the same day. Handles
// stress relief, therapy and medication, specific conditions, and despair.
func updateMental(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Mental
	var events []entity.Event

	// Passive stress relief and baseline drift.
	p.Stress -= bal.StressDecay
	p.MentalHealth -= 0.02

	switch c.Act {
	case entity.ActMentalHealth:
		p.Stress -= 6
		p.MentalHealth += 2
		p.Anxiety -= 0.5
		p.Energy -= 10
	case entity.ActReduceStress:
		p.Stress -= 10
		p.Energy += 10
		p.Happiness += 4
	case entity.ActSeekTreatment:
		if !p.InTherapy && (p.Anxiety > 20 || p.Depression > 20 || p.PTSD > 20 || p.MentalHealth < 40) {
			p.InTherapy = true
			events = append(events, c.event(entity.CatMental, "started therapy", 4))
		}
	}

	if p.InTherapy {
		p.ApplyCash(-bal.TherapyCost / 7) // Weekly sessions, amortized daily
		p.Anxiety -= bal.TherapyRelief / 14
		p.Depression -= bal.TherapyRelief / 14
		p.PTSD -= bal.TherapyRelief / 20
		p.MentalHealth += 0.25
		if p.Anxiety < 10 && p.Depression < 10 && p.PTSD < 10 && p.MentalHealth > 60 {
			p.InTherapy = false
			events = append(events, c.event(entity.CatMental, "finished a course of therapy", 5))
		}
	}

	// Medication for severe depression, managed alongside therapy.
	if !p.OnMedication && p.Depression > 60 && p.InTherapy {
		p.OnMedication = true
		events = append(events, c.event(entity.CatMental, "prescribed medication", 2))
	}
	if p.OnMedication {
		p.ApplyCash(-3)
		p.Depression -= 0.5
		if p.Depression < 20 {
			p.OnMedication = false
		}
	}

	// Sustained strain breeds conditions.
	if p.Stress > 75 && c.RNG.Chance(bal.ConditionOnset) {
		p.Anxiety += 20
		events = append(events, c.event(entity.CatMental, "developed acute anxiety", -6))
	}
	if p.Happiness < 25 && c.RNG.Chance(bal.ConditionOnset) {
		p.Depression += 15
		events = append(events, c.event(entity.CatMental, "slid into depression", -6))
	}

	// Conditions and stress drag on wellbeing.
	p.Happiness -= (p.Anxiety + p.Depression + p.PTSD) * 0.005
	p.MentalHealth -= (p.Anxiety + p.Depression + p.PTSD) * 0.004
	if p.Stress > 70 {
		p.MentalHealth -= 0.4
		p.Health -= 0.1
	}
	// Contentment heals.
	if p.Happiness > 70 && p.Stress < 40 {
		p.MentalHealth += 0.3
	}

	// Despair: a long stretch of misery carries real danger.
	if p.Happiness < bal.DespairThreshold {
		p.LowHappinessStreak++
	} else {
		p.LowHappinessStreak = 0
	}
	if p.LowHappinessStreak > bal.DespairStreakDays && c.RNG.Chance(bal.DespairDeathChance) {
		p.Die("despair")
		events = append(events, c.event(entity.CatDeath, fmt.Sprintf("%s was overwhelmed by despair at %.0f", p.Name, p.AgeYears()), -100))
		p.Clamp()
		return events
	}

	// A collapse short of death leads to crisis intervention.
	if p.MentalHealth <= 1 && c.RNG.Chance(0.1) {
		p.ApplyCash(-2000)
		p.MentalHealth += 25
		p.InTherapy = true
		events = append(events, c.event(entity.CatMental, "hospitalized after a mental health crisis", -10))
	}

	p.Clamp()
	return events
}
