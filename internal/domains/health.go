package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateHealth advances aging, baseline health drift, illness, exercise,
// accidents, and the age-banded mortality draw. Runs first so every later
// domain sees today's age and vitals.
func updateHealth(c *Context) []entity.Event {
	p, bal := c.P, c.Bal
	var events []entity.Event

	// Aging: exactly once per simulated day.
	p.AgeDays++

	// Baseline drift: slow decay, steeper in old age. Energy recovers
	// overnight; the day's activities spend it back down.
	drift := bal.Health.DailyDrift
	if p.AgeYears() > 55 {
		drift *= 1 + (p.AgeYears()-55)*0.03
	}
	p.Health -= drift
	p.Energy = entity.Clamp(p.Energy+45, 0, 100)

	// Weight: daily calorie wobble, nudged by stress eating.
	p.WeightKg += c.RNG.Norm(0, 0.05)
	if p.Stress > 70 {
		p.WeightKg += 0.03
	}

	// BMI extremes erode health.
	if bmi := p.BMI(); bmi > 30 || bmi < 18 {
		p.Health -= 0.05
	}

	// Emphasized day: exercise.
	if c.Act == entity.ActPhysicalHealth && p.Energy >= 20 && !p.Incarcerated {
		gain := bal.Health.ExerciseGain
		if p.GymMember {
			gain *= 1.3
		}
		p.Health += gain
		p.WeightKg -= c.RNG.Range(0.2, 0.5)
		p.Energy -= 30
		p.Happiness += 6
		p.Fitness += 0.6
		p.Stress -= 3
	}

	// Ongoing illness.
	if p.Sick {
		p.SickDaysLeft--
		p.Health -= p.SickSeverity * 0.4
		p.Energy -= 20
		p.Happiness -= 4
		if p.Insured && c.RNG.Chance(0.3) {
			p.Health += 6
			p.SickDaysLeft -= 2
		}
		if c.Act == entity.ActSeekTreatment {
			p.SickDaysLeft -= 3
			p.ApplyCash(-90)
		}
		if p.SickDaysLeft <= 0 {
			p.Sick = false
			p.SickSeverity = 0
			events = append(events, c.event(entity.CatHealth, "recovered from illness", 1))
		}
		// Lingering severe illness can leave a chronic condition.
		if p.SickSeverity > 7 && p.AgeYears() > 50 && c.RNG.Chance(bal.Health.ChronicChance) {
			cond := c.RNG.Pick([]string{"hypertension", "diabetes", "arthritis", "heart disease"})
			if !hasCondition(p, cond) {
				p.ChronicConditions = append(p.ChronicConditions, cond)
				events = append(events, c.event(entity.CatHealth, "diagnosed with "+cond, -3))
			}
		}
	} else {
		// Illness onset: likelier with low health, winter, and age.
		chance := bal.Health.IllnessChance * (1 + (100-p.Health)/120)
		if c.W.Season() == entity.SeasonWinter {
			chance *= 1.4
		}
		if p.AgeYears() > 60 {
			chance *= 1.3
		}
		if c.RNG.Chance(chance) {
			p.Sick = true
			p.SickDaysLeft = c.RNG.Between(bal.Health.IllnessMinDays, bal.Health.IllnessMaxDays)
			p.SickSeverity = c.RNG.Range(bal.Health.IllnessMinSeverity, bal.Health.IllnessMaxSeverity)
			events = append(events, c.event(entity.CatHealth, "fell ill", -p.SickSeverity))
		}
	}

	// Accidents: risk rises with substance dependency.
	accident := bal.Health.AccidentBase +
		c.Bal.Substance.AccidentFactor*(p.AlcoholDep+p.DrugDep)
	if c.RNG.Chance(accident) {
		dmg := c.RNG.Range(5, 30)
		p.Health -= dmg
		if !p.Insured {
			p.ApplyCash(-c.RNG.Range(500, 4000))
		}
		events = append(events, c.event(entity.CatHealth, "injured in an accident", -dmg))
		if p.Health <= 0 {
			p.Die("accident")
			events = append(events, c.event(entity.CatDeath, fmt.Sprintf("%s died in an accident at %.0f", p.Name, p.AgeYears()), -100))
			p.Clamp()
			return events
		}
	}

	// Age-banded mortality draw, modulated by health and chronic burden.
	if c.RNG.Chance(mortalityRisk(c)) {
		cause := "natural causes"
		if p.Sick {
			cause = "illness"
		}
		p.Die(cause)
		events = append(events, c.event(entity.CatDeath, fmt.Sprintf("%s died of %s at %.0f", p.Name, cause, p.AgeYears()), -100))
		p.Clamp()
		return events
	}

	// Health fully depleted.
	if p.Health <= 0 {
		p.Die("poor health")
		events = append(events, c.event(entity.CatDeath, fmt.Sprintf("%s died of poor health at %.0f", p.Name, p.AgeYears()), -100))
	}

	p.Clamp()
	return events
}

// mortalityRisk computes the daily death probability from the age-banded
// table: infants and the elderly carry multipliers, and low health and
// chronic conditions raise the draw for everyone.
func mortalityRisk(c *Context) float64 {
	p, h := c.P, c.Bal.Health
	age := p.AgeYears()

	mult := h.MiddleMult
	switch {
	case age < 2:
		mult = h.InfantMult
	case age < 30:
		mult = h.YouthMult
	case age < 60:
		mult = h.MiddleMult
	default:
		mult = h.ElderlyMult + (age-60)*h.ElderlyPerYear
	}

	healthMod := 1 + (100-p.Health)/50
	chronicMod := 1 + float64(len(p.ChronicConditions))*h.ChronicMortMult
	return h.MortalityBase * mult * healthMod * chronicMod
}

func hasCondition(p *entity.Person, cond string) bool {
	for _, c := range p.ChronicConditions {
		if c == cond {
			return true
		}
	}
	return false
}
