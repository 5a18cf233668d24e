package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// updateSubstances handles dependency escalation, recovery, relapse, and
// the daily toll of active addiction.
func updateSubstances(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Substance
	var events []entity.Event

	// Stress feeds escalation; high-risk personalities drift faster.
	escalation := bal.EscalationChance * (1 + p.Stress/50)
	if c.NPC && p.Personality == entity.PersonalityHedonistic {
		escalation *= 2
	}
	if !p.InRecovery && c.RNG.Chance(escalation) {
		switch c.RNG.Intn(3) {
		case 0:
			p.AlcoholDep += bal.EscalationStep
		case 1:
			p.DrugDep += bal.EscalationStep
		default:
			p.SmokingDep += bal.EscalationStep
		}
	}

	if c.Act == entity.ActSeekTreatment && (p.AlcoholDep > 10 || p.DrugDep > 10 || p.SmokingDep > 10) {
		if !p.InRecovery {
			p.InRecovery = true
			events = append(events, c.event(entity.CatHealth, "entered recovery", 5))
		}
		p.ApplyCash(-bal.TreatmentCost)
	}

	if p.InRecovery {
		p.AlcoholDep -= bal.RecoveryStep
		p.DrugDep -= bal.RecoveryStep
		p.SmokingDep -= bal.RecoveryStep
		if p.AlcoholDep <= 0 && p.DrugDep <= 0 && p.SmokingDep <= 0 {
			p.InRecovery = false
			p.MentalHealth += 10
			events = append(events, c.event(entity.CatHealth, "completed recovery clean", 8))
		} else if c.RNG.Chance(bal.RelapseChance * (1 + p.Stress/100)) {
			p.InRecovery = false
			p.AlcoholDep += bal.EscalationStep * 2
			p.Happiness -= 10
			events = append(events, c.event(entity.CatHealth, "relapsed", -8))
		}
	}

	// Active heavy dependency drains everything.
	worst := p.AlcoholDep
	if p.DrugDep > worst {
		worst = p.DrugDep
	}
	if worst > 50 {
		p.Health -= 0.3
		p.MentalHealth -= 0.3
		p.ApplyCash(-worst * 0.4)
	}
	if p.SmokingDep > 50 {
		p.Health -= 0.1
	}

	p.Clamp()
	return events
}
