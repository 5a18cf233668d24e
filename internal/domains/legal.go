package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateLegal handles arrests, incarceration countdown, release, and
// probation. Arrest risk is driven by heavy substance dependency.
func updateLegal(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Legal
	var events []entity.Event

	if p.Incarcerated {
		p.IncarcerationDaysLeft--
		p.MentalHealth -= bal.IncarcerationHit
		p.Happiness -= 1
		if p.IncarcerationDaysLeft <= 0 {
			p.Incarcerated = false
			p.OnProbation = true
			p.ProbationDaysLeft = bal.ProbationDays
			events = append(events, c.event(entity.CatLegal, "released from incarceration on probation", 5))
		}
		p.Clamp()
		return events
	}

	if p.OnProbation {
		p.ProbationDaysLeft--
		if p.ProbationDaysLeft <= 0 {
			p.OnProbation = false
			events = append(events, c.event(entity.CatLegal, "completed probation", 3))
		}
	}

	// Heavy dependency invites trouble with the law. Probation doubles
	// the consequences of getting caught.
	worst := p.AlcoholDep
	if p.DrugDep > worst {
		worst = p.DrugDep
	}
	if worst > bal.ArrestThreshold && c.RNG.Chance(bal.ArrestChance) {
		days := c.RNG.Between(bal.SentenceMinDays, bal.SentenceMaxDays)
		if p.OnProbation {
			days *= 2
			p.OnProbation = false
		}
		p.Incarcerated = true
		p.IncarcerationDaysLeft = days
		p.CriminalRecord = true
		p.Happiness -= 25
		p.Reputation -= 20
		events = append(events, c.event(entity.CatLegal, fmt.Sprintf("arrested and sentenced to %d days", days), -20))
	}

	p.Clamp()
	return events
}
