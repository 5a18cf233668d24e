package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// updateSocial handles social support, marriage upkeep, and children.
// Marriage and divorce themselves are resolved where both parties are
// reachable (the population manager), keeping spousal references mutual;
// this domain only moves the person's own side of the ledger.
func updateSocial(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Social
	var events []entity.Event

	// Support and relationships fade without attention.
	p.SocialSupport -= bal.SupportDecay
	if p.Married() {
		p.RelationshipSat -= 0.2
	}

	switch c.Act {
	case entity.ActSocialize:
		if p.Incarcerated {
			events = append(events, c.event(entity.CatInfo, "socializing is limited while incarcerated", 0))
			break
		}
		p.SocialSupport += c.RNG.Range(bal.SocializeGain*0.5, bal.SocializeGain*1.5)
		p.Happiness += c.RNG.Range(8, 20)
		p.Energy -= 15
		p.ApplyCash(-c.RNG.Range(bal.SocializeCostMin, bal.SocializeCostMax))
		if c.NPC {
			p.Sociability += 0.2
		}
	case entity.ActFamily:
		if p.Married() {
			p.RelationshipSat += c.RNG.Range(2, 6)
			p.Happiness += 5
			if p.RelationshipSat > 60 && p.AgeYears() < 45 && c.RNG.Chance(bal.ChildChance) {
				p.Children++
				p.Happiness += 20
				events = append(events, c.event(entity.CatFamily, "welcomed a child", 15))
			}
		} else {
			p.SocialSupport += 3
			p.Happiness += 3
		}
		p.Energy -= 10
	}

	// Children cost money every day.
	if p.Children > 0 {
		p.ApplyCash(-12 * float64(p.Children))
	}

	// Loneliness wears on everyone.
	if p.SocialSupport < 20 {
		p.Happiness -= 0.5
		p.MentalHealth -= 0.3
	}

	p.Clamp()
	return events
}
