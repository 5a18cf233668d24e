package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// updateCivic handles volunteering and election-cycle effects on the
// person. The political cycle counter itself is advanced by the episode
// controller, once per day, not per person.
func updateCivic(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	if c.Act == entity.ActVolunteer {
		if p.Incarcerated {
			return []entity.Event{c.event(entity.CatInfo, "cannot volunteer while incarcerated", 0)}
		}
		hours := c.RNG.Range(2, 6)
		p.VolunteerHours += hours
		p.Happiness += c.RNG.Range(3, 8)
		p.SocialSupport += 2
		p.Reputation += 0.5
		p.Empathy += 0.3
		p.Energy -= 20
		if c.RNG.Chance(0.005) {
			events = append(events, c.event(entity.CatCivic, "recognized for community service", 4))
			p.Reputation += 5
		}
	}

	// Election day: the outcome cuts one way or the other.
	if c.W.PoliticalCycle == 0 {
		if c.RNG.Chance(0.5) {
			p.Happiness += 3
		} else {
			p.Happiness -= 3
			p.Stress += 2
		}
		if !c.NPC {
			events = append(events, c.event(entity.CatCivic, "election day", 0))
		}
	}

	p.Clamp()
	return events
}
