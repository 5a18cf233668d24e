package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// updateFame handles renown: it decays passively, accrues from creative
// mastery and reputation, and cuts both ways while it lasts.
func updateFame(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	p.Fame -= 0.05

	// Creative breakout: strong creative work occasionally gets noticed.
	if p.Creativity > 60 && c.RNG.Chance(0.001*(p.Creativity/60)) {
		gain := c.RNG.Range(5, 20)
		p.Fame += gain
		p.Happiness += 8
		events = append(events, c.event(entity.CatFame, "creative work attracted public attention", gain/2))
	}

	if p.Fame > 50 {
		// Endorsement money, at the cost of scrutiny.
		p.ApplyCash(p.Fame * 2)
		p.Stress += 0.5
		if c.RNG.Chance(0.002) {
			p.Fame -= 10
			p.MentalHealth -= 8
			p.Happiness -= 10
			events = append(events, c.event(entity.CatFame, "tabloid scandal", -8))
		}
	}

	p.Clamp()
	return events
}
