package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

var disasterKinds = []string{"house fire", "flood", "earthquake", "severe storm"}

// updateDisasters draws rare catastrophic events: property damage, injury,
// and a lasting mark on mental health. Insurance recovers part of the loss.
func updateDisasters(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Disaster
	if !c.RNG.Chance(bal.DailyChance) {
		return nil
	}

	kind := c.RNG.Pick(disasterKinds)
	var events []entity.Event
	loss := 0.0

	if p.OwnsHome {
		frac := c.RNG.Range(bal.HomeDamageMin, bal.HomeDamageMax)
		dmg := p.HomeValue * frac
		p.HomeValue -= dmg
		loss += dmg
	}
	if p.OwnsCar && c.RNG.Chance(bal.CarDamageChance) {
		dmg := p.CarValue * c.RNG.Range(0.3, 0.8)
		p.CarValue -= dmg
		p.CarWorking = false
		p.CarRepairCost = dmg * 0.5
		loss += dmg
	}
	if !p.OwnsHome && !p.OwnsCar {
		// Renters lose belongings instead.
		loss = c.RNG.Range(1000, 8000)
		p.ApplyCash(-loss)
	}

	if p.Insured && loss > 0 {
		payout := loss * bal.InsuredMitigation
		p.ApplyCash(payout)
		events = append(events, c.event(entity.CatFinance, fmt.Sprintf("insurance paid out $%.0f", payout), 3))
	}

	p.Health -= c.RNG.Range(0, bal.HealthHit)
	p.MentalHealth -= bal.MentalHit
	p.Happiness -= 10
	p.Stress += 15
	if c.RNG.Chance(0.15) {
		p.PTSD += c.RNG.Range(10, 30)
	}

	events = append(events, c.event(entity.CatDisaster, fmt.Sprintf("%s struck, losses around $%.0f", kind, loss), -entity.Clamp(loss/1000, 5, 50)))

	p.Clamp()
	return events
}
