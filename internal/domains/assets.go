package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateAssets handles major purchases, car upkeep, insurance, and property
// value drift.
func updateAssets(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	// Property values drift with the market; cars depreciate.
	if p.OwnsHome {
		p.HomeValue *= 1 + (c.Mkt.Index(c.W.Day)-0.45)*0.0005
		p.ApplyCash(-10) // Upkeep
	}
	if p.OwnsCar {
		p.CarValue *= 1 - 0.0004
		if p.CarWorking && c.RNG.Chance(0.002) {
			p.CarWorking = false
			p.CarRepairCost = c.RNG.Range(1200, 6000)
			p.Stress += 8
			events = append(events, c.event(entity.CatAsset, fmt.Sprintf("car broke down, repair estimate $%.0f", p.CarRepairCost), -5))
		}
		// Repairs happen as soon as they are comfortably affordable.
		if !p.CarWorking && p.Money > p.CarRepairCost*2 {
			p.ApplyCash(-p.CarRepairCost)
			p.CarWorking = true
			p.CarRepairCost = 0
			events = append(events, c.event(entity.CatAsset, "car repaired", 2))
		}
	}

	if c.Act != entity.ActMajorPurchase {
		p.Clamp()
		return events
	}
	if p.Incarcerated {
		return append(events, c.event(entity.CatInfo, "cannot make purchases while incarcerated", 0))
	}

	// One purchase per emphasized day, biggest unmet want first.
	switch {
	case !p.HasLicense && p.Money > 500:
		p.ApplyCash(-200)
		p.HasLicense = true
		events = append(events, c.event(entity.CatAsset, "earned a driver's license", 2))
	case !p.OwnsCar && p.HasLicense && p.Money > 10000:
		price := entity.Clamp(c.RNG.Range(8000, 30000), 0, p.Money*0.8)
		p.ApplyCash(-price)
		p.OwnsCar = true
		p.CarWorking = true
		p.CarValue = price
		p.Happiness += 12
		events = append(events, c.event(entity.CatAsset, fmt.Sprintf("bought a car for $%.0f", price), 8))
	case !p.Insured && p.Money > 2000:
		p.ApplyCash(-300)
		p.Insured = true
		events = append(events, c.event(entity.CatAsset, "purchased insurance coverage", 3))
	case !p.OwnsHome && p.CreditScore > 620 && p.Money > 40000:
		price := c.RNG.Range(120000, 350000)
		down := price * 0.3
		if down > p.Money*0.9 {
			price = p.Money * 3
			down = p.Money * 0.9
		}
		p.ApplyCash(-down)
		p.OwnsHome = true
		p.HomeValue = price
		p.Happiness += 20
		p.CreditScore += 10
		events = append(events, c.event(entity.CatAsset, fmt.Sprintf("bought a home worth $%.0f", price), 15))
	case !p.GymMember && p.Money > 1000:
		p.ApplyCash(-50)
		p.GymMember = true
		events = append(events, c.event(entity.CatAsset, "joined a gym", 1))
	default:
		// Nothing big left to buy; a small indulgence instead.
		p.ApplyCash(-c.RNG.Range(30, 100))
		p.Happiness += 8
	}

	p.Clamp()
	return events
}
