package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

var businessKinds = []string{"cafe", "consultancy", "online store", "food truck", "repair shop"}

// updateBusiness handles founding, running, and folding a small venture.
// Profit and loss ride the market climate.
func updateBusiness(c *Context) []entity.Event {
	p := c.P
	var events []entity.Event

	if p.Business == nil {
		// Founding takes an appetite for risk and real capital.
		if c.Act == entity.ActRiskyInvest && !p.Incarcerated && p.Money > 20000 && c.RNG.Chance(0.05) {
			capital := entity.Clamp(c.RNG.Range(10000, 40000), 0, p.Money*0.6)
			p.ApplyCash(-capital)
			p.Business = &entity.Business{
				Kind:    c.RNG.Pick(businessKinds),
				Value:   capital,
				Success: 35 + p.SkillLevel*3,
			}
			events = append(events, c.event(entity.CatBusiness, fmt.Sprintf("founded a %s with $%.0f", p.Business.Kind, capital), 10))
		}
		return events
	}

	b := p.Business
	climate := c.Mkt.BusinessClimate(c.W.Day)

	// Daily operating result.
	profit := b.Value * 0.0008 * (b.Success / 50) * climate
	profit += c.RNG.Norm(0, b.Value*0.0005)
	p.ApplyCash(profit)
	b.Value += profit * 0.5

	// Attention grows the venture; neglect erodes it.
	if c.Act == entity.ActWorkHard && !p.Incarcerated {
		b.Success += 0.3
		p.Leadership += 0.1
		p.Energy -= 10
	} else {
		b.Success -= 0.05
	}

	if b.Success > 90 && c.RNG.Chance(0.002) {
		p.Fame += 5
		events = append(events, c.event(entity.CatBusiness, b.Kind+" featured in the local press", 5))
	}

	// A collapsed venture folds; some value is recovered in liquidation.
	if b.Success < 10 || b.Value < 1000 {
		recovered := b.Value * 0.3
		p.ApplyCash(recovered)
		p.Happiness -= 15
		p.Stress += 10
		events = append(events, c.event(entity.CatBusiness, fmt.Sprintf("%s went under, recovered $%.0f", b.Kind, recovered), -12))
		p.Business = nil
	}

	p.Clamp()
	return events
}
