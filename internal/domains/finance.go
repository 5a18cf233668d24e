package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateFinance handles daily living costs, the monthly bill/paycheck cycle,
// debt interest, investment growth, and windfalls. All cash movements for
// the day are summed into one delta before being applied, so no transient
// negative balance is ever observable.
func updateFinance(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Finance
	var events []entity.Event
	cash := 0.0

	// Daily living costs. The poor spend less out of necessity; prison
	// covers room and board.
	switch {
	case p.Incarcerated:
		// No daily costs inside.
	case p.Money < 1000:
		cash -= c.RNG.Range(30, 60)
	default:
		cash -= c.RNG.Range(bal.DailyCostMin, bal.DailyCostMax)
	}

	// Monthly cycle: bills, interest, paycheck, retirement contribution.
	if c.W.Day%30 == 1 {
		cash -= bal.MonthlyBills
		if p.Debt > 0 {
			interest := p.Debt * bal.DebtMonthlyInterest
			p.Debt += interest
			p.Happiness -= 3
			if p.Debt > 5000 {
				p.Happiness -= 5
				p.Stress += 4
			}
		}
		if p.StudentLoan > 0 {
			p.StudentLoan += p.StudentLoan * bal.LoanMonthlyInterest
			// Payments come out automatically while solvent.
			payment := entity.Clamp(p.StudentLoan*0.02, 0, 400)
			p.StudentLoan -= payment
			cash -= payment
		}
		if p.Employed {
			pay := p.MonthlyIncome * (1 + (p.SkillLevel-1)*0.03)
			cash += pay
			p.Retirement += pay * 0.05
		}
	}

	// Poverty pressure.
	if p.Money < bal.PovertyLine {
		p.Health -= 0.5
		p.Happiness -= 1.2
		p.Stress += 1
	}

	// Holdings compound with the market every day.
	p.Investments *= 1 + c.Mkt.SafeDailyReturn(c.W.Day)
	p.Retirement *= 1 + c.Mkt.SafeDailyReturn(c.W.Day)*0.9

	switch c.Act {
	case entity.ActSaveInvest:
		if p.Debt > 0 {
			pay := entity.Clamp(p.Money*0.2, 0, p.Debt)
			p.Debt -= pay
			cash -= pay
			p.CreditScore += 0.5
		} else if p.Money > 500 {
			amount := entity.Clamp(p.Money*bal.SaveShare, 0, 2000)
			p.Investments += amount
			cash -= amount
			p.CreditScore += 0.3
		}
	case entity.ActRiskyInvest:
		if p.Money > 200 {
			stake := entity.Clamp(p.Money*bal.RiskyShare, 0, 5000)
			r := entity.Clamp(c.Mkt.RiskyDailyReturn(c.W.Day)*25, -0.8, 1.2)
			payout := stake * (1 + r)
			cash += payout - stake
			if r > 0.3 {
				p.Happiness += 10
				events = append(events, c.event(entity.CatFinance, fmt.Sprintf("speculative bet paid off, +$%.0f", payout-stake), 5))
			} else if r < -0.3 {
				p.Happiness -= 8
				p.Stress += 5
				events = append(events, c.event(entity.CatFinance, fmt.Sprintf("speculative bet soured, -$%.0f", stake-payout), -5))
			}
		}
	}

	// Credit score drift.
	if p.Debt > 0 {
		p.CreditScore -= 0.1
	} else if p.Money > 5000 {
		p.CreditScore += 0.05
	}

	// Windfalls and inheritance.
	if c.RNG.Chance(bal.WindfallChance) {
		gain := c.RNG.Range(bal.WindfallMin, bal.WindfallMax)
		cash += gain
		p.Happiness += 5
		events = append(events, c.event(entity.CatFinance, fmt.Sprintf("small windfall, +$%.0f", gain), 3))
	}
	if c.RNG.Chance(bal.InheritanceChance) {
		gain := c.RNG.Range(bal.InheritanceMin, bal.InheritanceMax)
		cash += gain
		p.Happiness += 8
		p.MentalHealth -= 5 // It comes with a funeral.
		events = append(events, c.event(entity.CatFinance, fmt.Sprintf("received an inheritance of $%.0f", gain), 8))
	}

	p.ApplyCash(cash)
	p.Clamp()
	return events
}
