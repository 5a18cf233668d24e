package domains

import (
	"fmt"

	"github.com/talgya/lifesim/internal/entity"
)

// updateCareer handles work effort, promotion, layoff, and job search.
// Runs before finance so today's paycheck reflects today's employment.
func updateCareer(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Career
	var events []entity.Event

	// Reputation and satisfaction fade without attention.
	p.Reputation -= 0.01
	if p.Employed {
		p.JobSatisfaction -= 0.05
		p.YearsExperience += 1.0 / entity.DaysPerYear
	}

	// Incarceration makes work impossible; a held job is lost.
	if p.Incarcerated {
		if p.Employed {
			p.Employed = false
			p.MonthlyIncome = 0
			events = append(events, c.event(entity.CatCareer, "lost job due to incarceration", -10))
		}
		if c.Act == entity.ActWorkHard || c.Act == entity.ActJobSearch {
			events = append(events, c.event(entity.CatInfo, fmt.Sprintf("cannot %s while incarcerated", c.Act), 0))
		}
		p.Clamp()
		return events
	}

	if p.Employed {
		if c.Act == entity.ActWorkHard && p.Energy >= 20 {
			p.JobSatisfaction += c.RNG.Range(1, 4)
			p.SkillLevel += 0.005
			p.Leadership += 0.05
			p.Stress += bal.WorkStress
			p.Energy -= 35

			// Promotion odds rise with satisfaction and skill.
			odds := bal.PromotionBase * (1 + p.JobSatisfaction/100 + p.SkillLevel/10)
			if c.RNG.Chance(odds) {
				raise := c.RNG.Range(bal.RaiseMin, bal.RaiseMax)
				p.MonthlyIncome += raise
				p.Reputation += 5
				p.Happiness += 10
				events = append(events, c.event(entity.CatCareer, fmt.Sprintf("promoted, +$%.0f/month", raise), 10))
			}
		}

		// Layoff: unlucky day, worse odds when disengaged.
		layoff := bal.LayoffChance * (1 + (100-p.JobSatisfaction)/100)
		if c.RNG.Chance(layoff) {
			p.Employed = false
			p.MonthlyIncome = 0
			p.Happiness -= 20
			p.Stress += 15
			events = append(events, c.event(entity.CatCareer, "laid off from "+p.JobField.String()+" job", -15))
		}
	} else if c.Act == entity.ActJobSearch {
		odds := bal.JobFindBase + bal.JobFindSkill*p.SkillLevel + 0.02*float64(p.Education)
		if c.RNG.Chance(odds) {
			p.Employed = true
			p.JobField = entity.JobField(c.RNG.Intn(entity.NumJobFields))
			p.MonthlyIncome = c.RNG.Range(bal.StartSalaryMin, bal.StartSalaryMax) * (1 + p.SkillLevel*0.05)
			p.JobSatisfaction = 70
			p.Happiness += 25
			events = append(events, c.event(entity.CatCareer, fmt.Sprintf("hired in %s at $%.0f/month", p.JobField, p.MonthlyIncome), 15))
		} else {
			p.Stress += 1
		}
	}

	p.Clamp()
	return events
}
