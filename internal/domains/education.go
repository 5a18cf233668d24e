package domains

import (
	"github.com/talgya/lifesim/internal/entity"
)

// updateEducation handles enrollment, study progress, tuition accrual, and
// graduation.
func updateEducation(c *Context) []entity.Event {
	p, bal := c.P, c.Bal.Education
	var events []entity.Event

	if c.Act == entity.ActStudy {
		if p.Incarcerated {
			return []entity.Event{c.event(entity.CatInfo, "cannot study while incarcerated", 0)}
		}
		if !p.Enrolled && p.Education < entity.MaxEducation {
			p.Enrolled = true
			p.EducationDaysLeft = bal.DegreeDays
			events = append(events, c.event(entity.CatEducation, "enrolled toward a "+(p.Education+1).String(), 2))
		}
		p.SkillLevel += bal.StudySkillGain
		p.Creativity += 0.05
		p.Energy -= 25
		if c.RNG.Chance(0.02) {
			p.BooksRead++
		}
	}

	if p.Enrolled {
		// Tuition accrues as student debt while enrolled.
		p.StudentLoan += bal.TuitionPerDay
		// Progress accrues faster on study days.
		progress := 1
		if c.Act == entity.ActStudy {
			progress = 3
		}
		p.EducationDaysLeft -= progress
		if p.EducationDaysLeft <= 0 {
			p.Enrolled = false
			p.Education++
			p.SkillLevel += bal.SkillPerDegree
			p.Happiness += 15
			p.Reputation += 5
			events = append(events, c.event(entity.CatEducation, "graduated with a "+p.Education.String(), 10))
		}
	}

	p.Clamp()
	return events
}
